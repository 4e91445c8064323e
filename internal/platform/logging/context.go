package logging

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

var defaultLogger = slog.Default()

// FromContext returns the logger stored in ctx. A nil context or one
// carrying no logger yields the default logger, never nil.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return defaultLogger
	}

	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return logger
	}

	return defaultLogger
}

// WithContext returns a child context carrying logger.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// withAttr re-stores the context logger enriched with one attribute, so
// every log line downstream carries it.
func withAttr(ctx context.Context, key, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With(slog.String(key, value)))
}

// WithRequestID attaches the per-request ID to the context logger.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withAttr(ctx, "request_id", requestID)
}

// WithTraceID attaches the active trace ID to the context logger.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return withAttr(ctx, "trace_id", traceID)
}

// WithCorrelationID attaches the cross-service correlation ID to the
// context logger.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return withAttr(ctx, "correlation_id", correlationID)
}

// SetDefault replaces the fallback logger used when a context carries
// none, and mirrors it into slog's own default.
func SetDefault(logger *slog.Logger) {
	defaultLogger = logger
	slog.SetDefault(logger)
}
