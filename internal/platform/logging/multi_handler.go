package logging

import (
	"context"
	"errors"
	"log/slog"
)

// MultiHandler fans each record out to several slog handlers. It is how
// the terminal handler and the rolling JSON file receive the same
// stream without the call sites knowing about either.
type MultiHandler struct {
	handlers []slog.Handler
}

// NewMultiHandler creates a handler writing to every given destination.
func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Enabled reports true when at least one destination accepts the level,
// so a verbose file sink keeps debug records flowing even if the
// terminal filters them.
func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

// Handle delivers the record to every destination enabled for its
// level. One failing sink does not stop the others; their errors are
// joined.
func (h *MultiHandler) Handle(ctx context.Context, r slog.Record) error { //nolint:gocritic // slog.Handler takes Record by value
	var errs []error

	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, r.Level) {
			continue
		}

		if err := handler.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// WithAttrs applies the attributes to every destination.
func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}

	return NewMultiHandler(handlers...)
}

// WithGroup opens the group on every destination.
func (h *MultiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}

	return NewMultiHandler(handlers...)
}
