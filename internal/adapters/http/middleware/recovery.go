package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quote-api/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-api/internal/platform/logging"
)

// Recovery returns middleware that recovers from panics.
// On panic it logs the error with a full stack trace at ERROR level and
// answers 500 with the internal-error body. The panic never kills the
// process: the server keeps serving subsequent requests.
//
// Apply this first in the chain so it catches panics from all
// subsequent handlers and middleware.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()

				ctxLogger := logging.FromContext(c.Request.Context())

				var traceID string
				if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
					traceID = span.SpanContext().TraceID().String()
				}

				ctxLogger.Error("panic recovered",
					slog.Any("error", r),
					slog.String("stack", string(stack)),
					slog.String("method", c.Request.Method),
					slog.String("path", c.Request.URL.Path),
					slog.String("trace_id", traceID),
				)

				if !c.Writer.Written() {
					c.AbortWithStatusJSON(
						http.StatusInternalServerError,
						dto.NewErrorResponse(dto.MessageInternalError),
					)
				} else {
					c.Abort()
				}
			}
		}()

		c.Next()
	}
}
