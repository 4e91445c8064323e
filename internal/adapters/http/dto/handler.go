package dto

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-api/internal/domain"
	"github.com/jsamuelsen/quote-api/internal/platform/logging"
)

// HandleError maps an error from the application layer to the flat JSON
// error body. Not-found conditions become 404 with the quote-not-found
// message; anything else is an unexpected failure and becomes 500 with a
// generic message so internals never leak to the caller.
func HandleError(c *gin.Context, err error) {
	if domain.IsNotFound(err) {
		c.JSON(http.StatusNotFound, NewErrorResponse(MessageQuoteNotFound))
		return
	}

	logger := logging.FromContext(c.Request.Context())
	logger.Error("internal error",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Any("error", err),
	)

	c.JSON(http.StatusInternalServerError, NewErrorResponse(MessageInternalError))
}
