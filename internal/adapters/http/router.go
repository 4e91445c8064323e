package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-api/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-api/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quote-api/internal/platform/telemetry"
)

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// ServiceName labels traces and metrics.
	ServiceName string

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// QuoteHandler handles the quote API endpoints.
	QuoteHandler *handlers.QuoteHandler
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first, answer 500 and keep serving
//  2. Request ID / Correlation ID - generate or extract IDs
//  3. OpenTelemetry - tracing and metrics
//  4. Logging - request logging (skips health endpoints)
//  5. CORS - permissive origin headers, answers OPTIONS preflights
//  6. Method filter - everything but GET is a 405
//
// Route groups:
//   - /-/ (internal): health endpoints
//   - /api/ (public): quote endpoints; unknown paths are a 404 with a
//     hint at the two valid endpoints
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	// Paths match exactly: /api/quote/ is an unknown endpoint, not a
	// redirect to /api/quote.
	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false

	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.ServiceName),
		telemetry.Middleware(cfg.ServiceName),
		middleware.Logging(cfg.Logger),
		middleware.CORS(),
		middleware.AllowOnlyGet(),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	api := engine.Group("/api")
	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(api)
	}

	engine.NoRoute(endpointNotFound)
}

// endpointNotFound answers unrecognized paths. OPTIONS and non-GET
// methods never reach here: the CORS and method-filter middleware
// already answered them.
func endpointNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.MessageEndpointNotFound))
}
