package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-api/internal/adapters/http/dto"
)

// CORS header values served on every response. The API is read-only and
// public, so the origin policy is deliberately permissive.
const (
	corsAllowOrigin  = "*"
	corsAllowMethods = "GET, OPTIONS"
	corsAllowHeaders = "Content-Type"
)

// CORS returns middleware that sets the permissive cross-origin headers
// on every response and short-circuits preflight requests.
//
// OPTIONS requests to any path are answered 200 with an empty body and
// the full preflight header set; they never reach routing. All other
// responses carry Access-Control-Allow-Origin and a JSON content type
// regardless of route or status.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", corsAllowOrigin)
		c.Header("Content-Type", "application/json")

		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Methods", corsAllowMethods)
			c.Header("Access-Control-Allow-Headers", corsAllowHeaders)
			c.AbortWithStatus(http.StatusOK)

			return
		}

		c.Next()
	}
}

// AllowOnlyGet returns middleware that rejects every method other than
// GET with 405 and the method-not-allowed error body. It runs after CORS,
// so OPTIONS preflights are already answered by the time it executes.
// The method check deliberately precedes routing: a POST to an unknown
// path is a 405, not a 404.
func AllowOnlyGet() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.AbortWithStatusJSON(
				http.StatusMethodNotAllowed,
				dto.NewErrorResponse(dto.MessageMethodNotAllowed),
			)

			return
		}

		c.Next()
	}
}
