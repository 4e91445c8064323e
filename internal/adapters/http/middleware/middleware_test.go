package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS())
	router.GET("/api/quote", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	t.Run("preflight answered 200 with empty body on any path", func(t *testing.T) {
		for _, path := range []string{"/api/quote", "/api/quotes", "/nowhere"} {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, path, nil))

			assert.Equal(t, http.StatusOK, w.Code, path)
			assert.Empty(t, w.Body.String(), path)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "GET, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
		}
	})

	t.Run("origin and content type set on normal responses", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/quote", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	})
}

func TestAllowOnlyGet(t *testing.T) {
	router := gin.New()
	router.Use(CORS(), AllowOnlyGet())
	router.GET("/api/quote", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	tests := []struct {
		method         string
		expectedStatus int
	}{
		{http.MethodGet, http.StatusOK},
		{http.MethodOptions, http.StatusOK},
		{http.MethodPost, http.StatusMethodNotAllowed},
		{http.MethodPut, http.StatusMethodNotAllowed},
		{http.MethodDelete, http.StatusMethodNotAllowed},
		{http.MethodPatch, http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, "/api/quote", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusMethodNotAllowed {
				assert.JSONEq(t, `{"error":"Only GET requests are allowed"}`, w.Body.String())
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(discardLogger()))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	router.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())

	// The server keeps serving after a panic.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())

	var captured string
	router.GET("/", func(c *gin.Context) {
		captured = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	t.Run("generates a UUID when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		header := w.Header().Get(HeaderRequestID)
		require.NotEmpty(t, header)
		assert.Equal(t, header, captured)

		_, err := uuid.Parse(header)
		assert.NoError(t, err)
	})

	t.Run("propagates an incoming ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "incoming-id")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "incoming-id", w.Header().Get(HeaderRequestID))
		assert.Equal(t, "incoming-id", captured)
	})
}

func TestCorrelationID(t *testing.T) {
	router := gin.New()
	router.Use(CorrelationID())
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderCorrelationID, "txn-42")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "txn-42", w.Header().Get(HeaderCorrelationID))
}

func TestLogging_PassesThrough(t *testing.T) {
	router := gin.New()
	router.Use(Logging(discardLogger()))
	router.GET("/api/quotes", func(c *gin.Context) {
		c.JSON(http.StatusOK, []string{})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/quotes?category=life", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
