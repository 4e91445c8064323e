package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-api/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// failingChecker always reports unhealthy.
type failingChecker struct{}

func (failingChecker) Name() string                  { return "failing" }
func (failingChecker) Check(_ context.Context) error { return errors.New("down") }

// passingChecker always reports healthy.
type passingChecker struct{}

func (passingChecker) Name() string                  { return "passing" }
func (passingChecker) Check(_ context.Context) error { return nil }

func TestNewBuildInfo(t *testing.T) {
	bi := NewBuildInfo("1.0.0", "abc123", "2026-01-15T10:00:00Z")

	assert.Equal(t, "1.0.0", bi.Version)
	assert.Equal(t, "abc123", bi.Commit)
	assert.Equal(t, "2026-01-15T10:00:00Z", bi.BuildTime)
	assert.Equal(t, runtime.Version(), bi.GoVersion)
}

func TestHealthHandler_Liveness(t *testing.T) {
	handler := NewHealthHandler(ports.NewHealthRegistry(), BuildInfo{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/-/live", nil)

	handler.Liveness(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp livenessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name           string
		checkers       []ports.HealthChecker
		expectedStatus int
		expectedHealth string
	}{
		{
			name:           "no checkers is ready",
			checkers:       nil,
			expectedStatus: http.StatusOK,
			expectedHealth: "healthy",
		},
		{
			name:           "healthy checker is ready",
			checkers:       []ports.HealthChecker{passingChecker{}},
			expectedStatus: http.StatusOK,
			expectedHealth: "healthy",
		},
		{
			name:           "failing checker is not ready",
			checkers:       []ports.HealthChecker{passingChecker{}, failingChecker{}},
			expectedStatus: http.StatusServiceUnavailable,
			expectedHealth: "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := ports.NewHealthRegistry()
			for _, checker := range tt.checkers {
				require.NoError(t, registry.Register(checker))
			}

			handler := NewHealthHandler(registry, BuildInfo{})

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/-/ready", nil)

			handler.Readiness(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp readinessResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedHealth, resp.Status)
			assert.Len(t, resp.Checks, len(tt.checkers))
		})
	}
}

func TestHealthHandler_BuildInfo(t *testing.T) {
	handler := NewHealthHandler(ports.NewHealthRegistry(), NewBuildInfo("2.3.4", "deadbeef", "now"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/-/build", nil)

	handler.BuildInfoHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp BuildInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2.3.4", resp.Version)
	assert.Equal(t, "deadbeef", resp.Commit)
}

func TestHealthHandler_Routes(t *testing.T) {
	handler := NewHealthHandler(ports.NewHealthRegistry(), BuildInfo{})

	router := gin.New()
	handler.RegisterHealthRoutesOnEngine(router)

	for _, path := range []string{"/-/live", "/-/ready", "/-/build", "/-/metrics"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
