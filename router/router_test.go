package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"viral-daily/aggregator"
	"viral-daily/fetcher"
	"viral-daily/handler"
	"viral-daily/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestEngine() *gin.Engine {
	mocks := fetcher.NewMockSource(42)
	plans := service.NewPlanService()

	return Setup(&handler.Handler{
		Aggregator: aggregator.New(nil, mocks, plans, true),
		Plans:      plans,
		Ads:        service.NewAdService(mocks),
		Users:      service.NewUserService(nil),
		Payments:   service.NewPaymentService(nil, plans),
		Analytics:  service.NewAnalyticsService(nil),
	})
}

func get(t *testing.T, r *gin.Engine, target string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestProbeEndpoints(t *testing.T) {
	r := newTestEngine()

	for _, target := range []string{"/health", "/ready"} {
		w := get(t, r, target)
		assert.Equal(t, http.StatusOK, w.Code, target)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestEngine()

	w := get(t, r, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIRoutesWired(t *testing.T) {
	r := newTestEngine()

	for _, target := range []string{
		"/api/",
		"/api/health",
		"/api/videos",
		"/api/subscription/plans",
		"/api/notifications/daily",
	} {
		w := get(t, r, target)
		require.Equal(t, http.StatusOK, w.Code, target)
	}
}

func TestUnknownRouteNotFound(t *testing.T) {
	r := newTestEngine()

	w := get(t, r, "/api/unknown")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
