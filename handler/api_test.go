package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// apiRoutes registers the /api endpoints the way the router does, without
// the middleware stack.
func apiRoutes(h *Handler) *gin.Engine {
	r := gin.New()
	api := r.Group("/api")
	api.GET("/", h.Root)
	api.GET("/health", h.Health)
	api.GET("/subscription/plans", h.GetSubscriptionPlans)
	api.POST("/users/register", h.RegisterUser)
	api.POST("/emails/subscribe", h.SubscribeEmails)
	api.GET("/notifications/daily", h.GetDailyDigest)
	api.POST("/payments/checkout", h.CreateCheckout)
	api.GET("/payments/transactions", h.GetTransactions)
	return r
}

func serve(t *testing.T, h *Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := apiRoutes(h)
	w := httptest.NewRecorder()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	r.ServeHTTP(w, req)
	return w
}

func TestSubscriptionPlansEndpoint(t *testing.T) {
	h := newTestHandler(t)
	w := serve(t, h, http.MethodGet, "/api/subscription/plans", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"total_plans":3`)
	for _, tier := range []string{"free", "pro", "business"} {
		assert.Contains(t, body, tier)
	}
	assert.Contains(t, body, "savings_percentage")
}

func TestHealthEndpoint(t *testing.T) {
	h := newTestHandler(t)
	w := serve(t, h, http.MethodGet, "/api/health", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	assert.Contains(t, w.Body.String(), `"database":"not_configured"`)
}

func TestRootEndpoint(t *testing.T) {
	h := newTestHandler(t)
	w := serve(t, h, http.MethodGet, "/api/", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Viral Daily API")
}

func TestRegisterUserValidation(t *testing.T) {
	h := newTestHandler(t)

	// Malformed body
	w := serve(t, h, http.MethodPost, "/api/users/register", `{"email": "notanemail"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Valid body, but no database configured
	w = serve(t, h, http.MethodPost, "/api/users/register", `{"email": "fan@example.com", "name": "Fan"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestEmailSubscribeWithoutDatabase(t *testing.T) {
	h := newTestHandler(t)

	w := serve(t, h, http.MethodPost, "/api/emails/subscribe", `{"email": "fan@example.com"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDailyDigestEndpoint(t *testing.T) {
	h := newTestHandler(t)
	w := serve(t, h, http.MethodGet, "/api/notifications/daily", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Viral Daily")
	assert.Contains(t, body, `"total":5`)
	assert.Contains(t, body, `"status":"success"`)
}

func TestTransactionsRequireAPIKey(t *testing.T) {
	h := newTestHandler(t)

	w := serve(t, h, http.MethodGet, "/api/payments/transactions", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
