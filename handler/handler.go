// Package handler implements the HTTP endpoints. Handlers are methods on a
// Handler built from its dependencies at startup; there is no package-level
// state.
package handler

import (
	"context"

	"viral-daily/aggregator"
	"viral-daily/model"
	"viral-daily/service"
)

// apiKeyHeader carries the caller's API key; absent or unknown keys demote
// the request to the anonymous free tier.
const apiKeyHeader = "X-API-Key"

// Version reported by the info and health endpoints.
const Version = "1.0.0"

type Handler struct {
	Aggregator *aggregator.Aggregator
	Plans      *service.PlanService
	Ads        *service.AdService
	Users      *service.UserService
	Payments   *service.PaymentService
	Analytics  *service.AnalyticsService

	// DBConnected reports database availability for the health endpoint.
	// nil means the service runs without persistence.
	DBConnected func(ctx context.Context) bool
}

// currentUser resolves the caller from the API key header. Never fails:
// anonymous callers get (nil, free tier).
func (h *Handler) currentUser(ctx context.Context, apiKey string) (*model.User, model.Tier) {
	user, _ := h.Users.ByAPIKey(ctx, apiKey)
	if user == nil {
		return nil, model.TierFree
	}
	return user, user.Tier
}
