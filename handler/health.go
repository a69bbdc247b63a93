package handler

import (
	"net/http"
	"time"

	"viral-daily/model"

	"github.com/gin-gonic/gin"
)

// Root serves GET /api/ with service metadata.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Viral Daily API - viral video aggregation across platforms",
		"version":   Version,
		"status":    "healthy",
		"platforms": model.AllPlatforms,
		"endpoints": []string{
			"/api/videos",
			"/api/subscription/plans",
			"/api/users/register",
			"/api/emails/subscribe",
			"/api/notifications/daily",
			"/api/payments/checkout",
			"/api/health",
		},
	})
}

// Health serves GET /api/health with database status.
func (h *Handler) Health(c *gin.Context) {
	dbStatus := "not_configured"
	if h.DBConnected != nil {
		if h.DBConnected(c.Request.Context()) {
			dbStatus = "connected"
		} else {
			dbStatus = "disconnected"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"database":  dbStatus,
		"version":   Version,
	})
}
