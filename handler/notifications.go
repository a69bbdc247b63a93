package handler

import (
	"fmt"
	"net/http"
	"time"

	"viral-daily/model"

	"github.com/gin-gonic/gin"
)

// digestSize is how many videos the daily email digest carries.
const digestSize = 5

// GetDailyDigest serves GET /api/notifications/daily: the payload the daily
// email job sends to subscribers, previewable by any caller.
func (h *Handler) GetDailyDigest(c *gin.Context) {
	_, tier := h.currentUser(c.Request.Context(), c.GetHeader(apiKeyHeader))

	videos := h.Aggregator.Aggregate(c.Request.Context(), digestSize, tier)
	status := model.StatusSuccess
	if len(videos) == 0 {
		status = model.StatusFallbackSuccess
	}

	now := time.Now().UTC()
	c.JSON(http.StatusOK, gin.H{
		"subject": fmt.Sprintf("🔥 Viral Daily - Top %d Videos for %s", len(videos), now.Format("January 2, 2006")),
		"date":    now,
		"videos":  videos,
		"total":   len(videos),
		"status":  status,
	})
}
