package middleware

import (
	"strconv"
	"time"

	"viral-daily/metrics"

	"github.com/gin-gonic/gin"
)

// Prometheus records request count and latency for every route.
func Prometheus(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		method := c.Request.Method

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())

		metrics.HttpRequestsTotal.WithLabelValues(method, path, statusCode, serviceName).Inc()
		metrics.HttpRequestDuration.WithLabelValues(method, path, serviceName).Observe(duration)
	}
}
