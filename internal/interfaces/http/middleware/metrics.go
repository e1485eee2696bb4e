package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"team-mentorship.backend/internal/metrics"
)

// MetricsMiddleware records request counts and latency per route. The
// route template (":id" form) is used instead of the raw path so the
// label cardinality stays bounded.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.RequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
