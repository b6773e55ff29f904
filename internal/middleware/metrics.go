package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/walkin-drive-api/internal/service"
)

// Metrics records duration and status for every request. Uses the route
// template (e.g. /api/v1/candidates/:id) so path cardinality stays bounded.
func Metrics(metrics *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metrics == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		metrics.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
