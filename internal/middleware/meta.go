package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

const (
	requestStartKey = "request_start"
	cacheHitKey     = "cache_hit"
)

// WithResponseMeta stamps the request start time so handlers can report
// processing time alongside their payload.
func WithResponseMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(requestStartKey, time.Now())
		c.Next()
	}
}

// SetCacheHit marks whether the response was served from cache.
func SetCacheHit(c *gin.Context, hit bool) {
	c.Set(cacheHitKey, hit)
}

// ExtractMeta builds the meta block for the response envelope. Returns
// processing_time_ms always and cache_hit when a handler recorded one.
func ExtractMeta(c *gin.Context) map[string]interface{} {
	meta := map[string]interface{}{}

	if start, exists := c.Get(requestStartKey); exists {
		if startTime, ok := start.(time.Time); ok {
			meta["processing_time_ms"] = float64(time.Since(startTime).Microseconds()) / 1000.0
		}
	}
	if hit, exists := c.Get(cacheHitKey); exists {
		meta[cacheHitKey] = hit
	}

	return meta
}
