package requestid

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderName is the request ID header honored and echoed by the
	// middleware.
	HeaderName = "X-Request-ID"
	// ContextKey is where the request ID is stored on the gin context.
	ContextKey = "requestID"
)

// New propagates an incoming X-Request-ID or generates a fresh UUID when
// the header is absent.
func New() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextKey, id)
		c.Header(HeaderName, id)
		c.Next()
	}
}

// FromContext returns the request ID set by New, or an empty string.
func FromContext(c *gin.Context) string {
	if id, ok := c.Get(ContextKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
