package middleware

import "github.com/gin-gonic/gin"

// CacheControlMiddleware marks read-only overview responses cacheable for
// the given number of seconds.
func CacheControlMiddleware(duration string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age="+duration)
		c.Next()
	}
}
