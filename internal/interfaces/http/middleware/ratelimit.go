package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"leadloft/internal/infrastructure/ratelimit"
)

// ClickRateLimit throttles the public redirect per client IP. The limiter
// fails open, so a Redis outage degrades to unthrottled redirects rather
// than broken links.
func ClickRateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("click:%s", c.ClientIP())
		if !limiter.Allow(c.Request.Context(), key) {
			c.String(http.StatusTooManyRequests, "rate limit exceeded")
			c.Abort()
			return
		}

		c.Next()
	}
}
