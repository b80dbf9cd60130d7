package middleware

import (
	"fmt"
	"net/http"
	"time"

	"windward/services/ratelimit"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimitMiddleware throttles requests per client identifier using the
// shared fixed-window limiter. Rejections carry a Retry-After header.
func RateLimitMiddleware(limiter *ratelimit.FixedWindowLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		client := ClientIdentifier(c)
		decision := limiter.Allow(c.Request.Context(), client)
		if !decision.Allowed {
			logger.Warn("Rate limit exceeded", zap.String("client", client))
			c.Header("Retry-After", fmt.Sprintf("%d", int(decision.RetryAfter/time.Second)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}
