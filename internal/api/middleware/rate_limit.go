package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"summer-success/tracker/pkg/metrics"
	"summer-success/tracker/pkg/response"
)

// RateLimiter sliding-window counter, satisfied by *redis.Client
type RateLimiter interface {
	CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// RateLimit limits each client IP to limit requests per window on a route.
// It lets traffic through when limiter is nil, limit is not positive, or the
// limiter errors.
func RateLimit(limiter RateLimiter, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := limiter.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			metrics.RateLimited.Inc()
			response.TooManyRequests(c, 10004, "too many requests, slow down")
			c.Abort()
			return
		}

		c.Next()
	}
}
