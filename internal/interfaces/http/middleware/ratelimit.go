package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reinkjet/internal/infrastructure/ratelimit"
	"reinkjet/internal/shared/utils"
)

// RateLimiter enforces a per-IP limit on the wrapped endpoints. The
// sliding windows live in Redis, so the limit holds across instances.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.RateLimitConfig
	prefix  string
}

func NewRateLimiter(limiter ratelimit.RateLimiter, config ratelimit.RateLimitConfig, prefix string) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		config:  config,
		prefix:  prefix,
	}
}

// Limit returns a Gin middleware that enforces the rate limit per client IP.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rl.prefix + ":" + c.ClientIP()

		allowed, err := rl.limiter.Allow(key, rl.config)
		if err != nil {
			// Redis being down must not block all traffic.
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
