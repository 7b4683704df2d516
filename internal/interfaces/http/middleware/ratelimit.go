package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"litrevu/internal/infrastructure/ratelimit"
	"litrevu/internal/shared/logger"
	"litrevu/internal/shared/utils"
)

// RateLimit throttles a route group per client IP. Intended for the
// credential endpoints where unlimited attempts invite brute force.
type RateLimit struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.RateLimitConfig
	logger  logger.Interface
}

func NewRateLimit(limiter ratelimit.RateLimiter, requestsPerMinute int, logger logger.Interface) *RateLimit {
	return &RateLimit{
		limiter: limiter,
		config:  ratelimit.RateLimitConfig{RequestsPerMinute: requestsPerMinute},
		logger:  logger,
	}
}

func (m *RateLimit) Limit(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", scope, c.ClientIP())

		allowed, err := m.limiter.Allow(key, m.config)
		if err != nil {
			// Fail open: an unreachable limiter must not lock everyone out.
			m.logger.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
