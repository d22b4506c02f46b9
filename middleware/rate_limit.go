package middleware

import (
	"time"

	"github.com/VoyageGenie/voyage-backend/errors"
	"github.com/VoyageGenie/voyage-backend/logger"
	"github.com/VoyageGenie/voyage-backend/services"
	"github.com/gin-gonic/gin"
)

// AuthRateLimiter throttles the credential endpoints per client IP.
// A Redis failure fails open: login should not break when the limiter
// backend is down.
func AuthRateLimiter(limiter services.RateLimiterInterface, requestsPerMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "auth:" + c.ClientIP()

		allowed, retryAfter, err := limiter.CheckLimit(c.Request.Context(), key, requestsPerMinute, time.Minute)
		if err != nil {
			logger.GetLogger().Warnw("Rate limit check failed, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			seconds := int(retryAfter / time.Second)
			if seconds < 1 {
				seconds = 1
			}
			_ = c.Error(errors.RateLimitExceeded("Too many authentication attempts", seconds))
			c.Abort()
			return
		}

		c.Next()
	}
}
