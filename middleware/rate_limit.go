package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wxwilliamc/cyre/config"
)

const (
	rateLimitPeriod = 1 * time.Minute
	rateLimitCount  = 5
)

// RateLimiter caps auth-endpoint traffic per client IP using a redis counter.
// When redis is unavailable requests pass through untouched.
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.RedisClient == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		key := "rate_limit:" + ip

		count, err := config.RedisClient.Incr(c.Request.Context(), key).Result()
		if err != nil {
			c.Next()
			return
		}

		// First hit creates the key, so start its expiry clock.
		if count == 1 {
			config.RedisClient.Expire(c.Request.Context(), key, rateLimitPeriod)
		}

		if count > rateLimitCount {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}
