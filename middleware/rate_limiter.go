package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sajid85/village-mart-customer-frontend/config"
)

// RateLimiter throttles an endpoint per IP using a fixed Redis window.
// Applied to the login form to slow down credential guessing.
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		method := c.Request.Method
		endpoint := c.FullPath()

		// Key is per-IP, per-method, per-endpoint
		key := "rl:" + ip + ":" + method + ":" + endpoint

		count, err := config.RedisClient.Incr(config.Ctx, key).Result()
		if err != nil {
			// Fail open on Redis errors
			log.Printf("[ratelimit] redis error: %v", err)
			c.Next()
			return
		}

		// First request in the window sets the expiry
		if count == 1 {
			config.RedisClient.Expire(config.Ctx, key, window)
		}

		if int(count) > maxRequests {
			c.String(http.StatusTooManyRequests, "Too many attempts. Please try again in a moment.")
			c.Abort()
			return
		}

		c.Next()
	}
}
