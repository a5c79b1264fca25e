package middleware

import (
	"net/http"
	"time"

	"github.com/franciscosanchezn/gin-restaurant-pos/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const rateLimitPeriod = 1 * time.Minute

// RateLimiter caps mutating requests per client IP in a fixed one-minute window kept in Redis.
// A nil client or a zero limit disables the limiter, and Redis failures let the request through.
func RateLimiter(client *redis.Client, limit int, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || limit <= 0 {
			c.Next()
			return
		}

		key := "rate_limit:" + c.ClientIP()
		ctx := c.Request.Context()

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			logger.WithError(err).Warn("Rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		// first hit in the window starts the expiry clock
		if count == 1 {
			if err := client.Expire(ctx, key, rateLimitPeriod).Err(); err != nil {
				logger.WithError(err).Warn("Failed to set rate limit window")
			}
		}

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.NewAPIError(
				models.ErrTooManyRequests,
				"Too many requests",
				map[string]interface{}{"limit": limit, "window": rateLimitPeriod.String()},
			))
			return
		}

		c.Next()
	}
}
