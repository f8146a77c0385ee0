package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fritz-immanuel/luxtrack/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// LoginRateLimiter limits login attempts per client IP using a redis fixed
// window (INCR + EXPIRE on first hit). The limiter degrades open: when
// redis is unreachable, login still works and the failure is logged.
func LoginRateLimiter(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:login:%s", c.ClientIP())

		count, err := rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			log.Warn().Err(err).Msg("login rate limiter unavailable; allowing request")
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(c.Request.Context(), key, window)
		}
		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				apierror.New("Too many login attempts, try again shortly"))
			return
		}
		c.Next()
	}
}
