package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Fixed-window counter. INCR + PEXPIRE must be atomic so a window is
// never created without an expiry.
var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RateLimit caps requests per client IP for the given window. When Redis
// is unreachable the limiter fails open: public booking and contact must
// keep working through a cache outage.
func RateLimit(
	rdb *redis.Client,
	limit int,
	window time.Duration,
	prefix string,
	log *zap.Logger,
) gin.HandlerFunc {

	if limit <= 0 {
		limit = 60
	}
	if window <= 0 {
		window = time.Minute
	}

	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", prefix, c.ClientIP())

		count, err := incrWindow(c.Request.Context(), rdb, key, window)
		if err != nil {
			log.Warn("rate limiter unavailable, failing open",
				zap.String("prefix", prefix),
				zap.Error(err),
			)
			c.Next()
			return
		}

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate_limit_exceeded",
			})
			return
		}

		c.Next()
	}
}

func incrWindow(
	ctx context.Context,
	rdb *redis.Client,
	key string,
	window time.Duration,
) (int64, error) {

	res, err := fixedWindowScript.Run(ctx, rdb, []string{key}, window.Milliseconds()).Result()
	if err != nil {
		return 0, err
	}

	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected redis script result type %T", res)
	}
}
