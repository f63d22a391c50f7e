package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"
)

const (
	rateLimitMax    = 20
	rateLimitWindow = 30 * time.Second
)

// RateLimiter throttles each client IP over a sliding window. Counters live
// in Redis so every replica draws from the same budget.
func RateLimiter(rdb *redis.Client) fiber.Handler {
	return limiter.New(limiter.Config{
		Storage: fiberredis.NewFromConnection(rdb),

		Max:               rateLimitMax,
		Expiration:        rateLimitWindow,
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
