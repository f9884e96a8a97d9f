package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/sekolahku/sekolahku-api/internal/config"
)

// NewLoginRateLimit returns a middleware that limits how often a single
// client address may attempt a login.  It uses a fixed-window counter in
// Redis: the first attempt in a window creates the key with an expiry, and
// each attempt increments it.  When the counter exceeds the configured
// attempt budget the request is rejected with 429 and a Retry-After hint.
// When rate limiting is disabled or Redis is unavailable the middleware is
// a pass-through; login brute force protection degrades rather than taking
// the login route down with it.
func NewLoginRateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := cfg.Prefix + ":" + c.RealIP()
			ctx := c.Request().Context()

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				// Redis hiccups must not block logins.
				return next(c)
			}
			if count == 1 {
				rdb.Expire(ctx, key, cfg.Window)
			}
			if count > int64(cfg.Attempts) {
				ttl, _ := rdb.TTL(ctx, key).Result()
				if ttl < 0 {
					ttl = cfg.Window
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(ttl/time.Second)+1))
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "too many login attempts"})
			}
			return next(c)
		}
	}
}
