package middleware

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/sekolahku/sekolahku-api/internal/config"
)

// captureWriter captures the response body and status while forwarding them
// to the client, so a successful response can be stored after the handler
// runs.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	cw.buf.Write(b)
	return cw.ResponseWriter.Write(b)
}

func cacheKeyFrom(prefix string, c echo.Context) string {
	sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum[:])
}

// NewDashboardCache caches successful GET responses in Redis for the
// configured TTL.  It is applied to the dashboard routes only: those run
// several aggregate COUNT/AVG queries per request and tolerate slightly
// stale values.  Bodies are JSON, so a hit is replayed verbatim with the
// JSON content type.  Disabled config or a missing Redis client yields a
// pass-through middleware.
func NewDashboardCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			key := cacheKeyFrom(cfg.Prefix, c)
			ctx := c.Request().Context()

			if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
				return c.JSONBlob(http.StatusOK, body)
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = cw
			if err := next(c); err != nil {
				return err
			}
			if cw.status == http.StatusOK {
				rdb.Set(ctx, key, cw.buf.Bytes(), ttl)
			}
			return nil
		}
	}
}
