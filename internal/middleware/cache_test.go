package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sekolahku/sekolahku-api/internal/config"
)

func TestDashboardCacheStoresAndReplays(t *testing.T) {
	mr, rdb := newRedisForTest(t)
	cfg := config.CacheConfig{Enabled: true, TTL: 30 * time.Second, Prefix: "cache"}

	e := echo.New()
	calls := 0
	h := NewDashboardCache(cfg, rdb)(func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusOK, echo.Map{"total_students": 12, "render": calls})
	})
	get := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/teacher/dashboard", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/api/teacher/dashboard")
		require.NoError(t, h(c))
		return rec
	}

	first := get()
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, 1, calls)

	// The stored entry carries the configured TTL.
	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.Equal(t, cfg.TTL, mr.TTL(keys[0]))

	// A second request is replayed from Redis without rendering again.
	second := get()
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, calls)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Contains(t, second.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)

	// Once the entry expires the handler renders a fresh response.
	mr.FastForward(cfg.TTL + time.Second)
	third := get()
	require.Equal(t, http.StatusOK, third.Code)
	assert.Equal(t, 2, calls)
}

func TestDashboardCacheSkipsNonGet(t *testing.T) {
	mr, rdb := newRedisForTest(t)
	cfg := config.CacheConfig{Enabled: true, TTL: 30 * time.Second, Prefix: "cache"}

	e := echo.New()
	h := NewDashboardCache(cfg, rdb)(func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"ok": true})
	})
	req := httptest.NewRequest(http.MethodPost, "/api/teacher/dashboard", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, mr.Keys())
}

func TestDashboardCacheSkipsNon200(t *testing.T) {
	mr, rdb := newRedisForTest(t)
	cfg := config.CacheConfig{Enabled: true, TTL: 30 * time.Second, Prefix: "cache"}

	e := echo.New()
	h := NewDashboardCache(cfg, rdb)(func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Student not found"})
	})
	req := httptest.NewRequest(http.MethodGet, "/api/teacher/students/s-404", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, mr.Keys())
}

func TestDashboardCacheKeySeparatesQueries(t *testing.T) {
	_, rdb := newRedisForTest(t)
	cfg := config.CacheConfig{Enabled: true, TTL: 30 * time.Second, Prefix: "cache"}

	e := echo.New()
	h := NewDashboardCache(cfg, rdb)(func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"q": c.QueryParam("period")})
	})
	get := func(query string) string {
		req := httptest.NewRequest(http.MethodGet, "/api/teacher/dashboard?"+query, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/api/teacher/dashboard")
		require.NoError(t, h(c))
		return rec.Body.String()
	}

	assert.JSONEq(t, `{"q":"week"}`, get("period=week"))
	assert.JSONEq(t, `{"q":"month"}`, get("period=month"))
}

func TestCacheKeyIsPrefixedAndStable(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/api/admin/dashboard")

	k1 := cacheKeyFrom("cache", c)
	k2 := cacheKeyFrom("cache", c)
	assert.Equal(t, k1, k2)
	assert.True(t, strings.HasPrefix(k1, "cache:"))
	assert.NotEqual(t, k1, cacheKeyFrom("other", c))
}
