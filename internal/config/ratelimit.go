package config

import (
	"strconv"
	"time"
)

// RateLimitConfig controls the login rate limiter.  Limiting is applied to
// the unauthenticated login route only; authenticated traffic is already
// tied to an account and is not limited.
type RateLimitConfig struct {
	Enabled  bool          // disable to bypass the limiter entirely
	Attempts int           // allowed login attempts per window
	Window   time.Duration // length of the counting window
	Prefix   string        // Redis key namespace
}

// LoadRateLimitConfig reads environment variables to build a RateLimitConfig.
// Defaults allow 10 attempts per minute per client address.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled:  getenv("LOGIN_RATE_LIMIT_ENABLED", "true") == "true",
		Attempts: atoi(getenv("LOGIN_RATE_LIMIT_ATTEMPTS", "10")),
		Window:   parseDur(getenv("LOGIN_RATE_LIMIT_WINDOW", "1m")),
		Prefix:   getenv("LOGIN_RATE_LIMIT_PREFIX", "rl:login"),
	}
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	return cfg
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
