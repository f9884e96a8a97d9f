package config

import "time"

// CacheConfig defines settings for the dashboard response cache middleware.
// When Enabled is false or no Redis client is configured, caching is
// disabled.  TTL defines the lifetime of cache entries; dashboards tolerate
// slightly stale aggregates so a short TTL is enough to absorb bursts.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: getenv("CACHE_ENABLED", "true") == "true",
		TTL:     parseDur(getenv("CACHE_TTL", "30s")),
		Prefix:  getenv("CACHE_PREFIX", "cache"),
	}
}
