package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAppName         = "BTC Wallet Service"
	defaultAppEnv          = "development"
	defaultPort            = "8001"
	defaultLogLevel        = "info"
	defaultAllowOrigins    = "*"
	defaultShutdownDelay   = 10 * time.Second
	defaultCacheTTL        = 30 * time.Second
	cacheTTLSecondsEnvVar  = "CACHE_TTL_SECONDS"
	cacheTTLDurEnvVar      = "CACHE_TTL"
	shutdownSecondsEnvVar  = "SHUTDOWN_TIMEOUT_SECONDS"
	shutdownDurationEnvVar = "SHUTDOWN_TIMEOUT"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName        string
	AppEnv         string
	Port           string
	LogLevel       string
	AllowOrigins   string
	RedisURL       string
	ShutdownPeriod time.Duration
	CacheTTL       time.Duration
}

// Load reads configuration values from the environment and populates a Config instance.
// REDIS_URL is optional; without it responses are served uncached.
func Load() (Config, error) {
	cfg := Config{
		AppName:        getEnv("APP_NAME", defaultAppName),
		AppEnv:         getEnv("APP_ENV", defaultAppEnv),
		Port:           getEnv("PORT", defaultPort),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		AllowOrigins:   getEnv("CORS_ALLOW_ORIGINS", defaultAllowOrigins),
		RedisURL:       os.Getenv("REDIS_URL"),
		ShutdownPeriod: defaultShutdownDelay,
		CacheTTL:       defaultCacheTTL,
	}

	var err error
	if cfg.ShutdownPeriod, err = durationEnv(shutdownSecondsEnvVar, shutdownDurationEnvVar, defaultShutdownDelay); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = durationEnv(cacheTTLSecondsEnvVar, cacheTTLDurEnvVar, defaultCacheTTL); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL <= 0 {
		return Config{}, fmt.Errorf("%s must be positive", cacheTTLDurEnvVar)
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

// CacheEnabled reports whether a Redis response cache was configured.
func (c Config) CacheEnabled() bool {
	return c.RedisURL != ""
}

// durationEnv prefers the integer seconds variable over the Go duration one.
func durationEnv(secondsKey, durationKey string, fallback time.Duration) (time.Duration, error) {
	if v := os.Getenv(secondsKey); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", secondsKey, err)
		}
		return time.Duration(seconds) * time.Second, nil
	}
	if v := os.Getenv(durationKey); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", durationKey, err)
		}
		return d, nil
	}
	return fallback, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
