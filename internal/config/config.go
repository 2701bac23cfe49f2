package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	RedisURL      string
	CacheEnabled  bool
	RouteCacheTTL time.Duration

	DataDir      string
	BuildingFile string // empty selects the bundled reference building

	NearbyMaxDistance float64

	WarmWorkers int
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		LogLevel:     parseLogLevel(getEnv("LOG_LEVEL", "info")),
		RedisURL:     getEnv("REDIS_URL", "localhost:6379"),
		DataDir:      getEnv("DATA_DIR", "./data"),
		BuildingFile: getEnv("BUILDING_FILE", ""),
	}

	var err error
	if cfg.CacheEnabled, err = strconv.ParseBool(getEnv("CACHE_ENABLED", "true")); err != nil {
		return nil, fmt.Errorf("CACHE_ENABLED must be a boolean: %w", err)
	}

	if cfg.RouteCacheTTL, err = time.ParseDuration(getEnv("ROUTE_CACHE_TTL", "10m")); err != nil {
		return nil, fmt.Errorf("ROUTE_CACHE_TTL must be a duration: %w", err)
	}
	if cfg.RouteCacheTTL < 0 {
		return nil, fmt.Errorf("ROUTE_CACHE_TTL must not be negative: %s", cfg.RouteCacheTTL)
	}

	if cfg.NearbyMaxDistance, err = strconv.ParseFloat(getEnv("NEARBY_MAX_DISTANCE", "150"), 64); err != nil {
		return nil, fmt.Errorf("NEARBY_MAX_DISTANCE must be a number: %w", err)
	}
	if cfg.NearbyMaxDistance < 0 {
		return nil, fmt.Errorf("NEARBY_MAX_DISTANCE must not be negative: %v", cfg.NearbyMaxDistance)
	}

	if cfg.WarmWorkers, err = strconv.Atoi(getEnv("WARM_WORKERS", "4")); err != nil || cfg.WarmWorkers < 1 {
		return nil, fmt.Errorf("WARM_WORKERS must be a positive integer, got %q", getEnv("WARM_WORKERS", "4"))
	}

	return cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
