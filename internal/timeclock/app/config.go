package app

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	JWTSecret string // Required: shared secret for verifying IdP-issued HS256 tokens
	JWTIssuer string // Optional: expected issuer claim; empty disables the check

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./timeclock.db)
	Timezone             string        // Optional: IANA zone for dashboard day bucketing (default: UTC)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
	ShiftRetention       time.Duration // How long closed shifts are kept; 0 keeps forever (default: 0)
}

func LoadConfig() (Config, error) {
	cfg := Config{
		JWTSecret:            os.Getenv("TIMECLOCK_JWT_SECRET"),
		JWTIssuer:            os.Getenv("TIMECLOCK_JWT_ISSUER"),
		DatabaseFile:         getEnvOrDefault("TIMECLOCK_DATABASE_FILE", "timeclock.db"),
		Timezone:             getEnvOrDefault("TIMECLOCK_TIMEZONE", "UTC"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		ShiftRetention:       getEnvDurationOrDefault("TIMECLOCK_SHIFT_RETENTION", 0),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("TIMECLOCK_JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
