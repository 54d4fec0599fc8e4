package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Secret    string        // Required: HMAC secret for signing access tokens
	Issuer    string        // Optional: issuer claim for tokens (default: rolodex)
	Algorithm string        // Optional: JWT signing algorithm (default: HS256)
	TokenTTL  time.Duration // Optional: access token lifetime (default: 30m)

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./rolodex.db)
	PepperFile          string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Secret:              os.Getenv("ROLODEX_SECRET"),
		Issuer:              getEnvOrDefault("ROLODEX_ISSUER", "rolodex"),
		Algorithm:           getEnvOrDefault("ROLODEX_ALGORITHM", "HS256"),
		TokenTTL:            getEnvDurationOrDefault("ROLODEX_TOKEN_TTL", 30*time.Minute),
		DatabaseFile:        getEnvOrDefault("ROLODEX_DATABASE_FILE", "rolodex.db"),
		PepperFile:          getEnvOrDefault("ROLODEX_PEPPER_FILE", "pepper"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
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

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
