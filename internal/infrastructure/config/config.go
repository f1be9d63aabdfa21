package config

import (
	"fmt"
	"log/slog"
	"os"
)

type Config struct {
	ServerHost string
	ServerPort string
	LogLevel   string
	// SeedFile is an optional path to a JSON instrument catalog. When empty
	// the built-in demo catalog is used.
	SeedFile string
}

func Load() (*Config, error) {
	port := getEnvOrDefault("SERVER_PORT", "8080")
	host := getEnvOrDefault("SERVER_HOST", "localhost")
	logLevel := getEnvOrDefault("LOG_LEVEL", "info")
	seedFile := os.Getenv("SEED_FILE")

	if _, err := ParseLogLevel(logLevel); err != nil {
		return nil, err
	}

	return &Config{
		ServerHost: host,
		ServerPort: port,
		LogLevel:   logLevel,
		SeedFile:   seedFile,
	}, nil
}

// ParseLogLevel converts a LOG_LEVEL value to a slog.Level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: must be one of debug, info, warn, error", level)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
