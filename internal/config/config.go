package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	APIPort     string
	DBPath      string
	XAPIBaseURL string
	XAPIRPS     float64
	XAPIBurst   int
	LogLevel    slog.Level
	LogFormat   string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or project root, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	// Check current directory first, then walk up to find project root (where go.mod is)
	_ = godotenv.Load() // Try current directory

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		APIPort:     getEnv("API_PORT", "9000"),
		DBPath:      getEnv("DB_PATH", "./data/tweetstash.db"),
		XAPIBaseURL: getEnv("X_API_BASE_URL", "https://api.x.com/2"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
	}

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	// X enforces a tight per-user window on the bookmarks endpoint; the
	// defaults stay well inside it.
	rps, err := strconv.ParseFloat(getEnv("X_API_RPS", "2"), 64)
	if err != nil || rps <= 0 {
		return nil, fmt.Errorf("X_API_RPS must be a positive number")
	}
	cfg.XAPIRPS = rps

	burst, err := strconv.Atoi(getEnv("X_API_BURST", "10"))
	if err != nil || burst <= 0 {
		return nil, fmt.Errorf("X_API_BURST must be a positive integer")
	}
	cfg.XAPIBurst = burst

	// Create the data directory if it doesn't exist (for the DB file)
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

func parseLogLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error; got %q", raw)
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
