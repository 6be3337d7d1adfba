package config

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	PollTimeout time.Duration
	// Location defines the calendar day entries are logged under
	Location *time.Location
	Dialog   DialogConfig
	// MetricsAddr is the listen address of /metrics; empty disables it
	MetricsAddr string
	LogLevel    string
}

// DialogConfig controls expiry of abandoned dialogs
type DialogConfig struct {
	// Timeout of zero keeps dialogs open until the user finishes them
	Timeout       time.Duration
	SweepInterval time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		MetricsAddr: os.Getenv("METRICS_ADDR"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}

	loc, err := time.LoadLocation(getEnv("BOT_TIMEZONE", "Europe/Moscow"))
	if err != nil {
		return nil, fmt.Errorf("BOT_TIMEZONE: %w", err)
	}
	cfg.Location = loc

	if cfg.PollTimeout, err = getDuration("POLL_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.Dialog.Timeout, err = getDuration("DIALOG_TIMEOUT", 0); err != nil {
		return nil, err
	}
	if cfg.Dialog.SweepInterval, err = getDuration("SWEEP_INTERVAL", time.Minute); err != nil {
		return nil, err
	}

	if cfg.PollTimeout <= 0 {
		return nil, fmt.Errorf("POLL_TIMEOUT must be positive")
	}
	if cfg.Dialog.Timeout < 0 {
		return nil, fmt.Errorf("DIALOG_TIMEOUT must not be negative")
	}
	if cfg.Dialog.Timeout > 0 && cfg.Dialog.SweepInterval <= 0 {
		return nil, fmt.Errorf("SWEEP_INTERVAL must be positive when DIALOG_TIMEOUT is set")
	}
	if cfg.LogLevel != "info" && cfg.LogLevel != "debug" {
		return nil, fmt.Errorf("LOG_LEVEL must be info or debug, got %q", cfg.LogLevel)
	}

	return cfg, nil
}

// Debug reports whether verbose logging was requested
func (c *Config) Debug() bool {
	return c.LogLevel == "debug"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
