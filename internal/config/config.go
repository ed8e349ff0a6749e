// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits with an
// error.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime configuration for the bot worker.
type Config struct {
	Port          string
	TelegramToken string
	AdminChatID   int64  // moderation chat the accepted drafts are forwarded to
	RedisURL      string // optional: enables the redis-backed dedup guard

	// DedupSweepIntervalHours is how often the janitor sweeps expired
	// in-memory dedup records. Ignored when redis is configured.
	DedupSweepIntervalHours int
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	token := os.Getenv("TELEGRAM_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required")
	}

	adminRaw := os.Getenv("ADMIN_CHAT_ID")
	if adminRaw == "" {
		return nil, fmt.Errorf("ADMIN_CHAT_ID is required")
	}
	adminID, err := strconv.ParseInt(adminRaw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("ADMIN_CHAT_ID must be an integer chat id, got %q", adminRaw)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	sweep := 1
	if s := os.Getenv("DEDUP_SWEEP_INTERVAL_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("DEDUP_SWEEP_INTERVAL_HOURS must be a positive integer, got %q", s)
		}
		sweep = v
	}

	return &Config{
		Port:                    port,
		TelegramToken:           token,
		AdminChatID:             adminID,
		RedisURL:                os.Getenv("REDIS_URL"),
		DedupSweepIntervalHours: sweep,
	}, nil
}
