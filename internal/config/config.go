package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Telegram
	BotToken   string
	ChatID     string
	APIBaseURL string

	// Sending
	SendTimeout   time.Duration
	MessagePrefix string

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:      getEnv("TELEGRAM_BOT_TOKEN", ""),
		ChatID:        getEnv("TELEGRAM_CHAT_ID", ""),
		APIBaseURL:    getEnv("TELEGRAM_API_URL", "https://api.telegram.org"),
		MessagePrefix: getEnv("MESSAGE_PREFIX", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	// Parse durations
	var err error
	cfg.SendTimeout, err = time.ParseDuration(getEnv("SEND_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEND_TIMEOUT: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("TELEGRAM_API_URL is required")
	}
	return nil
}

// ValidateForSending checks configuration needed to send messages.
func (c *Config) ValidateForSending() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.BotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is required for sending")
	}
	if c.ChatID == "" {
		return fmt.Errorf("TELEGRAM_CHAT_ID is required for sending")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
