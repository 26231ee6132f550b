package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env and restore after test
	origEnv := os.Environ()
	t.Cleanup(func() {
		os.Clearenv()
		for _, e := range origEnv {
			for i := 0; i < len(e); i++ {
				if e[i] == '=' {
					os.Setenv(e[:i], e[i+1:])
					break
				}
			}
		}
	})

	t.Run("defaults", func(t *testing.T) {
		os.Clearenv()
		cfg, err := Load()
		require.NoError(t, err)

		assert.Empty(t, cfg.BotToken)
		assert.Empty(t, cfg.ChatID)
		assert.Equal(t, "https://api.telegram.org", cfg.APIBaseURL)
		assert.Equal(t, 10*time.Second, cfg.SendTimeout)
		assert.Empty(t, cfg.MessagePrefix)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("custom values", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("TELEGRAM_BOT_TOKEN", "19234689:ASD23mkSDDFDsd-as34da_j4j334n")
		os.Setenv("TELEGRAM_CHAT_ID", "-15668993")
		os.Setenv("TELEGRAM_API_URL", "http://localhost:8081")
		os.Setenv("SEND_TIMEOUT", "30s")
		os.Setenv("MESSAGE_PREFIX", "[alerts]")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "19234689:ASD23mkSDDFDsd-as34da_j4j334n", cfg.BotToken)
		assert.Equal(t, "-15668993", cfg.ChatID)
		assert.Equal(t, "http://localhost:8081", cfg.APIBaseURL)
		assert.Equal(t, 30*time.Second, cfg.SendTimeout)
		assert.Equal(t, "[alerts]", cfg.MessagePrefix)
	})

	t.Run("invalid duration", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("SEND_TIMEOUT", "invalid")

		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "SEND_TIMEOUT")
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := &Config{APIBaseURL: "https://api.telegram.org"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing api url", func(t *testing.T) {
		cfg := &Config{}
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "TELEGRAM_API_URL")
	})
}

func TestConfig_ValidateForSending(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := &Config{
			APIBaseURL: "https://api.telegram.org",
			BotToken:   "token",
			ChatID:     "-100",
		}
		assert.NoError(t, cfg.ValidateForSending())
	})

	t.Run("missing token", func(t *testing.T) {
		cfg := &Config{
			APIBaseURL: "https://api.telegram.org",
			ChatID:     "-100",
		}
		err := cfg.ValidateForSending()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "TELEGRAM_BOT_TOKEN")
	})

	t.Run("missing chat id", func(t *testing.T) {
		cfg := &Config{
			APIBaseURL: "https://api.telegram.org",
			BotToken:   "token",
		}
		err := cfg.ValidateForSending()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "TELEGRAM_CHAT_ID")
	})
}
