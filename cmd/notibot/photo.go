package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdulachik/notibot/internal/config"
	"github.com/abdulachik/notibot/internal/notify"
	"github.com/spf13/cobra"
)

var photoChatID string

var photoCmd = &cobra.Command{
	Use:   "photo <file>",
	Short: "Send a photo",
	Long: `Upload an image file to the configured Telegram chat.

Examples:
  notibot photo screenshot.png
  notibot photo --chat-id -15668993 chart.png`,
	Args: cobra.ExactArgs(1),
	RunE: runPhoto,
}

func init() {
	photoCmd.Flags().StringVar(&photoChatID, "chat-id", "", "Target chat id (overrides TELEGRAM_CHAT_ID)")
	rootCmd.AddCommand(photoCmd)
}

func runPhoto(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if photoChatID != "" {
		cfg.ChatID = photoChatID
	}

	if err := cfg.ValidateForSending(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	path := args[0]
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open photo: %w", err)
	}
	defer file.Close()

	client := notify.NewTelegramClient(notify.TelegramConfig{
		Token:   cfg.BotToken,
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.SendTimeout,
	})

	res := client.SendPhoto(ctx, cfg.ChatID, filepath.Base(path), file)
	if !res.OK {
		return fmt.Errorf("upload failed: %s", res.Cause)
	}

	fmt.Printf("OK\nfile_id: %s\n", res.FileID)
	return nil
}
