package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/abdulachik/notibot/internal/config"
	"github.com/abdulachik/notibot/internal/notify"
	"github.com/spf13/cobra"
)

var (
	sendChatID string
	sendDryRun bool
)

var sendCmd = &cobra.Command{
	Use:   "send [text...]",
	Short: "Send a text message",
	Long: `Send a text message to the configured Telegram chat.

Examples:
  notibot send Deploy finished
  notibot send --chat-id -15668993 "Backup completed"
  notibot send --dry-run Hello  # Show what would be sent without sending`,
	RunE: runSend,
}

func init() {
	sendCmd.Flags().StringVar(&sendChatID, "chat-id", "", "Target chat id (overrides TELEGRAM_CHAT_ID)")
	sendCmd.Flags().BoolVar(&sendDryRun, "dry-run", false, "Show what would be sent without actually sending")
	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if sendChatID != "" {
		cfg.ChatID = sendChatID
	}

	if !sendDryRun {
		if err := cfg.ValidateForSending(); err != nil {
			return fmt.Errorf("validate config: %w", err)
		}
	}

	text := strings.Join(args, " ")

	if sendDryRun {
		fmt.Printf("Would send to %s: %q\n", cfg.ChatID, text)
		return nil
	}

	var client notify.Notifier = notify.NewTelegramClient(notify.TelegramConfig{
		Token:   cfg.BotToken,
		BaseURL: cfg.APIBaseURL,
		Prefix:  cfg.MessagePrefix,
		Timeout: cfg.SendTimeout,
	})

	res := client.Send(ctx, cfg.ChatID, text)
	if !res.OK {
		return fmt.Errorf("send failed: %s", res.Cause)
	}

	fmt.Println("OK")
	return nil
}
