package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	telegramBaseURL = "https://api.telegram.org"

	// defaultTimeout bounds a single request; a hung connection would
	// otherwise stall the call indefinitely.
	defaultTimeout = 10 * time.Second

	// maxErrorBody caps how much of an error response goes into the cause.
	maxErrorBody = 512
)

// TelegramClient sends messages to Telegram chats via the Bot API.
// Each call issues exactly one outbound request: no retries, no state
// retained between calls.
type TelegramClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
	prefix     string
}

// TelegramConfig holds configuration for the Telegram client.
type TelegramConfig struct {
	Token   string        // bot token authenticating the sender
	BaseURL string        // API base URL (default: https://api.telegram.org)
	Prefix  string        // optional label prepended to outgoing text
	Timeout time.Duration // per-request timeout (default: 10s)

	// HTTPClient overrides the default client when set; Timeout is
	// ignored in that case.
	HTTPClient *http.Client
}

// NewTelegramClient creates a new Telegram client.
func NewTelegramClient(cfg TelegramConfig) *TelegramClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = telegramBaseURL
	}
	return &TelegramClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      cfg.Token,
		prefix:     cfg.Prefix,
	}
}

// remoteError is a non-success status from the Telegram API.
type remoteError struct {
	status int
	body   string
}

func (e *remoteError) Error() string {
	return fmt.Sprintf("telegram responded %d: %s", e.status, e.body)
}

func classify(err error) ResultKind {
	var re *remoteError
	if errors.As(err, &re) {
		return KindRemoteRejection
	}
	return KindTransportFault
}

// Send delivers a text message to the given chat. The outcome is always
// reported as a SendResult; remote rejections and transport faults are
// captured, never propagated.
func (c *TelegramClient) Send(ctx context.Context, chatID, text string) SendResult {
	text = c.tagged(text)

	if err := c.sendMessage(ctx, chatID, text); err != nil {
		cause := err.Error()
		slog.Error("failed to send Telegram message", "chat_id", chatID, "cause", cause)
		return failure(classify(err), cause)
	}

	slog.Info("sent Telegram message", "chat_id", chatID, "text", text)
	return success()
}

// SendPhoto uploads an image to the given chat. On success the result
// carries the file_id Telegram assigned to the smallest rendition.
func (c *TelegramClient) SendPhoto(ctx context.Context, chatID, filename string, photo io.Reader) SendResult {
	fileID, err := c.uploadPhoto(ctx, chatID, filename, photo)
	if err != nil {
		cause := err.Error()
		slog.Error("failed to upload photo to Telegram", "chat_id", chatID, "cause", cause)
		return failure(classify(err), cause)
	}

	slog.Info("uploaded photo to Telegram", "chat_id", chatID, "file", filename, "file_id", fileID)
	res := success()
	res.FileID = fileID
	return res
}

func (c *TelegramClient) sendMessage(ctx context.Context, chatID, text string) error {
	if err := c.checkArgs(chatID); err != nil {
		return err
	}

	form := url.Values{}
	form.Set("chat_id", chatID)
	form.Set("text", text)

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return readRemoteError(resp)
	}
	io.Copy(io.Discard, resp.Body)

	return nil
}

// sendPhotoResponse is the response from a photo upload. Telegram
// returns one entry per rendition, smallest first.
type sendPhotoResponse struct {
	Result struct {
		Photo []struct {
			FileID string `json:"file_id"`
		} `json:"photo"`
	} `json:"result"`
}

func (c *TelegramClient) uploadPhoto(ctx context.Context, chatID, filename string, photo io.Reader) (string, error) {
	if err := c.checkArgs(chatID); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	if err := form.WriteField("chat_id", chatID); err != nil {
		return "", fmt.Errorf("write form field: %w", err)
	}
	part, err := form.CreateFormFile("photo", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, photo); err != nil {
		return "", fmt.Errorf("read photo: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("close form: %w", err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendPhoto", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, &buf)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", readRemoteError(resp)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var uploaded sendPhotoResponse
	if err := json.Unmarshal(respBody, &uploaded); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if len(uploaded.Result.Photo) == 0 {
		return "", nil
	}
	return uploaded.Result.Photo[0].FileID, nil
}

func (c *TelegramClient) checkArgs(chatID string) error {
	if c.token == "" {
		return fmt.Errorf("bot token is empty")
	}
	if chatID == "" {
		return fmt.Errorf("chat id is empty")
	}
	return nil
}

func readRemoteError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &remoteError{
		status: resp.StatusCode,
		body:   strings.TrimSpace(string(body)),
	}
}

func (c *TelegramClient) tagged(text string) string {
	if c.prefix == "" {
		return text
	}
	return c.prefix + " " + text
}
