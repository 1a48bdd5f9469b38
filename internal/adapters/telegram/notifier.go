package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"quizreg/internal/domain"
)

const apiURL = "https://api.telegram.org/bot%s/sendMessage"

// Notifier sends messages to a fixed chat through the Telegram Bot API.
type Notifier struct {
	client  *http.Client
	sendURL string
	chatID  string
	logger  *slog.Logger
}

// New returns a Notifier bound to the given bot token and chat id.
func New(client *http.Client, botToken, chatID string, logger *slog.Logger) domain.Notifier {
	if client == nil {
		client = http.DefaultClient
	}
	return &Notifier{
		client:  client,
		sendURL: fmt.Sprintf(apiURL, botToken),
		chatID:  chatID,
		logger:  logger,
	}
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Send posts the text to the bound chat. Non-2xx status or ok=false in the
// response body is an error.
func (n *Notifier) Send(ctx context.Context, text string) error {
	payload, err := json.Marshal(sendMessageRequest{ChatID: n.chatID, Text: text})
	if err != nil {
		return fmt.Errorf("failed to encode telegram message: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.sendURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	defer resp.Body.Close()

	var body sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("failed to decode telegram response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK || !body.OK {
		return fmt.Errorf("telegram api rejected message: status %d: %s", resp.StatusCode, body.Description)
	}
	n.logger.Info("telegram message sent", "chat_id", n.chatID)
	return nil
}
