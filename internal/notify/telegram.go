// Package notify implements the outbound Telegram relay for contact messages.
package notify

import (
	"context"
	"fmt"
	"time"

	fastshot "github.com/opus-domini/fast-shot"
)

// telegramAPIBase is the Telegram Bot API endpoint.
const telegramAPIBase = "https://api.telegram.org"

// Telegram sends one-shot notifications to a Telegram chat through the
// Bot API. The zero credentials case is a valid, disabled notifier:
// Send becomes a no-op so callers never need to special-case missing
// configuration.
type Telegram struct {
	token  string
	chatID string
	client fastshot.ClientHttpMethods
}

// sendMessageRequest is the JSON body of the sendMessage Bot API call.
type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// NewTelegram creates a notifier for the given bot token and chat id.
// The timeout bounds every outbound call.
func NewTelegram(token, chatID string, timeout time.Duration) *Telegram {
	return newTelegram(token, chatID, telegramAPIBase, timeout)
}

// NewTelegramWithBaseURL is like NewTelegram with an explicit API base
// URL. Used by tests to point the notifier at a local server.
func NewTelegramWithBaseURL(token, chatID, baseURL string, timeout time.Duration) *Telegram {
	return newTelegram(token, chatID, baseURL, timeout)
}

func newTelegram(token, chatID, baseURL string, timeout time.Duration) *Telegram {
	client := fastshot.NewClient(baseURL).
		Config().SetTimeout(timeout).
		Header().Add("Content-Type", "application/json").
		Build()

	return &Telegram{
		token:  token,
		chatID: chatID,
		client: client,
	}
}

// Enabled reports whether both credentials are configured.
func (t *Telegram) Enabled() bool {
	return t.token != "" && t.chatID != ""
}

// Send delivers a single text message to the configured chat.
// Exactly one attempt is made: no retry, no backoff. A disabled
// notifier returns nil immediately.
func (t *Telegram) Send(ctx context.Context, text string) error {
	if !t.Enabled() {
		return nil
	}

	resp, err := t.client.
		POST(fmt.Sprintf("/bot%s/sendMessage", t.token)).
		Context().Set(ctx).
		Body().AsJSON(sendMessageRequest{ChatID: t.chatID, Text: text}).
		Send()
	if err != nil {
		return fmt.Errorf("telegram sendMessage failed: %w", err)
	}
	defer resp.Body().Close()

	if resp.Status().IsError() {
		msg, readErr := resp.Body().AsString()
		if readErr != nil {
			return fmt.Errorf("telegram sendMessage failed with unreadable error response: %w", readErr)
		}
		return fmt.Errorf("telegram sendMessage failed: %s", msg)
	}
	return nil
}
