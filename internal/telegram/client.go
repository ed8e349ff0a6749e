// Package telegram is the transport adapter around the flow engine: a
// minimal Bot API client, the webhook update handler, and the moderator
// notifier. It owns all chat-protocol I/O; the engine never sees Telegram
// types.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/ilyagolubev1986-web/dreamitjob-bot-worker/internal/flow"
)

const (
	defaultBaseURL = "https://api.telegram.org"
	httpTimeout    = 15 * time.Second
)

// Client calls the Telegram Bot API over HTTPS.
// If the token is empty, every call logs a warning and succeeds as a no-op,
// so the service still comes up in local development.
type Client struct {
	Token   string
	BaseURL string // overridable for tests
	client  *http.Client
}

// NewClient constructs a client with a shared HTTP client.
func NewClient(token string) *Client {
	return &Client{
		Token:   token,
		BaseURL: defaultBaseURL,
		client:  &http.Client{Timeout: httpTimeout},
	}
}

// apiResponse mirrors the Bot API envelope.
type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

type inlineKeyboardButton struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data"`
}

type inlineKeyboardMarkup struct {
	InlineKeyboard [][]inlineKeyboardButton `json:"inline_keyboard"`
}

// SendMessage delivers text to chatID, attaching keyboard as an inline menu
// when non-empty.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, keyboard [][]flow.Button) error {
	payload := map[string]any{
		"chat_id": chatID,
		"text":    text,
	}
	if len(keyboard) > 0 {
		markup := inlineKeyboardMarkup{}
		for _, r := range keyboard {
			apiRow := make([]inlineKeyboardButton, 0, len(r))
			for _, b := range r {
				apiRow = append(apiRow, inlineKeyboardButton{Text: b.Label, CallbackData: b.Data})
			}
			markup.InlineKeyboard = append(markup.InlineKeyboard, apiRow)
		}
		payload["reply_markup"] = markup
	}
	return c.call(ctx, "sendMessage", payload)
}

// AnswerCallbackQuery acknowledges a button press. A non-empty text with
// showAlert renders a blocking popup (used for validation warnings).
func (c *Client) AnswerCallbackQuery(ctx context.Context, callbackID, text string, showAlert bool) error {
	payload := map[string]any{"callback_query_id": callbackID}
	if text != "" {
		payload["text"] = text
		payload["show_alert"] = showAlert
	}
	return c.call(ctx, "answerCallbackQuery", payload)
}

// call POSTs payload to the given Bot API method and checks the envelope.
func (c *Client) call(ctx context.Context, method string, payload any) error {
	if c.Token == "" {
		log.Printf("[telegram] TELEGRAM_TOKEN not set — skipping %s", method)
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", method, err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.BaseURL, c.Token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s read body: %w", method, err)
	}

	var api apiResponse
	if err := json.Unmarshal(raw, &api); err != nil {
		return fmt.Errorf("%s: unexpected response %q", method, raw)
	}
	if !api.OK {
		return fmt.Errorf("%s: api error: %s", method, api.Description)
	}
	return nil
}
