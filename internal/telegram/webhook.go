package telegram

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/ilyagolubev1986-web/dreamitjob-bot-worker/internal/flow"
)

// ─── Update types ────────────────────────────────────────────────────────────

// Update mirrors the subset of the Bot API update we handle.
type Update struct {
	UpdateID      int64          `json:"update_id"`
	Message       *Message       `json:"message"`
	CallbackQuery *CallbackQuery `json:"callback_query"`
}

// Message is an inbound chat message.
type Message struct {
	From *User  `json:"from"`
	Chat Chat   `json:"chat"`
	Text string `json:"text"`
}

// CallbackQuery is an inline-button press.
type CallbackQuery struct {
	ID      string   `json:"id"`
	From    *User    `json:"from"`
	Message *Message `json:"message"`
	Data    string   `json:"data"`
}

// User carries the opaque numeric user identifier the flow is keyed by.
type User struct {
	ID int64 `json:"id"`
}

// Chat identifies where replies go.
type Chat struct {
	ID int64 `json:"id"`
}

// knownCommands maps /slash commands to flow commands.
var knownCommands = map[string]flow.Command{
	"/start":  flow.CommandStart,
	"/new":    flow.CommandNew,
	"/cancel": flow.CommandCancel,
	"/rules":  flow.CommandRules,
	"/safety": flow.CommandSafety,
}

// ─── Handler ─────────────────────────────────────────────────────────────────

// Handler receives webhook updates, maps them to flow events, and delivers
// the engine's replies back through the Bot API client.
type Handler struct {
	engine *flow.Engine
	client *Client
}

// NewHandler returns a configured Handler.
func NewHandler(engine *flow.Engine, client *Client) *Handler {
	return &Handler{engine: engine, client: client}
}

// RegisterRoutes mounts the webhook route on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/webhook", h.handleUpdate)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var upd Update
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "invalid update body", http.StatusBadRequest)
		return
	}

	switch {
	case upd.CallbackQuery != nil:
		h.handleCallback(r, upd.CallbackQuery)
	case upd.Message != nil:
		h.handleMessage(r, upd.Message)
	}

	// Always 200: Telegram retries non-2xx deliveries, and a permanently
	// failing update would wedge the webhook queue.
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) handleMessage(r *http.Request, msg *Message) {
	if msg.From == nil || msg.Text == "" {
		return
	}

	ev := flow.Event{Text: msg.Text}
	if strings.HasPrefix(msg.Text, "/") {
		// Commands may arrive as "/start@BotName" in groups.
		name, _, _ := strings.Cut(msg.Text, "@")
		name = strings.TrimSpace(name)
		cmd, ok := knownCommands[name]
		if !ok {
			return
		}
		ev = flow.Event{Command: cmd}
	}

	reply, err := h.engine.HandleEvent(r.Context(), msg.From.ID, ev)
	if err != nil {
		log.Printf("[webhook] user %d: engine error: %v", msg.From.ID, err)
		return
	}
	h.deliver(r, msg.Chat.ID, reply)
}

func (h *Handler) handleCallback(r *http.Request, cb *CallbackQuery) {
	if cb.From == nil {
		return
	}

	reply, err := h.engine.HandleEvent(r.Context(), cb.From.ID, flow.Event{Choice: cb.Data})
	if err != nil {
		log.Printf("[webhook] user %d: engine error: %v", cb.From.ID, err)
		return
	}

	// Acknowledge the press; carries the blocking alert when the engine
	// asks for one.
	if err := h.client.AnswerCallbackQuery(r.Context(), cb.ID, reply.Alert, reply.Alert != ""); err != nil {
		log.Printf("[webhook] answerCallbackQuery failed: %v", err)
	}

	chatID := cb.From.ID
	if cb.Message != nil {
		chatID = cb.Message.Chat.ID
	}
	h.deliver(r, chatID, reply)
}

// deliver sends every message of a reply in order.
func (h *Handler) deliver(r *http.Request, chatID int64, reply flow.Reply) {
	for _, msg := range reply.Messages {
		if err := h.client.SendMessage(r.Context(), chatID, msg.Text, msg.Keyboard); err != nil {
			log.Printf("[webhook] sendMessage to chat %d failed: %v", chatID, err)
		}
	}
}
