package telegram

import (
	"context"
	"log"
)

// Notifier forwards accepted drafts to the moderation chat. It implements
// flow.ModeratorNotifier.
type Notifier struct {
	client      *Client
	adminChatID int64
}

// NewNotifier returns a notifier targeting adminChatID.
func NewNotifier(client *Client, adminChatID int64) *Notifier {
	return &Notifier{client: client, adminChatID: adminChatID}
}

// Notify sends the formatted draft to the moderation chat.
func (n *Notifier) Notify(ctx context.Context, text string) error {
	if n.adminChatID == 0 {
		log.Println("[telegram] ADMIN_CHAT_ID not set — skipping moderator notify")
		return nil
	}
	return n.client.SendMessage(ctx, n.adminChatID, text, nil)
}
