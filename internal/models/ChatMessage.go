package models

import (
	"time"

	json "github.com/goccy/go-json"
)

// ChatMessage is immutable once stored: there is no edit or delete
// operation, only append.
type ChatMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	// RecipientID nil means the message is a broadcast to the whole room.
	RecipientID *string           `json:"recipientId"`
	Attachments []json.RawMessage `json:"attachments"`
	Reactions   []json.RawMessage `json:"reactions"`
}

// MessageDraft is the caller-supplied part of a chat message. ID,
// timestamp and sanitization are applied by the store on append.
type MessageDraft struct {
	UserID      string            `json:"userId" validate:"required"`
	Username    string            `json:"username" validate:"required"`
	Message     string            `json:"message" validate:"required"`
	RecipientID *string           `json:"recipientId"`
	Attachments []json.RawMessage `json:"attachments"`
	Reactions   []json.RawMessage `json:"reactions"`
}

// SentTo reports whether the message involves the given participant,
// either as sender or as direct recipient.
func (m *ChatMessage) SentTo(userID string) bool {
	if m.UserID == userID {
		return true
	}
	return m.RecipientID != nil && *m.RecipientID == userID
}
