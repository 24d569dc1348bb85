package entity

import (
	"time"

	"github.com/google/uuid"
)

// Chat is a conversation between the user who opened it and the receiver.
type Chat struct {
	ID         string        `json:"id"`
	SenderID   uuid.UUID     `json:"senderId"`
	ReceiverID uuid.UUID     `json:"receiverId"`
	Messages   []ChatMessage `json:"messages"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// ChatMessage is a single message inside a chat.
type ChatMessage struct {
	SenderID  uuid.UUID `json:"senderId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// HasParticipant reports whether the user takes part in the chat.
func (c *Chat) HasParticipant(userID uuid.UUID) bool {
	return c.SenderID == userID || c.ReceiverID == userID
}

// ChatMessageEvent is pushed to the receiver's live connections when a message arrives.
type ChatMessageEvent struct {
	ChatID     string    `json:"chatId"`
	SenderID   uuid.UUID `json:"senderId"`
	ReceiverID uuid.UUID `json:"receiverId"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}
