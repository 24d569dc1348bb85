package repository

import (
	"context"

	"jobboard/internal/domain/entity"
	"jobboard/internal/errors"

	"github.com/google/uuid"
)

// ErrChatNotFound is returned when two users have no conversation yet.
var ErrChatNotFound = errors.New("chat not found")

// ChatRepository persists conversations between two users.
type ChatRepository interface {
	// FindBetween returns the conversation of the two users regardless of who opened it.
	FindBetween(ctx context.Context, a, b uuid.UUID) (*entity.Chat, error)

	// Create stores a new conversation opened by chat.SenderID with its first message.
	Create(ctx context.Context, chat *entity.Chat) error

	// AppendMessage pushes a message onto an existing conversation.
	AppendMessage(ctx context.Context, chatID string, message entity.ChatMessage) error
}
