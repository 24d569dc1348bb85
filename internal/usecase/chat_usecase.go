package usecase

import (
	"context"

	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
)

// ChatUsecase defines the chat between two users.
type ChatUsecase interface {
	// History returns the conversation between the actor and the peer.
	History(ctx context.Context, actor *entity.User, peerID uuid.UUID) (*entity.Chat, error)

	// Send stores the message and pushes it to the receiver's live connections.
	Send(ctx context.Context, actor *entity.User, receiverID uuid.UUID, content string) (*entity.ChatMessage, error)
}
