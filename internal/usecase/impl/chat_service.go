package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/constants"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// chatService implements the ChatUsecase interface.
type chatService struct {
	chatRepo    repository.ChatRepository
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	notifier    service.RealtimeNotifier
	now         func() time.Time
	logger      *slog.Logger
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	ChatRepo    repository.ChatRepository
	UserRepo    repository.UserRepository
	CompanyRepo repository.CompanyRepository
	Notifier    service.RealtimeNotifier
	Logger      *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		chatRepo:    params.ChatRepo,
		userRepo:    params.UserRepo,
		companyRepo: params.CompanyRepo,
		notifier:    params.Notifier,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *chatService) History(ctx context.Context, actor *entity.User, peerID uuid.UUID) (*entity.Chat, error) {
	if actor.ID == peerID {
		return nil, domainerrors.ErrInvalidAction.WrapMessage("cannot chat with yourself")
	}

	chat, err := srv.chatRepo.FindBetween(ctx, actor.ID, peerID)
	if err != nil {
		if errors.Is(err, repository.ErrChatNotFound) {
			return nil, domainerrors.ErrChatNotFound
		}

		return nil, errors.Wrap(err, "failed to load chat")
	}

	return chat, nil
}

// Send continues an existing conversation or opens a new one. Only company owners and HRs may open one.
func (srv *chatService) Send(ctx context.Context, actor *entity.User, receiverID uuid.UUID, content string) (*entity.ChatMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("message cannot be empty")
	}
	if actor.ID == receiverID {
		return nil, domainerrors.ErrInvalidAction.WrapMessage("cannot chat with yourself")
	}

	receiver, err := srv.userRepo.FindByID(ctx, receiverID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find receiver")
	}
	if !receiver.IsActive() {
		return nil, domainerrors.ErrUserNotFound
	}

	message := entity.ChatMessage{
		SenderID:  actor.ID,
		Content:   content,
		CreatedAt: srv.now(),
	}

	chatID, err := srv.store(ctx, actor, receiverID, message)
	if err != nil {
		return nil, err
	}

	srv.notifier.EmitToUser(receiverID, constants.EventChatReceiveMessage, &entity.ChatMessageEvent{
		ChatID:     chatID,
		SenderID:   actor.ID,
		ReceiverID: receiverID,
		Content:    message.Content,
		CreatedAt:  message.CreatedAt,
	})

	srv.log(ctx).Debug("Chat message sent",
		slog.String("chat_id", chatID),
		slog.String("sender_id", actor.ID.String()),
		slog.String("receiver_id", receiverID.String()),
	)

	return &message, nil
}

func (srv *chatService) store(ctx context.Context, actor *entity.User, receiverID uuid.UUID, message entity.ChatMessage) (string, error) {
	chat, err := srv.chatRepo.FindBetween(ctx, actor.ID, receiverID)
	if err == nil {
		if err := srv.chatRepo.AppendMessage(ctx, chat.ID, message); err != nil {
			return "", errors.Wrap(err, "failed to append message")
		}

		return chat.ID, nil
	}
	if !errors.Is(err, repository.ErrChatNotFound) {
		return "", errors.Wrap(err, "failed to load chat")
	}

	member, err := srv.companyRepo.IsMember(ctx, actor.ID)
	if err != nil {
		return "", errors.Wrap(err, "failed to check company membership")
	}
	if !member {
		return "", domainerrors.ErrAccessDenied.WrapMessage("only company owners and hrs can start a chat")
	}

	chat = &entity.Chat{
		SenderID:   actor.ID,
		ReceiverID: receiverID,
		Messages:   []entity.ChatMessage{message},
		CreatedAt:  message.CreatedAt,
		UpdatedAt:  message.CreatedAt,
	}
	if err := srv.chatRepo.Create(ctx, chat); err != nil {
		return "", errors.Wrap(err, "failed to create chat")
	}

	return chat.ID, nil
}
