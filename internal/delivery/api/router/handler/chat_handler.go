package handler

import (
	"log/slog"
	"net/http"

	"jobboard/internal/delivery/api/response"
	"jobboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChatHandlerParams holds dependencies for ChatHandler, injected by Fx.
type ChatHandlerParams struct {
	fx.In

	ChatUC usecase.ChatUsecase
	Logger *slog.Logger
}

// ChatHandler serves the conversation endpoints under /api/chats.
type ChatHandler struct {
	chatUC usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler.
func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	return &ChatHandler{
		chatUC: params.ChatUC,
		logger: params.Logger,
	}
}

// SendMessageRequest carries the text of a chat message.
type SendMessageRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// GetHistory returns the conversation between the caller and another user.
func (h *ChatHandler) GetHistory(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	peerID, err := parseIDParam(c, "userId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	chat, err := h.chatUC.History(c.Request().Context(), user, peerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, chat)
}

// SendMessage appends a message to the conversation with another user.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	receiverID, err := parseIDParam(c, "userId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SendMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	message, err := h.chatUC.Send(c.Request().Context(), user, receiverID, req.Content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, message)
}
