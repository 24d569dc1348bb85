package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/constants"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/errors"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type authenticateRequest struct {
	Token string `json:"token"`
}

type authenticatedPayload struct {
	UserID uuid.UUID `json:"userId"`
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
}

// ErrorPayload is sent with the error event.
type ErrorPayload struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// HandlerParams holds dependencies for Handler, injected by Fx.
type HandlerParams struct {
	fx.In

	Rooms  *Rooms
	Gate   usecase.AuthGate
	ChatUC usecase.ChatUsecase
	Logger *slog.Logger
}

// Handler upgrades requests to websocket sessions.
type Handler struct {
	rooms    *Rooms
	gate     usecase.AuthGate
	chatUC   usecase.ChatUsecase
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewHandler is the constructor for Handler.
func NewHandler(params HandlerParams) *Handler {
	return &Handler{
		rooms:  params.Rooms,
		gate:   params.Gate,
		chatUC: params.ChatUC,
		logger: params.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browsers connect from the web client origin; the principal is proven by the authenticate event.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Serve upgrades the request and runs the session until either side closes it.
func (h *Handler) Serve(c echo.Context) error {
	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already replied with an HTTP error.
		return nil
	}

	ctx := c.Request().Context()
	s := &session{
		handler: h,
		conn:    newConn(ws),
		ctx:     ctx,
		logger:  deliverycontext.GetLoggerOrDefault(ctx, h.logger),
	}
	s.run()

	return nil
}

// session is the server side of one connection. Its fields are only touched by the reading goroutine.
type session struct {
	handler *Handler
	conn    *conn
	ctx     context.Context
	logger  *slog.Logger
	user    *entity.User
}

func (s *session) run() {
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.conn.writePump()
	}()

	code, reason := s.readPump()

	if s.user != nil {
		s.handler.rooms.leave(s.user.ID, s.conn)
	}
	s.conn.shutdown(code, reason)
	<-writerDone
	_ = s.conn.ws.Close()
}

// readPump processes inbound frames and returns the close code once the session must end.
func (s *session) readPump() (int, string) {
	ws := s.conn.ws
	ws.SetReadLimit(maxMessageSize)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var in Envelope
		if err := ws.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("Websocket closed unexpectedly", slog.Any("error", err))
			}

			return websocket.CloseNormalClosure, ""
		}

		if err := s.dispatch(s.ctx, &in); err != nil {
			return websocket.ClosePolicyViolation, closeReason(err)
		}
	}
}

// dispatch handles one event. A returned error ends the session.
func (s *session) dispatch(ctx context.Context, in *Envelope) error {
	switch in.Event {
	case constants.EventAuthenticate:
		return s.authenticate(ctx, in.Data)
	case constants.EventChatSendMessage:
		return s.sendMessage(ctx, in.Data)
	default:
		s.emitError(domainerrors.ErrValidationFailed.WithDetails("unknown event " + in.Event))

		return nil
	}
}

func (s *session) authenticate(ctx context.Context, data json.RawMessage) error {
	if s.user != nil {
		s.emitError(domainerrors.ErrInvalidAction.WithDetails("connection is already authenticated"))

		return nil
	}

	var req authenticateRequest
	if err := json.Unmarshal(data, &req); err != nil {
		s.emitError(domainerrors.ErrMissingAuth)

		return domainerrors.ErrMissingAuth
	}

	user, err := s.handler.gate.Authenticate(ctx, strings.TrimSpace(req.Token), entity.TokenPurposeAccess)
	if err != nil {
		s.emitError(err)

		return errors.Wrap(err, "authenticate")
	}

	s.user = user
	s.ctx = deliverycontext.WithPrincipal(ctx, user.ID, string(user.Role))
	s.logger = deliverycontext.GetLoggerOrDefault(s.ctx, s.logger)
	s.handler.rooms.join(user.ID, s.conn)
	s.logger.Debug("Websocket authenticated")
	s.emit(constants.EventAuthenticated, authenticatedPayload{UserID: user.ID})

	return nil
}

func (s *session) sendMessage(ctx context.Context, data json.RawMessage) error {
	if s.user == nil {
		s.emitError(domainerrors.ErrMissingAuth)

		return domainerrors.ErrMissingAuth
	}

	if err := s.handler.gate.Authorize(s.user, entity.RoleUser); err != nil {
		s.emitError(err)

		return nil
	}

	var req sendMessageRequest
	if err := json.Unmarshal(data, &req); err != nil {
		s.emitError(domainerrors.ErrValidationFailed.WithDetails("malformed message"))

		return nil
	}

	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		s.emitError(domainerrors.ErrValidationFailed.WithDetails("invalid receiverId"))

		return nil
	}

	message, err := s.handler.chatUC.Send(ctx, s.user, receiverID, req.Content)
	if err != nil {
		s.emitError(err)

		return nil
	}

	// Echo the stored message back as the acknowledgement.
	s.emit(constants.EventChatSendMessage, message)

	return nil
}

func (s *session) emit(event string, payload any) {
	frame, err := encodeFrame(event, payload)
	if err != nil {
		s.logger.Error("Failed to encode realtime event", slog.String("event", event), slog.Any("error", err))

		return
	}

	if !s.conn.enqueue(frame) {
		s.logger.Warn("Dropping realtime event for slow connection", slog.String("event", event))
	}
}

func (s *session) emitError(err error) {
	s.emit(constants.EventError, s.errorPayload(err))
}

func (s *session) errorPayload(err error) ErrorPayload {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return ErrorPayload{Code: appErr.ErrorCode(), Message: appErr.Message(), StatusCode: appErr.HTTPCode()}
	}

	s.logger.Error("Unhandled realtime error", slog.Any("error", err))

	return ErrorPayload{
		Code:       domainerrors.ErrInternalError.ErrorCode(),
		Message:    domainerrors.ErrInternalError.Message(),
		StatusCode: domainerrors.ErrInternalError.HTTPCode(),
	}
}

// closeReason fits the error text into a close frame, which caps the reason at 123 bytes.
func closeReason(err error) string {
	const maxReason = 120

	reason := err.Error()
	if len(reason) > maxReason {
		reason = reason[:maxReason]
	}

	return reason
}
