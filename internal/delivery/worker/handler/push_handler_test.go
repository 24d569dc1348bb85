package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"jobboard/internal/domain/entity"
	"jobboard/internal/infra/pubsub/push"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

type recordingDelivery struct {
	mu     sync.Mutex
	events []*entity.OTPDeliveryEvent
	err    error
}

func (d *recordingDelivery) Deliver(_ context.Context, event *entity.OTPDeliveryEvent) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.events = append(d.events, event)

	return d.err
}

func newTestPushHandler(delivery *recordingDelivery) *PushHandler {
	return &PushHandler{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		delivery: delivery,
	}
}

func pushBody(t *testing.T, event *entity.OTPDeliveryEvent, requestID string) string {
	t.Helper()

	event.RequestID = requestID
	envelope, err := push.Wrap(event, "projects/test/subscriptions/otp", time.Now())
	require.NoError(t, err)

	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body, authorization string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func validEvent() *entity.OTPDeliveryEvent {
	return &entity.OTPDeliveryEvent{
		PrincipalID: uuid.New(),
		Email:       "jane@example.com",
		Name:        "Jane",
		Purpose:     entity.OTPPurposeConfirmEmail,
		Code:        "123456",
	}
}

func TestPushHandler_HandlePush(t *testing.T) {
	t.Run("delivers the event", func(t *testing.T) {
		delivery := &recordingDelivery{}
		event := validEvent()

		rec := doPush(newTestPushHandler(delivery), pushBody(t, event, "req-1"), "")
		assert.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, delivery.events, 1)
		assert.Equal(t, event.Email, delivery.events[0].Email)
		assert.Equal(t, event.Code, delivery.events[0].Code)
	})

	t.Run("mail failure asks for a retry", func(t *testing.T) {
		delivery := &recordingDelivery{err: errors.New("smtp: connection refused")}

		rec := doPush(newTestPushHandler(delivery), pushBody(t, validEvent(), ""), "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("malformed event is acknowledged without delivery", func(t *testing.T) {
		delivery := &recordingDelivery{}
		event := validEvent()
		event.Purpose = "unknown"

		rec := doPush(newTestPushHandler(delivery), pushBody(t, event, ""), "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, delivery.events)
	})

	t.Run("bad base64 payload", func(t *testing.T) {
		delivery := &recordingDelivery{}

		rec := doPush(newTestPushHandler(delivery), `{"message":{"data":"%%%"}}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, delivery.events)
	})
}

func TestPushHandler_VerifyPushAuth(t *testing.T) {
	newVerifyingHandler := func(delivery *recordingDelivery, issuer string) *PushHandler {
		h := newTestPushHandler(delivery)
		h.verifyPushAuth = true
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			if token != "good" {
				return nil, errors.New("bad signature")
			}
			if audience != "http://example.com/push" {
				return nil, errors.Errorf("unexpected audience %s", audience)
			}

			return &idtoken.Payload{Issuer: issuer, Claims: map[string]any{"email_verified": true}}, nil
		}

		return h
	}

	t.Run("valid token", func(t *testing.T) {
		delivery := &recordingDelivery{}
		rec := doPush(newVerifyingHandler(delivery, "https://accounts.google.com"), pushBody(t, validEvent(), ""), "Bearer good")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, delivery.events, 1)
	})

	t.Run("missing token", func(t *testing.T) {
		delivery := &recordingDelivery{}
		rec := doPush(newVerifyingHandler(delivery, "https://accounts.google.com"), pushBody(t, validEvent(), ""), "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, delivery.events)
	})

	t.Run("invalid token", func(t *testing.T) {
		delivery := &recordingDelivery{}
		rec := doPush(newVerifyingHandler(delivery, "https://accounts.google.com"), pushBody(t, validEvent(), ""), "Bearer forged")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		delivery := &recordingDelivery{}
		rec := doPush(newVerifyingHandler(delivery, "https://evil.example"), pushBody(t, validEvent(), ""), "Bearer good")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
