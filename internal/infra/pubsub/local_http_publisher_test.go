package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobboard/internal/domain/entity"
	"jobboard/internal/infra/pubsub/push"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received push.Envelope
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	event := newEvent("482913")
	event.RequestID = "req-1"

	require.NoError(t, publisher.Publish(context.Background(), event))
	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "otp_delivery", received.Message.Attributes["event_type"])
	assert.NotEmpty(t, received.Message.MessageID)

	decoded, err := received.Event()
	require.NoError(t, err)
	assert.Equal(t, event.PrincipalID, decoded.PrincipalID)
	assert.Equal(t, "482913", decoded.Code)
	assert.Equal(t, entity.OTPPurposeConfirmEmail, decoded.Purpose)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	err := publisher.Publish(context.Background(), newEvent("482913"))
	assert.ErrorContains(t, err, "500")
}
