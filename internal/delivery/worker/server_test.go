package worker

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jobboard/config"
	"jobboard/internal/delivery/worker/handler"
	"jobboard/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type nopDelivery struct{}

func (nopDelivery) Deliver(context.Context, *entity.OTPDeliveryEvent) error { return nil }

func newTestParams(t *testing.T, port int) ServerParams {
	cfg := &config.Config{}
	cfg.Worker.Port = port
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: logger,
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config:   cfg,
			Logger:   logger,
			Delivery: nopDelivery{},
		}),
	}
}

func TestNewServer(t *testing.T) {
	t.Run("requires a port", func(t *testing.T) {
		_, err := NewServer(newTestParams(t, 0))
		assert.Error(t, err)
	})

	t.Run("routes", func(t *testing.T) {
		srv, err := NewServer(newTestParams(t, 8090))
		require.NoError(t, err)
		e := srv.(*workerServer).server

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(strings.Repeat("x", 70*1024)))
		req.Header.Set("Content-Type", "application/json")
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}
