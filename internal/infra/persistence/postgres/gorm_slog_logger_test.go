package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"jobboard/config"
	deliverycontext "jobboard/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newTestGormLogger(buf *bytes.Buffer, debug bool) *gormSlogLogger {
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg).(*gormSlogLogger)
}

func sqlFn() (string, int64) { return "SELECT 1", 1 }

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("uses the request scoped logger", func(t *testing.T) {
		var buf bytes.Buffer
		l := newTestGormLogger(&buf, true)
		ctx := deliverycontext.WithLogger(context.Background(), l.logger.With(slog.String("request_id", "req-1")))

		l.Trace(ctx, time.Now(), sqlFn, nil)

		assert.Contains(t, buf.String(), "request_id=req-1")
		assert.Contains(t, buf.String(), "GORM query")
	})

	t.Run("record not found is not logged", func(t *testing.T) {
		var buf bytes.Buffer
		l := newTestGormLogger(&buf, false)

		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("unique violation is a warning", func(t *testing.T) {
		var buf bytes.Buffer
		l := newTestGormLogger(&buf, false)

		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrDuplicatedKey)

		assert.Contains(t, buf.String(), "level=WARN")
	})

	t.Run("other failures are errors", func(t *testing.T) {
		var buf bytes.Buffer
		l := newTestGormLogger(&buf, false)

		l.Trace(context.Background(), time.Now(), sqlFn, errors.New("connection reset"))

		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "connection reset")
	})

	t.Run("slow queries warn", func(t *testing.T) {
		var buf bytes.Buffer
		l := newTestGormLogger(&buf, false)

		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

		assert.Contains(t, buf.String(), "GORM slow query")
	})
}
