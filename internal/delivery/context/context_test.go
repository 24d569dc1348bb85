package context

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRequestID(t *testing.T) {
	assert.Equal(t, "abc-123", NormalizeRequestID("abc-123"))

	for _, raw := range []string{"", strings.Repeat("a", 65), "has space", "line\nbreak"} {
		got := NormalizeRequestID(raw)
		_, err := uuid.Parse(got)
		assert.NoError(t, err, "input %q", raw)
	}
}

func TestWithPrincipal(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))
	userID := uuid.New()

	ctx = WithPrincipal(ctx, userID, "user")

	got, ok := GetPrincipalID(ctx)
	require.True(t, ok)
	assert.Equal(t, userID, got)

	GetLogger(ctx).Info("hello")
	assert.Contains(t, buf.String(), "principal_id="+userID.String())
	assert.Contains(t, buf.String(), "principal_role=user")
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	_, ok := GetPrincipalID(context.Background())
	assert.False(t, ok)
}
