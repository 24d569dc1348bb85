package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestCooldownLimiter_Acquire(t *testing.T) {
	mr, client := newTestRedis(t)
	limiter := NewCooldownLimiter(client)
	ctx := context.Background()

	ok, err := limiter.Acquire(ctx, "otp:u1:forgot-password", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = limiter.Acquire(ctx, "otp:u1:forgot-password", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second grant inside the window must be refused")

	ok, err = limiter.Acquire(ctx, "otp:u1:confirm-email", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "keys are independent")

	mr.FastForward(time.Minute + time.Second)

	ok, err = limiter.Acquire(ctx, "otp:u1:forgot-password", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "window reopens after the cooldown")
}

func TestCooldownLimiter_ZeroCooldownAlwaysGrants(t *testing.T) {
	_, client := newTestRedis(t)
	limiter := NewCooldownLimiter(client)

	for range 3 {
		ok, err := limiter.Acquire(context.Background(), "k", 0)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestCooldownLimiter_RedisDown(t *testing.T) {
	mr, client := newTestRedis(t)
	limiter := NewCooldownLimiter(client)
	mr.Close()

	_, err := limiter.Acquire(context.Background(), "k", time.Minute)
	assert.Error(t, err)
}
