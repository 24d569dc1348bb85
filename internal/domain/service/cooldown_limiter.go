package service

import (
	"context"
	"time"
)

// CooldownLimiter grants an action at most once per cooldown window per key.
type CooldownLimiter interface {
	// Acquire returns false while a previous grant for the key is still cooling down.
	Acquire(ctx context.Context, key string, cooldown time.Duration) (bool, error)
}
