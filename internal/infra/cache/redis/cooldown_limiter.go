package redis

import (
	"context"
	"time"

	"jobboard/internal/domain/service"
	"jobboard/internal/errors"

	goredis "github.com/redis/go-redis/v9"
)

const cooldownKeyPrefix = "cooldown:"

// cooldownLimiter grants a key once per window with SET NX EX.
type cooldownLimiter struct {
	client goredis.Cmdable
}

// NewCooldownLimiter is the constructor for cooldownLimiter.
func NewCooldownLimiter(client *goredis.Client) service.CooldownLimiter {
	return &cooldownLimiter{client: client}
}

// Acquire returns true and starts the window when no window is open for the key.
func (l *cooldownLimiter) Acquire(ctx context.Context, key string, cooldown time.Duration) (bool, error) {
	if cooldown <= 0 {
		return true, nil
	}

	acquired, err := l.client.SetNX(ctx, cooldownKeyPrefix+key, 1, cooldown).Result()
	if err != nil {
		return false, errors.Wrap(err, "acquire cooldown")
	}

	return acquired, nil
}
