// Package redis provides Redis-backed throttling.
package redis

import (
	"context"
	"log/slog"

	"jobboard/config"
	"jobboard/internal/domain/lifecycle"
	"jobboard/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Redis client and ties its lifetime to the application.
func New(params Params) (*goredis.Client, error) {
	if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
		return nil, errors.New("redis configuration is required")
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(client.Ping(ctx).Err(), "failed to ping Redis")
		},
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing Redis client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
