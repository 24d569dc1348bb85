package pubsub

import (
	"context"
	"log/slog"

	"jobboard/config"
	"jobboard/internal/domain/constants"
	"jobboard/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for OTPPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Logger  *slog.Logger
	Handler service.OTPDeliveryHandler
}

// NewOTPPublisher creates an OTPPublisher based on configuration.
// Without a provider the in-process channel is used, drained by the local mail dispatcher.
func NewOTPPublisher(params PublisherParams) (service.OTPPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil {
		cfg = &config.PubSubConfig{}
	}
	logger := params.Logger

	var publisher service.OTPPublisher

	switch cfg.Provider {
	case "", constants.PubSubProviderChannel:
		size := cfg.BufferSize
		if size <= 0 {
			size = constants.DefaultOTPQueueSize
		}
		logger.Info("Using in-process channel for OTP delivery", slog.Int("buffer_size", size))

		channel := NewChannelPublisher(size, params.Handler, logger)
		params.Lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				channel.Start()

				return nil
			},
		})
		publisher = channel

	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		var err error
		publisher, err = NewGooglePubSubPublisher(context.Background(), cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing OTPPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewOTPPublisher),
)
