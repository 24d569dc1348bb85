package main

import (
	"context"
	"log/slog"
	"os"

	"jobboard/config"
	"jobboard/internal/delivery"
	"jobboard/internal/delivery/api"
	"jobboard/internal/delivery/api/middleware"
	"jobboard/internal/delivery/api/router/handler"
	"jobboard/internal/delivery/gql"
	"jobboard/internal/delivery/realtime"
	"jobboard/internal/delivery/scheduler"
	"jobboard/internal/domain/service"
	"jobboard/internal/infra/auth"
	"jobboard/internal/infra/auth/google"
	"jobboard/internal/infra/cache/redis"
	logs "jobboard/internal/infra/log"
	"jobboard/internal/infra/mail"
	"jobboard/internal/infra/persistence/mongodb"
	"jobboard/internal/infra/persistence/postgres"
	"jobboard/internal/infra/pubsub"
	"jobboard/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		mongodb.New,
		redis.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewOTPRepository,
			postgres.NewCompanyRepository,
			mongodb.NewChatRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewFieldCodec,
			google.NewAuthService,
			redis.NewCooldownLimiter,
			mail.NewMailer,
			fx.Annotate(
				mail.NewDispatcher,
				fx.As(new(service.OTPDeliveryHandler)),
			),
			realtime.NewRooms,
			func(rooms *realtime.Rooms) service.RealtimeNotifier { return rooms },
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthGate,
			impl.NewOTPService,
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewCompanyService,
			impl.NewAdminService,
			impl.NewChatService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewCompanyHandler,
			handler.NewAdminHandler,
			handler.NewChatHandler,
			gql.NewHandler,
			realtime.NewHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
