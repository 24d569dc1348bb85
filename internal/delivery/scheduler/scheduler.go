// Package scheduler runs the periodic maintenance jobs of the API process.
package scheduler

import (
	"context"
	"log/slog"

	"jobboard/config"
	"jobboard/internal/delivery"
	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/lifecycle"
	"jobboard/internal/errors"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const defaultSweepSchedule = "0 */6 * * *"

type scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// Params holds dependencies for the scheduler, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	OTPUC  usecase.OTPUsecase
}

// NewScheduler registers the OTP sweep on its configured schedule.
func NewScheduler(params Params) (delivery.Delivery, error) {
	schedule := defaultSweepSchedule
	if params.Cfg.OTP != nil && params.Cfg.OTP.SweepSchedule != "" {
		schedule = params.Cfg.OTP.SweepSchedule
	}

	c := cron.New(cron.WithChain(cron.Recover(cronLogger{params.Logger})))
	if _, err := c.AddFunc(schedule, newSweepJob(params.OTPUC, params.Logger)); err != nil {
		return nil, errors.Wrapf(err, "invalid otp sweep schedule %q", schedule)
	}

	s := &scheduler{cron: c, logger: params.Logger}
	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	params.Logger.Info("OTP sweep scheduled", slog.String("schedule", schedule))

	return s, nil
}

// Serve starts the cron loop in the background and returns.
func (s *scheduler) Serve(_ context.Context) error {
	s.logger.Info("Starting scheduler")
	s.cron.Start()

	return nil
}

func (s *scheduler) stop(ctx context.Context) error {
	s.logger.Info("Shutting down scheduler")

	stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-stopCtx.Done():
		return errors.Wrap(stopCtx.Err(), "waiting for running jobs")
	}
}

// newSweepJob removes expired OTP entries. Failures are logged and retried on the next tick.
func newSweepJob(otpUC usecase.OTPUsecase, logger *slog.Logger) func() {
	return func() {
		runID := uuid.New().String()
		jobLogger := logger.With(slog.String("request_id", runID), slog.String("job", "otp_sweep"))

		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()
		ctx = deliverycontext.WithRequestID(ctx, runID)
		ctx = deliverycontext.WithLogger(ctx, jobLogger)

		removed, err := otpUC.Sweep(ctx)
		if err != nil {
			jobLogger.Error("OTP sweep failed", slog.Any("error", err))

			return
		}

		jobLogger.Debug("OTP sweep finished", slog.Int64("removed", removed))
	}
}

// cronLogger adapts slog to cron.Logger so recovered panics end up in the service log.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append([]any{slog.Any("error", err)}, keysAndValues...)...)
}
