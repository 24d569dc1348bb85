package impl

import (
	"context"
	"crypto/rand"
	"io"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"jobboard/config"
	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultOTPLength  = 6
	defaultOTPTTL     = 10 * time.Minute
	otpPublishTimeout = 5 * time.Second
)

// otpService implements the OTPUsecase interface.
type otpService struct {
	otpRepo   repository.OTPRepository
	hasher    service.PasswordHasher
	publisher service.OTPPublisher
	limiter   service.CooldownLimiter
	length    int
	ttl       time.Duration
	cooldown  time.Duration
	random    io.Reader
	now       func() time.Time
	logger    *slog.Logger
}

// OTPServiceParams holds dependencies for the OTP service, injected by Fx.
type OTPServiceParams struct {
	fx.In

	OTPRepo   repository.OTPRepository
	Hasher    service.PasswordHasher
	Publisher service.OTPPublisher
	Limiter   service.CooldownLimiter
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOTPService is the constructor for otpService.
func NewOTPService(params OTPServiceParams) usecase.OTPUsecase {
	srv := &otpService{
		otpRepo:   params.OTPRepo,
		hasher:    params.Hasher,
		publisher: params.Publisher,
		limiter:   params.Limiter,
		length:    defaultOTPLength,
		ttl:       defaultOTPTTL,
		random:    rand.Reader,
		now:       time.Now,
		logger:    params.Logger,
	}

	if params.Config != nil && params.Config.OTP != nil {
		if params.Config.OTP.Length > 0 {
			srv.length = params.Config.OTP.Length
		}
		if params.Config.OTP.TTL > 0 {
			srv.ttl = params.Config.OTP.TTL
		}
		srv.cooldown = params.Config.OTP.ResendCooldown
	}

	return srv
}

func (srv *otpService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Request generates a code, stores its hash in place of any previous entry of the purpose
// and hands the plaintext to the delivery publisher.
func (srv *otpService) Request(ctx context.Context, user *entity.User, purpose entity.OTPPurpose) error {
	if !purpose.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown otp purpose")
	}

	if err := srv.acquireCooldown(ctx, user.ID, purpose); err != nil {
		return err
	}

	code, err := generateNumericCode(srv.random, srv.length)
	if err != nil {
		return errors.Wrap(err, "failed to generate otp")
	}

	codeHash, err := srv.hasher.Hash(code)
	if err != nil {
		srv.log(ctx).Error("Failed to hash otp", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash otp")
	}

	now := srv.now()
	entry := &entity.OTPEntry{
		UserID:    user.ID,
		Purpose:   purpose,
		CodeHash:  codeHash,
		ExpiresAt: now.Add(srv.ttl),
		CreatedAt: now,
	}
	if err := srv.otpRepo.Upsert(ctx, entry); err != nil {
		return errors.Wrap(err, "failed to store otp")
	}

	event := &entity.OTPDeliveryEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		PrincipalID: user.ID,
		Email:       user.Email,
		Name:        strings.TrimSpace(user.FullName()),
		Purpose:     purpose,
		Code:        code,
	}

	// Delivery must outlive the request that triggered it.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), otpPublishTimeout)
	defer cancel()

	if err := srv.publisher.Publish(publishCtx, event); err != nil {
		srv.log(ctx).Error("Failed to queue otp delivery",
			slog.String("user_id", user.ID.String()),
			slog.String("purpose", purpose.String()),
			slog.Any("error", err),
		)

		return domainerrors.ErrInternalError.WrapMessage("failed to queue otp delivery")
	}

	srv.log(ctx).Info("OTP issued",
		slog.String("user_id", user.ID.String()),
		slog.String("purpose", purpose.String()),
		slog.Time("expires_at", entry.ExpiresAt),
	)

	return nil
}

// acquireCooldown throttles repeated requests. A limiter outage does not block the request.
func (srv *otpService) acquireCooldown(ctx context.Context, userID uuid.UUID, purpose entity.OTPPurpose) error {
	if srv.limiter == nil || srv.cooldown <= 0 {
		return nil
	}

	granted, err := srv.limiter.Acquire(ctx, otpCooldownKey(userID, purpose), srv.cooldown)
	if err != nil {
		srv.log(ctx).Warn("OTP cooldown check failed, allowing request", slog.Any("error", err))

		return nil
	}
	if !granted {
		return domainerrors.ErrOTPRequestThrottled
	}

	return nil
}

// Verify checks existence, then the code, then the expiry.
func (srv *otpService) Verify(ctx context.Context, user *entity.User, purpose entity.OTPPurpose, code string) error {
	entry, err := srv.otpRepo.Find(ctx, user.ID, purpose)
	if err != nil {
		if errors.Is(err, repository.ErrOTPNotFound) {
			return domainerrors.ErrNoSuchOTP
		}

		return errors.Wrap(err, "failed to load otp")
	}

	if !srv.hasher.Check(code, entry.CodeHash) {
		return domainerrors.ErrOTPMismatch
	}

	if entry.IsExpired(srv.now()) {
		return domainerrors.ErrExpiredOTP
	}

	return nil
}

// Sweep removes expired entries of every user.
func (srv *otpService) Sweep(ctx context.Context) (int64, error) {
	removed, err := srv.otpRepo.DeleteExpired(ctx, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to sweep expired otps")
	}

	srv.log(ctx).Info("Expired OTPs swept", slog.Int64("removed", removed))

	return removed, nil
}

func otpCooldownKey(userID uuid.UUID, purpose entity.OTPPurpose) string {
	return "otp:" + purpose.String() + ":" + userID.String()
}

// generateNumericCode draws each digit uniformly from the reader.
func generateNumericCode(random io.Reader, length int) (string, error) {
	ten := big.NewInt(10)

	var b strings.Builder
	b.Grow(length)
	for range length {
		n, err := rand.Int(random, ten)
		if err != nil {
			return "", errors.WithStack(err)
		}
		b.WriteByte(byte('0' + n.Int64()))
	}

	return b.String(), nil
}
