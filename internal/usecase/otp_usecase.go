package usecase

import (
	"context"

	"jobboard/internal/domain/entity"
)

// OTPUsecase manages the one-time codes used for email confirmation and password reset.
type OTPUsecase interface {
	// Request generates a fresh code for the purpose, replaces any previous one and queues it for delivery.
	Request(ctx context.Context, user *entity.User, purpose entity.OTPPurpose) error

	// Verify checks a candidate code. The entry is left in place for the sweep.
	Verify(ctx context.Context, user *entity.User, purpose entity.OTPPurpose, code string) error

	// Sweep deletes every expired entry and returns how many were removed.
	Sweep(ctx context.Context) (int64, error)
}
