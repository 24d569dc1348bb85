package repository

import (
	"context"
	"time"

	"jobboard/internal/domain/entity"
	"jobboard/internal/errors"

	"github.com/google/uuid"
)

// ErrOTPNotFound is returned when the user has no entry for the requested purpose.
var ErrOTPNotFound = errors.New("otp entry not found")

// OTPRepository stores hashed one-time codes, one per (user, purpose).
type OTPRepository interface {
	// Upsert atomically replaces any entry of the same purpose. The last writer wins.
	Upsert(ctx context.Context, entry *entity.OTPEntry) error

	// Find returns the entry of the purpose or ErrOTPNotFound.
	Find(ctx context.Context, userID uuid.UUID, purpose entity.OTPPurpose) (*entity.OTPEntry, error)

	// DeleteExpired removes every entry that expired before now, across all users.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
