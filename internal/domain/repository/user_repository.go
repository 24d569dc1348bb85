// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"jobboard/internal/domain/entity"
	"jobboard/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, including banned and deleted accounts.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail reports whether any account uses the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByPhoneIndex reports whether any account other than excludeID uses the phone fingerprint.
	ExistsByPhoneIndex(ctx context.Context, phoneIndex string, excludeID uuid.UUID) (bool, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile writes the profile fields of the user (names, phone, gender, birth date).
	UpdateProfile(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces the password hash and records the credential change instant.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string, changedAt time.Time) error

	// SetConfirmed marks the email of the user as confirmed.
	SetConfirmed(ctx context.Context, id uuid.UUID) error

	// SetBanned sets or clears the ban marker. A nil instant unbans.
	SetBanned(ctx context.Context, id uuid.UUID, at *time.Time) error

	// SoftDelete stamps the deletion marker.
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error

	// List returns every account. Phone numbers stay encrypted.
	List(ctx context.Context) ([]*entity.User, error)
}
