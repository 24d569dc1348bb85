package usecase

import (
	"context"

	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdatePasswordInput carries the current and the new password of the acting user.
type UpdatePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// UserUsecase defines the profile operations of an authenticated user.
type UserUsecase interface {
	// GetOwnProfile is the only read path that decrypts the phone number.
	GetOwnProfile(ctx context.Context, user *entity.User) (*entity.UserProfile, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error)
	UpdateProfile(ctx context.Context, user *entity.User, update *entity.UserProfileUpdate) (*entity.UserProfile, error)
	UpdatePassword(ctx context.Context, user *entity.User, input *UpdatePasswordInput) error
	SoftDelete(ctx context.Context, actor *entity.User, targetID uuid.UUID) error
}
