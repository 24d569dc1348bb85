package usecase

import (
	"context"
	"time"

	"jobboard/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a system account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Gender    entity.Gender
	BirthDate *time.Time
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ConfirmEmailInput carries the code mailed after registration.
type ConfirmEmailInput struct {
	Email string
	Code  string
}

// ResetPasswordInput carries the code mailed by ForgotPassword and the new password.
type ResetPasswordInput struct {
	Email       string
	Code        string
	NewPassword string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	Tokens *entity.AuthTokens
	User   *entity.UserProfile
}

// RefreshOutput carries the access token issued for a refresh token.
type RefreshOutput struct {
	AccessToken string
}

// AuthUsecase defines the account lifecycle operations exposed under /api/auth.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.UserProfile, error)
	ResendConfirmation(ctx context.Context, email string) error
	ConfirmEmail(ctx context.Context, input *ConfirmEmailInput) error
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GoogleLogin(ctx context.Context, idToken string) (*LoginOutput, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
	RefreshToken(ctx context.Context, authorization string) (*RefreshOutput, error)
}
