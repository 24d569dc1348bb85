package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

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

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	codec    service.FieldCodec
	now      func() time.Time
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Codec    service.FieldCodec
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		codec:    params.Codec,
		now:      time.Now,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetOwnProfile decrypts the phone number for the account owner.
func (srv *userService) GetOwnProfile(ctx context.Context, user *entity.User) (*entity.UserProfile, error) {
	var phone string
	if user.EncryptedPhone != "" {
		decrypted, err := srv.codec.Decrypt(user.EncryptedPhone)
		if err != nil {
			srv.log(ctx).Error("Failed to decrypt phone number",
				slog.String("user_id", user.ID.String()),
				slog.Any("error", err),
			)

			return nil, domainerrors.ErrInternalError.WrapMessage("failed to read profile")
		}
		phone = decrypted
	}

	return user.OwnProfile(phone), nil
}

// GetProfile returns the public view of another account.
func (srv *userService) GetProfile(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if !user.IsActive() {
		return nil, domainerrors.ErrUserNotFound
	}

	return user.PublicProfile(), nil
}

// UpdateProfile applies the non-nil fields. A new phone number is encrypted and checked for duplicates.
func (srv *userService) UpdateProfile(ctx context.Context, user *entity.User, update *entity.UserProfileUpdate) (*entity.UserProfile, error) {
	updated := *user

	if update.FirstName != nil {
		updated.FirstName = strings.TrimSpace(*update.FirstName)
	}
	if update.LastName != nil {
		updated.LastName = strings.TrimSpace(*update.LastName)
	}
	if update.Gender != nil {
		updated.Gender = *update.Gender
	}
	if update.BirthDate != nil {
		updated.BirthDate = update.BirthDate
	}

	if update.Phone != nil {
		if err := srv.applyPhone(ctx, &updated, *update.Phone); err != nil {
			return nil, err
		}
	}

	if err := srv.userRepo.UpdateProfile(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Debug("Profile updated", slog.String("user_id", user.ID.String()))

	return srv.GetOwnProfile(ctx, &updated)
}

func (srv *userService) applyPhone(ctx context.Context, user *entity.User, phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("phone number cannot be empty")
	}

	phoneIndex := srv.codec.Fingerprint(phone)
	if phoneIndex == user.PhoneIndex {
		return nil
	}

	exists, err := srv.userRepo.ExistsByPhoneIndex(ctx, phoneIndex, user.ID)
	if err != nil {
		return errors.Wrap(err, "failed to check phone number")
	}
	if exists {
		return domainerrors.ErrDuplicateCredential.WrapMessage("phone number already registered")
	}

	encrypted, err := srv.codec.Encrypt(phone)
	if err != nil {
		return errors.Wrap(err, "failed to encrypt phone number")
	}

	user.EncryptedPhone = encrypted
	user.PhoneIndex = phoneIndex

	return nil
}

// UpdatePassword replaces the password after checking the current one. Every token issued before is invalidated.
func (srv *userService) UpdatePassword(ctx context.Context, user *entity.User, input *usecase.UpdatePasswordInput) error {
	if user.Provider != entity.ProviderSystem {
		return domainerrors.ErrProviderMismatch.WrapMessage("account uses google sign-in")
	}
	if len(input.NewPassword) < minPasswordLength {
		return domainerrors.ErrValidationFailed.WrapMessage("password does not meet security requirements")
	}
	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrInvalidCredentials.WrapMessage("current password is incorrect")
	}

	passwordHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed
	}

	if err := srv.userRepo.UpdatePassword(ctx, user.ID, passwordHash, srv.now()); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password updated", slog.String("user_id", user.ID.String()))

	return nil
}

// SoftDelete lets users delete themselves and admins delete anyone.
func (srv *userService) SoftDelete(ctx context.Context, actor *entity.User, targetID uuid.UUID) error {
	if actor.Role != entity.RoleAdmin && actor.ID != targetID {
		return domainerrors.ErrAccessDenied
	}

	target, err := srv.userRepo.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user")
	}
	if target.IsDeleted() {
		return domainerrors.ErrUserNotFound
	}

	if err := srv.userRepo.SoftDelete(ctx, targetID, srv.now()); err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted",
		slog.String("user_id", targetID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return nil
}
