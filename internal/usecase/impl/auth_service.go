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

const minPasswordLength = 8

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	codec             service.FieldCodec
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	otp               usecase.OTPUsecase
	gate              usecase.AuthGate
	now               func() time.Time
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo          repository.UserRepository
	Hasher            service.PasswordHasher
	Codec             service.FieldCodec
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	OTP               usecase.OTPUsecase
	Gate              usecase.AuthGate
	Logger            *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		codec:             params.Codec,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		otp:               params.OTP,
		gate:              params.Gate,
		now:               time.Now,
		logger:            params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an unconfirmed system account and mails the confirmation code.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.UserProfile, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if email == "" || input.Phone == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email and phone number are required")
	}
	if len(input.Password) < minPasswordLength {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("password does not meet security requirements")
	}

	exists, err := srv.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check email")
	}
	if exists {
		return nil, domainerrors.ErrDuplicateCredential.WrapMessage("email already registered")
	}

	phoneIndex := srv.codec.Fingerprint(input.Phone)
	exists, err = srv.userRepo.ExistsByPhoneIndex(ctx, phoneIndex, uuid.Nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check phone number")
	}
	if exists {
		return nil, domainerrors.ErrDuplicateCredential.WrapMessage("phone number already registered")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	encryptedPhone, err := srv.codec.Encrypt(input.Phone)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encrypt phone number")
	}

	gender := input.Gender
	if gender == "" {
		gender = entity.GenderUnspecified
	}

	user := &entity.User{
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		Email:          email,
		PasswordHash:   passwordHash,
		EncryptedPhone: encryptedPhone,
		PhoneIndex:     phoneIndex,
		Gender:         gender,
		BirthDate:      input.BirthDate,
		Role:           entity.RoleUser,
		Provider:       entity.ProviderSystem,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	// The account exists at this point; a failed code can be re-requested.
	if err := srv.otp.Request(ctx, user, entity.OTPPurposeConfirmEmail); err != nil {
		srv.log(ctx).Warn("Failed to issue confirmation code after registration",
			slog.String("user_id", user.ID.String()),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Debug("Registration completed", slog.String("user_id", user.ID.String()))

	return user.OwnProfile(input.Phone), nil
}

// ResendConfirmation issues a new confirmation code for an account that is not yet confirmed.
func (srv *authService) ResendConfirmation(ctx context.Context, email string) error {
	user, err := srv.findActiveByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.IsConfirmed {
		return domainerrors.ErrAlreadyConfirmed
	}

	return srv.otp.Request(ctx, user, entity.OTPPurposeConfirmEmail)
}

// ConfirmEmail marks the account confirmed when the code matches.
func (srv *authService) ConfirmEmail(ctx context.Context, input *usecase.ConfirmEmailInput) error {
	user, err := srv.findActiveByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if user.IsConfirmed {
		return domainerrors.ErrAlreadyConfirmed
	}

	if err := srv.otp.Verify(ctx, user, entity.OTPPurposeConfirmEmail, input.Code); err != nil {
		return err
	}

	if err := srv.userRepo.SetConfirmed(ctx, user.ID); err != nil {
		return errors.Wrap(err, "failed to confirm email")
	}

	srv.log(ctx).Info("Email confirmed", slog.String("user_id", user.ID.String()))

	return nil
}

// Login checks the password of a confirmed system account and issues the token pair of its realm.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.findActiveByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user.Provider != entity.ProviderSystem {
		return nil, domainerrors.ErrProviderMismatch.WrapMessage("account uses google sign-in")
	}
	if !user.IsConfirmed {
		return nil, domainerrors.ErrUserNotConfirmed
	}
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Invalid password", slog.String("user_id", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueLogin(ctx, user)
}

// GoogleLogin signs in with a Google ID token, creating a confirmed google account on first use.
func (srv *authService) GoogleLogin(ctx context.Context, idToken string) (*usecase.LoginOutput, error) {
	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}
	if !oauthUser.EmailVerified {
		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage("google email is not verified")
	}

	user, err := srv.userRepo.FindByEmail(ctx, oauthUser.Email)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		user, err = srv.createGoogleUser(ctx, oauthUser)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, errors.Wrap(err, "failed to find user by email")
	case user.IsDeleted():
		return nil, domainerrors.ErrUserNotFound
	case user.IsBanned():
		return nil, domainerrors.ErrAccountBanned
	case user.Provider != entity.ProviderGoogle:
		return nil, domainerrors.ErrProviderMismatch.WrapMessage("email is registered with a password")
	}

	return srv.issueLogin(ctx, user)
}

func (srv *authService) createGoogleUser(ctx context.Context, oauthUser *service.OAuthUser) (*entity.User, error) {
	user := &entity.User{
		FirstName:   oauthUser.GivenName,
		LastName:    oauthUser.FamilyName,
		Email:       normalizeEmail(oauthUser.Email),
		Gender:      entity.GenderUnspecified,
		Role:        entity.RoleUser,
		Provider:    entity.ProviderGoogle,
		IsConfirmed: true,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create google user")
	}

	srv.log(ctx).Info("Google account created", slog.String("user_id", user.ID.String()))

	return user, nil
}

// ForgotPassword mails a reset code to a system account.
func (srv *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := srv.findActiveByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.Provider != entity.ProviderSystem {
		return domainerrors.ErrProviderMismatch.WrapMessage("account uses google sign-in")
	}

	return srv.otp.Request(ctx, user, entity.OTPPurposeForgotPassword)
}

// ResetPassword overwrites the password when the reset code matches. Every token issued before is invalidated.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if len(input.NewPassword) < minPasswordLength {
		return domainerrors.ErrValidationFailed.WrapMessage("password does not meet security requirements")
	}

	user, err := srv.findActiveByEmail(ctx, input.Email)
	if err != nil {
		return err
	}

	if err := srv.otp.Verify(ctx, user, entity.OTPPurposeForgotPassword, input.Code); err != nil {
		return err
	}

	passwordHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during reset", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed
	}

	if err := srv.userRepo.UpdatePassword(ctx, user.ID, passwordHash, srv.now()); err != nil {
		return errors.Wrap(err, "failed to reset password")
	}

	srv.log(ctx).Info("Password reset", slog.String("user_id", user.ID.String()))

	return nil
}

// RefreshToken exchanges a refresh token for a new access token in the principal's realm.
func (srv *authService) RefreshToken(ctx context.Context, authorization string) (*usecase.RefreshOutput, error) {
	user, err := srv.gate.Authenticate(ctx, authorization, entity.TokenPurposeRefresh)
	if err != nil {
		return nil, err
	}

	accessToken, err := srv.tokenService.Issue(user.ID, user.Role.Realm(), entity.TokenPurposeAccess)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.RefreshOutput{AccessToken: accessToken}, nil
}

func (srv *authService) issueLogin(ctx context.Context, user *entity.User) (*usecase.LoginOutput, error) {
	tokens, err := srv.tokenService.IssueAuthPair(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue tokens")
	}

	srv.log(ctx).Info("User logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("provider", string(user.Provider)),
	)

	return &usecase.LoginOutput{
		Tokens: tokens,
		User:   user.SummaryProfile(),
	}, nil
}

// findActiveByEmail treats banned and deleted accounts as missing.
func (srv *authService) findActiveByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}
	if !user.IsActive() {
		return nil, domainerrors.ErrUserNotFound
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
