package impl

import (
	"context"
	"testing"
	"time"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/domain/service"
	mockRepo "jobboard/internal/mocks/repository"
	mockService "jobboard/internal/mocks/service"
	mockUsecase "jobboard/internal/mocks/usecase"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      *authService
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	codec        *mockService.MockFieldCodec
	tokenService *mockService.MockTokenService
	googleAuth   *mockService.MockOAuthAuthService
	otp          *mockUsecase.MockOTPUsecase
	gate         *mockUsecase.MockAuthGate
	clock        *fixedClock
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	f := authServiceFixtures{
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockService.NewMockPasswordHasher(t),
		codec:        mockService.NewMockFieldCodec(t),
		tokenService: mockService.NewMockTokenService(t),
		googleAuth:   mockService.NewMockOAuthAuthService(t),
		otp:          mockUsecase.NewMockOTPUsecase(t),
		gate:         mockUsecase.NewMockAuthGate(t),
		clock:        &fixedClock{t: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)},
	}

	srv := NewAuthService(AuthServiceParams{
		UserRepo:          f.userRepo,
		Hasher:            f.hasher,
		Codec:             f.codec,
		TokenService:      f.tokenService,
		GoogleAuthService: f.googleAuth,
		OTP:               f.otp,
		Gate:              f.gate,
		Logger:            newDiscardLogger(),
	}).(*authService)
	srv.now = f.clock.Now
	f.service = srv

	return f
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "  Jane@Example.com ",
		Password:  "password123",
		Phone:     "+15550001111",
		Gender:    entity.GenderFemale,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	input := validRegisterInput()

	f.userRepo.EXPECT().ExistsByEmail(ctx, "jane@example.com").Return(false, nil)
	f.codec.EXPECT().Fingerprint(input.Phone).Return("phone-index")
	f.userRepo.EXPECT().ExistsByPhoneIndex(ctx, "phone-index", uuid.Nil).Return(false, nil)
	f.hasher.EXPECT().Hash(input.Password).Return("password-hash", nil)
	f.codec.EXPECT().Encrypt(input.Phone).Return("phone-ciphertext", nil)
	f.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "jane@example.com", user.Email)
			assert.Equal(t, "password-hash", user.PasswordHash)
			assert.Equal(t, "phone-ciphertext", user.EncryptedPhone)
			assert.Equal(t, "phone-index", user.PhoneIndex)
			assert.Equal(t, entity.RoleUser, user.Role)
			assert.Equal(t, entity.ProviderSystem, user.Provider)
			assert.False(t, user.IsConfirmed)
			user.ID = uuid.New()
		}).
		Return(nil)
	f.otp.EXPECT().Request(ctx, mock.AnythingOfType("*entity.User"), entity.OTPPurposeConfirmEmail).Return(nil)

	profile, err := f.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", profile.Email)
	assert.Equal(t, input.Phone, profile.Phone)
	assert.False(t, profile.IsConfirmed)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().ExistsByEmail(ctx, "jane@example.com").Return(true, nil)

	_, err := f.service.Register(ctx, validRegisterInput())
	require.ErrorIs(t, err, domainerrors.ErrDuplicateCredential)
}

func TestAuthService_Register_DuplicatePhone(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	input := validRegisterInput()

	f.userRepo.EXPECT().ExistsByEmail(ctx, "jane@example.com").Return(false, nil)
	f.codec.EXPECT().Fingerprint(input.Phone).Return("phone-index")
	f.userRepo.EXPECT().ExistsByPhoneIndex(ctx, "phone-index", uuid.Nil).Return(true, nil)

	_, err := f.service.Register(ctx, input)
	require.ErrorIs(t, err, domainerrors.ErrDuplicateCredential)
}

func TestAuthService_Register_Validation(t *testing.T) {
	f := createTestAuthService(t)

	input := validRegisterInput()
	input.Phone = ""
	_, err := f.service.Register(context.Background(), input)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	input = validRegisterInput()
	input.Password = "short"
	_, err = f.service.Register(context.Background(), input)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Register_OTPFailureKeepsAccount(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	input := validRegisterInput()

	f.userRepo.EXPECT().ExistsByEmail(ctx, mock.Anything).Return(false, nil)
	f.codec.EXPECT().Fingerprint(mock.Anything).Return("phone-index")
	f.userRepo.EXPECT().ExistsByPhoneIndex(ctx, mock.Anything, uuid.Nil).Return(false, nil)
	f.hasher.EXPECT().Hash(mock.Anything).Return("password-hash", nil)
	f.codec.EXPECT().Encrypt(mock.Anything).Return("phone-ciphertext", nil)
	f.userRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	f.otp.EXPECT().Request(ctx, mock.Anything, entity.OTPPurposeConfirmEmail).Return(domainerrors.ErrInternalError)

	_, err := f.service.Register(ctx, input)
	require.NoError(t, err)
}

func TestAuthService_ConfirmEmail(t *testing.T) {
	ctx := context.Background()
	input := &usecase.ConfirmEmailInput{Email: "jane@example.com", Code: "123456"}

	t.Run("success", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser(entity.RoleUser)
		user.IsConfirmed = false

		f.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
		f.otp.EXPECT().Verify(ctx, user, entity.OTPPurposeConfirmEmail, input.Code).Return(nil)
		f.userRepo.EXPECT().SetConfirmed(ctx, user.ID).Return(nil)

		require.NoError(t, f.service.ConfirmEmail(ctx, input))
	})

	t.Run("already confirmed", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser(entity.RoleUser)

		f.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)

		require.ErrorIs(t, f.service.ConfirmEmail(ctx, input), domainerrors.ErrAlreadyConfirmed)
	})

	t.Run("otp rejected", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser(entity.RoleUser)
		user.IsConfirmed = false

		f.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
		f.otp.EXPECT().Verify(ctx, user, entity.OTPPurposeConfirmEmail, input.Code).Return(domainerrors.ErrExpiredOTP)

		require.ErrorIs(t, f.service.ConfirmEmail(ctx, input), domainerrors.ErrExpiredOTP)
	})

	t.Run("banned account is not found", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser(entity.RoleUser)
		now := time.Now()
		user.BannedAt = &now

		f.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)

		require.ErrorIs(t, f.service.ConfirmEmail(ctx, input), domainerrors.ErrUserNotFound)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := createTestAuthService(t)

		f.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)

		require.ErrorIs(t, f.service.ConfirmEmail(ctx, input), domainerrors.ErrUserNotFound)
	})
}

func TestAuthService_ResendConfirmation(t *testing.T) {
	ctx := context.Background()

	f := createTestAuthService(t)
	user := newTestUser(entity.RoleUser)
	user.IsConfirmed = false
	f.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	f.otp.EXPECT().Request(ctx, user, entity.OTPPurposeConfirmEmail).Return(nil)
	require.NoError(t, f.service.ResendConfirmation(ctx, user.Email))

	f = createTestAuthService(t)
	confirmed := newTestUser(entity.RoleUser)
	f.userRepo.EXPECT().FindByEmail(ctx, confirmed.Email).Return(confirmed, nil)
	require.ErrorIs(t, f.service.ResendConfirmation(ctx, confirmed.Email), domainerrors.ErrAlreadyConfirmed)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	input := &usecase.LoginInput{Email: "Jane@example.com", Password: "password123"}
	tokens := &entity.AuthTokens{AccessToken: "access", RefreshToken: "refresh"}

	t.Run("success", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser(entity.RoleUser)

		f.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)
		f.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
		f.tokenService.EXPECT().IssueAuthPair(user).Return(tokens, nil)

		out, err := f.service.Login(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, tokens, out.Tokens)
		assert.Equal(t, user.ID, out.User.ID)
		assert.Empty(t, out.User.Phone)
	})

	t.Run("not confirmed", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser(entity.RoleUser)
		user.IsConfirmed = false

		f.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)

		_, err := f.service.Login(ctx, input)
		require.ErrorIs(t, err, domainerrors.ErrUserNotConfirmed)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser(entity.RoleUser)

		f.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)
		f.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false)

		_, err := f.service.Login(ctx, input)
		require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("google account", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser(entity.RoleUser)
		user.Provider = entity.ProviderGoogle
		user.PasswordHash = ""

		f.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)

		_, err := f.service.Login(ctx, input)
		require.ErrorIs(t, err, domainerrors.ErrProviderMismatch)
	})

	t.Run("deleted account", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser(entity.RoleUser)
		now := time.Now()
		user.DeletedAt = &now

		f.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)

		_, err := f.service.Login(ctx, input)
		require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestAuthService_GoogleLogin(t *testing.T) {
	ctx := context.Background()
	tokens := &entity.AuthTokens{AccessToken: "access", RefreshToken: "refresh"}
	oauthUser := &service.OAuthUser{
		ID:            "google-sub",
		Email:         "jane@example.com",
		EmailVerified: true,
		GivenName:     "Jane",
		FamilyName:    "Doe",
	}

	t.Run("first sign-in creates a confirmed google account", func(t *testing.T) {
		f := createTestAuthService(t)

		f.googleAuth.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)
		f.userRepo.EXPECT().FindByEmail(ctx, oauthUser.Email).Return(nil, repository.ErrUserNotFound)
		f.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(_ context.Context, user *entity.User) {
				assert.Equal(t, entity.ProviderGoogle, user.Provider)
				assert.True(t, user.IsConfirmed)
				assert.Empty(t, user.PasswordHash)
				assert.Equal(t, "Jane", user.FirstName)
			}).
			Return(nil)
		f.tokenService.EXPECT().IssueAuthPair(mock.AnythingOfType("*entity.User")).Return(tokens, nil)

		out, err := f.service.GoogleLogin(ctx, "id-token")
		require.NoError(t, err)
		assert.Equal(t, tokens, out.Tokens)
	})

	t.Run("existing google account", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser(entity.RoleUser)
		user.Provider = entity.ProviderGoogle

		f.googleAuth.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)
		f.userRepo.EXPECT().FindByEmail(ctx, oauthUser.Email).Return(user, nil)
		f.tokenService.EXPECT().IssueAuthPair(user).Return(tokens, nil)

		_, err := f.service.GoogleLogin(ctx, "id-token")
		require.NoError(t, err)
	})

	t.Run("email registered with password", func(t *testing.T) {
		f := createTestAuthService(t)

		f.googleAuth.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)
		f.userRepo.EXPECT().FindByEmail(ctx, oauthUser.Email).Return(newTestUser(entity.RoleUser), nil)

		_, err := f.service.GoogleLogin(ctx, "id-token")
		require.ErrorIs(t, err, domainerrors.ErrProviderMismatch)
	})

	t.Run("unverified email", func(t *testing.T) {
		f := createTestAuthService(t)
		unverified := *oauthUser
		unverified.EmailVerified = false

		f.googleAuth.EXPECT().VerifyIDToken(ctx, "id-token").Return(&unverified, nil)

		_, err := f.service.GoogleLogin(ctx, "id-token")
		require.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
	})

	t.Run("invalid token", func(t *testing.T) {
		f := createTestAuthService(t)

		f.googleAuth.EXPECT().VerifyIDToken(ctx, "bad").Return(nil, domainerrors.ErrOAuthTokenInvalid)

		_, err := f.service.GoogleLogin(ctx, "bad")
		require.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
	})
}

func TestAuthService_ForgotPassword(t *testing.T) {
	ctx := context.Background()

	f := createTestAuthService(t)
	user := newTestUser(entity.RoleUser)
	f.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	f.otp.EXPECT().Request(ctx, user, entity.OTPPurposeForgotPassword).Return(nil)
	require.NoError(t, f.service.ForgotPassword(ctx, user.Email))

	f = createTestAuthService(t)
	googleUser := newTestUser(entity.RoleUser)
	googleUser.Provider = entity.ProviderGoogle
	f.userRepo.EXPECT().FindByEmail(ctx, googleUser.Email).Return(googleUser, nil)
	require.ErrorIs(t, f.service.ForgotPassword(ctx, googleUser.Email), domainerrors.ErrProviderMismatch)

	f = createTestAuthService(t)
	f.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
	require.ErrorIs(t, f.service.ForgotPassword(ctx, "ghost@example.com"), domainerrors.ErrUserNotFound)
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	input := &usecase.ResetPasswordInput{Email: "jane@example.com", Code: "123456", NewPassword: "new-password"}

	t.Run("success bumps credential time", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser(entity.RoleUser)

		f.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
		f.otp.EXPECT().Verify(ctx, user, entity.OTPPurposeForgotPassword, input.Code).Return(nil)
		f.hasher.EXPECT().Hash(input.NewPassword).Return("new-hash", nil)
		f.userRepo.EXPECT().UpdatePassword(ctx, user.ID, "new-hash", f.clock.Now()).Return(nil)

		require.NoError(t, f.service.ResetPassword(ctx, input))
	})

	t.Run("mismatch leaves password untouched", func(t *testing.T) {
		f := createTestAuthService(t)
		user := newTestUser(entity.RoleUser)

		f.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
		f.otp.EXPECT().Verify(ctx, user, entity.OTPPurposeForgotPassword, input.Code).Return(domainerrors.ErrOTPMismatch)

		require.ErrorIs(t, f.service.ResetPassword(ctx, input), domainerrors.ErrOTPMismatch)
	})

	t.Run("weak password", func(t *testing.T) {
		f := createTestAuthService(t)
		weak := *input
		weak.NewPassword = "short"

		require.ErrorIs(t, f.service.ResetPassword(ctx, &weak), domainerrors.ErrValidationFailed)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("issues access token in the role realm", func(t *testing.T) {
		f := createTestAuthService(t)
		admin := newTestUser(entity.RoleAdmin)

		f.gate.EXPECT().Authenticate(ctx, "Admin refresh", entity.TokenPurposeRefresh).Return(admin, nil)
		f.tokenService.EXPECT().Issue(admin.ID, entity.RealmAdmin, entity.TokenPurposeAccess).Return("new-access", nil)

		out, err := f.service.RefreshToken(ctx, "Admin refresh")
		require.NoError(t, err)
		assert.Equal(t, "new-access", out.AccessToken)
	})

	t.Run("gate rejection", func(t *testing.T) {
		f := createTestAuthService(t)

		f.gate.EXPECT().Authenticate(ctx, "Bearer stale", entity.TokenPurposeRefresh).Return(nil, domainerrors.ErrSessionExpired)

		_, err := f.service.RefreshToken(ctx, "Bearer stale")
		require.ErrorIs(t, err, domainerrors.ErrSessionExpired)
	})
}
