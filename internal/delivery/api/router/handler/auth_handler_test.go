package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	usecasemocks "jobboard/internal/mocks/usecase"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthHandler(t *testing.T) (*AuthHandler, *usecasemocks.MockAuthUsecase) {
	t.Helper()

	authUC := usecasemocks.NewMockAuthUsecase(t)

	return NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()}), authUC
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("creates the account", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		profile := &entity.UserProfile{ID: uuid.New(), Email: "jane@example.com"}
		authUC.EXPECT().Register(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool {
			return in.Email == "jane@example.com" && in.Phone == "+886912345678" && in.Gender == entity.GenderFemale
		})).Return(profile, nil)

		rec := serve(t, h.Register, testRequest{
			path: "/api/auth/register",
			body: `{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","password":"password1","phoneNumber":"+886912345678","gender":"female"}`,
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), profile.ID.String())
		assert.Contains(t, rec.Body.String(), `"request_id"`)
	})

	t.Run("rejects invalid input before the use case", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)

		rec := serve(t, h.Register, testRequest{
			path: "/api/auth/register",
			body: `{"firstName":"Jane","lastName":"Doe","email":"nope","password":"short","phoneNumber":"+886912345678"}`,
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
		assert.Contains(t, rec.Body.String(), "email must be a valid email address")
	})

	t.Run("duplicate credential is a conflict", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		authUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrDuplicateCredential)

		rec := serve(t, h.Register, testRequest{
			path: "/api/auth/register",
			body: `{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","password":"password1","phoneNumber":"+886912345678"}`,
		})

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "DUPLICATE_CREDENTIAL")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns the token pair", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		authUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "jane@example.com", Password: "password1"}).
			Return(&usecase.LoginOutput{
				Tokens: &entity.AuthTokens{AccessToken: "access", RefreshToken: "refresh"},
				User:   &entity.UserProfile{Email: "jane@example.com"},
			}, nil)

		rec := serve(t, h.Login, testRequest{path: "/api/auth/login", body: `{"email":"jane@example.com","password":"password1"}`})
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data LoginResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "access", body.Data.AccessToken)
		assert.Equal(t, "refresh", body.Data.RefreshToken)
		assert.Equal(t, "jane@example.com", body.Data.User.Email)
	})

	t.Run("unconfirmed account", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserNotConfirmed)

		rec := serve(t, h.Login, testRequest{path: "/api/auth/login", body: `{"email":"jane@example.com","password":"password1"}`})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "USER_NOT_CONFIRMED")
	})
}

func TestAuthHandler_OTPFlows(t *testing.T) {
	t.Run("confirm email", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		authUC.EXPECT().ConfirmEmail(mock.Anything, &usecase.ConfirmEmailInput{Email: "jane@example.com", Code: "123456"}).Return(nil)

		rec := serve(t, h.ConfirmEmail, testRequest{body: `{"email":"jane@example.com","code":"123456"}`})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("expired code", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		authUC.EXPECT().ResetPassword(mock.Anything, mock.Anything).Return(domainerrors.ErrExpiredOTP)

		rec := serve(t, h.ResetPassword, testRequest{body: `{"email":"jane@example.com","code":"123456","newPassword":"password2"}`})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "EXPIRED_OTP")
	})

	t.Run("non numeric code is rejected", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)

		rec := serve(t, h.ConfirmEmail, testRequest{body: `{"email":"jane@example.com","code":"abc"}`})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("throttled request", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		authUC.EXPECT().ForgotPassword(mock.Anything, "jane@example.com").Return(domainerrors.ErrOTPRequestThrottled)

		rec := serve(t, h.ForgotPassword, testRequest{body: `{"email":"jane@example.com"}`})
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("resend confirmation", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		authUC.EXPECT().ResendConfirmation(mock.Anything, "jane@example.com").Return(nil)

		rec := serve(t, h.ResendConfirmation, testRequest{body: `{"email":"jane@example.com"}`})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	t.Run("passes the header through", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		authUC.EXPECT().RefreshToken(mock.Anything, "Admin refresh-token").Return(&usecase.RefreshOutput{AccessToken: "new-access"}, nil)

		rec := serve(t, h.RefreshToken, testRequest{authorization: "Admin refresh-token"})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "new-access")
	})

	t.Run("stale refresh token", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		authUC.EXPECT().RefreshToken(mock.Anything, "Bearer old").Return(nil, domainerrors.ErrSessionExpired)

		rec := serve(t, h.RefreshToken, testRequest{authorization: "Bearer old"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "SESSION_EXPIRED")
	})
}

func TestAuthHandler_GoogleLogin(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	authUC.EXPECT().GoogleLogin(mock.Anything, "id-token").Return(nil, domainerrors.ErrProviderMismatch)

	rec := serve(t, h.GoogleLogin, testRequest{body: `{"idToken":"id-token"}`})
	assert.Contains(t, rec.Body.String(), "PROVIDER_MISMATCH")
}
