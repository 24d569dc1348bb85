package handler

import (
	"log/slog"
	"net/http"
	"time"

	"jobboard/internal/delivery/api/response"
	"jobboard/internal/domain/entity"
	"jobboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves the account lifecycle endpoints under /api/auth.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for registering a system account.
type RegisterRequest struct {
	FirstName string        `json:"firstName" validate:"required,max=50"`
	LastName  string        `json:"lastName" validate:"required,max=50"`
	Email     string        `json:"email" validate:"required,email"`
	Password  string        `json:"password" validate:"required,min=8,max=72"`
	Phone     string        `json:"phoneNumber" validate:"required,min=6,max=20"`
	Gender    entity.Gender `json:"gender,omitempty" validate:"omitempty,oneof=male female unspecified"`
	BirthDate *time.Time    `json:"birthDate,omitempty"`
}

// EmailRequest carries a single email address.
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ConfirmEmailRequest carries the confirmation code mailed after registration.
type ConfirmEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,numeric"`
}

// LoginRequest represents the request body for logging in with a password.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginRequest carries the ID token obtained by the client from Google Sign-In.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// ResetPasswordRequest carries the reset code and the new password.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required,numeric"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=72"`
}

// LoginResponse is returned by both login endpoints.
type LoginResponse struct {
	AccessToken  string              `json:"accessToken"`
	RefreshToken string              `json:"refreshToken"`
	User         *entity.UserProfile `json:"user"`
}

// RefreshResponse carries the access token issued for a refresh token.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// Register handles the system account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
		Gender:    req.Gender,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, profile)
}

// ResendConfirmation mails a fresh confirmation code.
func (h *AuthHandler) ResendConfirmation(c echo.Context) error {
	var req EmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUC.ResendConfirmation(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Confirmation code sent"})
}

// ConfirmEmail marks the account as confirmed when the code matches.
func (h *AuthHandler) ConfirmEmail(c echo.Context) error {
	var req ConfirmEmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.ConfirmEmailInput{Email: req.Email, Code: req.Code}
	if err := h.authUC.ConfirmEmail(c.Request().Context(), input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Email confirmed"})
}

// Login handles the password login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newLoginResponse(output))
}

// GoogleLogin signs the user in with a Google ID token, creating the account on first use.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req GoogleLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.GoogleLogin(c.Request().Context(), req.IDToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newLoginResponse(output))
}

// ForgotPassword mails a password reset code.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req EmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUC.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Password reset code sent"})
}

// ResetPassword overwrites the password when the reset code matches.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.ResetPasswordInput{Email: req.Email, Code: req.Code, NewPassword: req.NewPassword}
	if err := h.authUC.ResetPassword(c.Request().Context(), input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Password has been reset"})
}

// RefreshToken exchanges the refresh token in the Authorization header for a new access token.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	authorization := c.Request().Header.Get(echo.HeaderAuthorization)

	output, err := h.authUC.RefreshToken(c.Request().Context(), authorization)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, RefreshResponse{AccessToken: output.AccessToken})
}

func newLoginResponse(output *usecase.LoginOutput) LoginResponse {
	return LoginResponse{
		AccessToken:  output.Tokens.AccessToken,
		RefreshToken: output.Tokens.RefreshToken,
		User:         output.User,
	}
}
