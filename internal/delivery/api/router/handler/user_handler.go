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

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves the profile endpoints under /api/users.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// UpdateProfileRequest carries the profile fields to change. Omitted fields are left unchanged.
type UpdateProfileRequest struct {
	FirstName *string        `json:"firstName,omitempty" validate:"omitempty,min=1,max=50"`
	LastName  *string        `json:"lastName,omitempty" validate:"omitempty,min=1,max=50"`
	Phone     *string        `json:"phoneNumber,omitempty" validate:"omitempty,min=6,max=20"`
	Gender    *entity.Gender `json:"gender,omitempty" validate:"omitempty,oneof=male female unspecified"`
	BirthDate *time.Time     `json:"birthDate,omitempty"`
}

// UpdatePasswordRequest carries the current and the new password.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=72"`
}

// GetOwnProfile returns the caller's profile including the phone number.
func (h *UserHandler) GetOwnProfile(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.userUC.GetOwnProfile(c.Request().Context(), user)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// GetProfile returns the public profile of another user.
func (h *UserHandler) GetProfile(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.userUC.GetProfile(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateProfile changes the caller's profile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.userUC.UpdateProfile(c.Request().Context(), user, &entity.UserProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Gender:    req.Gender,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdatePassword changes the caller's password. Tokens issued before the change stop working.
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdatePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.UpdatePasswordInput{CurrentPassword: req.CurrentPassword, NewPassword: req.NewPassword}
	if err := h.userUC.UpdatePassword(c.Request().Context(), user, input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Password updated, please log in again"})
}

// DeleteUser soft deletes an account. Users may only delete themselves.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.userUC.SoftDelete(c.Request().Context(), user, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
