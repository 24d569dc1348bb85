package handler

import (
	"context"
	"log/slog"
	"net/http"

	"jobboard/internal/delivery/api/response"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the moderation endpoints under /api/admin.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// BanUser bans a user account.
func (h *AdminHandler) BanUser(c echo.Context) error {
	return h.moderate(c, h.adminUC.BanUser, "User banned")
}

// UnbanUser lifts a user ban.
func (h *AdminHandler) UnbanUser(c echo.Context) error {
	return h.moderate(c, h.adminUC.UnbanUser, "User unbanned")
}

// BanCompany bans a company.
func (h *AdminHandler) BanCompany(c echo.Context) error {
	return h.moderate(c, h.adminUC.BanCompany, "Company banned")
}

// UnbanCompany lifts a company ban.
func (h *AdminHandler) UnbanCompany(c echo.Context) error {
	return h.moderate(c, h.adminUC.UnbanCompany, "Company unbanned")
}

// ApproveCompany marks a company as approved.
func (h *AdminHandler) ApproveCompany(c echo.Context) error {
	return h.moderate(c, h.adminUC.ApproveCompany, "Company approved")
}

func (h *AdminHandler) moderate(c echo.Context, action func(context.Context, uuid.UUID) error, message string) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := action(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: message})
}
