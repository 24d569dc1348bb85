// Package handler contains the REST handlers of the API server.
package handler

import (
	"net/http"

	"jobboard/internal/delivery/api/middleware"
	"jobboard/internal/delivery/api/response"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// messageResponse is returned by endpoints that have nothing else to report.
type messageResponse struct {
	Message string `json:"message"`
}

// bindAndValidate decodes the request body and checks its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// parseIDParam reads a uuid path parameter.
func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

// principal returns the authenticated user attached by the auth middleware.
func principal(c echo.Context) (*entity.User, error) {
	user, ok := middleware.GetPrincipal(c)
	if !ok {
		return nil, domainerrors.ErrMissingAuth
	}

	return user, nil
}
