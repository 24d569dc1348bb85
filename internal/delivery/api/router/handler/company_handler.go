package handler

import (
	"log/slog"
	"net/http"
	"time"

	"jobboard/internal/delivery/api/response"
	"jobboard/internal/domain/entity"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CompanyHandlerParams holds dependencies for CompanyHandler, injected by Fx.
type CompanyHandlerParams struct {
	fx.In

	CompanyUC usecase.CompanyUsecase
	Logger    *slog.Logger
}

// CompanyHandler serves the company endpoints under /api/companies.
type CompanyHandler struct {
	companyUC usecase.CompanyUsecase
	logger    *slog.Logger
}

// NewCompanyHandler is the constructor for CompanyHandler.
func NewCompanyHandler(params CompanyHandlerParams) *CompanyHandler {
	return &CompanyHandler{
		companyUC: params.CompanyUC,
		logger:    params.Logger,
	}
}

// CreateCompanyRequest represents the request body for opening a company.
type CreateCompanyRequest struct {
	Name              string               `json:"name" validate:"required,max=100"`
	Description       string               `json:"description" validate:"required,max=2000"`
	Industry          string               `json:"industry" validate:"required,max=100"`
	Address           string               `json:"address" validate:"required,max=255"`
	NumberOfEmployees entity.EmployeeRange `json:"numberOfEmployees" validate:"required,oneof=1-10 11-20 21-50 51-100 101-200 201-500 500+"`
	Email             string               `json:"companyEmail" validate:"required,email"`
}

// UpdateCompanyRequest carries the company fields to change. Omitted fields are left unchanged.
type UpdateCompanyRequest struct {
	Name              *string               `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description       *string               `json:"description,omitempty" validate:"omitempty,min=1,max=2000"`
	Industry          *string               `json:"industry,omitempty" validate:"omitempty,min=1,max=100"`
	Address           *string               `json:"address,omitempty" validate:"omitempty,min=1,max=255"`
	NumberOfEmployees *entity.EmployeeRange `json:"numberOfEmployees,omitempty" validate:"omitempty,oneof=1-10 11-20 21-50 51-100 101-200 201-500 500+"`
	Email             *string               `json:"companyEmail,omitempty" validate:"omitempty,email"`
}

// AddHRRequest names the user to add as HR.
type AddHRRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
}

// CompanyResponse is the JSON view of a company.
type CompanyResponse struct {
	ID                uuid.UUID            `json:"id"`
	Name              string               `json:"name"`
	Description       string               `json:"description"`
	Industry          string               `json:"industry"`
	Address           string               `json:"address"`
	NumberOfEmployees entity.EmployeeRange `json:"numberOfEmployees"`
	Email             string               `json:"companyEmail"`
	CreatedBy         uuid.UUID            `json:"createdBy"`
	HRs               []uuid.UUID          `json:"hrs"`
	ApprovedByAdmin   bool                 `json:"approvedByAdmin"`
	CreatedAt         time.Time            `json:"createdAt"`
	UpdatedAt         time.Time            `json:"updatedAt"`
}

// NewCompanyResponse maps a company to its JSON view.
func NewCompanyResponse(company *entity.Company) *CompanyResponse {
	hrs := company.HRs
	if hrs == nil {
		hrs = []uuid.UUID{}
	}

	return &CompanyResponse{
		ID:                company.ID,
		Name:              company.Name,
		Description:       company.Description,
		Industry:          company.Industry,
		Address:           company.Address,
		NumberOfEmployees: company.NumberOfEmployees,
		Email:             company.Email,
		CreatedBy:         company.CreatedBy,
		HRs:               hrs,
		ApprovedByAdmin:   company.ApprovedByAdmin,
		CreatedAt:         company.CreatedAt,
		UpdatedAt:         company.UpdatedAt,
	}
}

// CreateCompany opens a company owned by the caller.
func (h *CompanyHandler) CreateCompany(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateCompanyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	company, err := h.companyUC.Create(c.Request().Context(), user, &usecase.CreateCompanyInput{
		Name:              req.Name,
		Description:       req.Description,
		Industry:          req.Industry,
		Address:           req.Address,
		NumberOfEmployees: req.NumberOfEmployees,
		Email:             req.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, NewCompanyResponse(company))
}

// GetCompany returns a live company.
func (h *CompanyHandler) GetCompany(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	company, err := h.companyUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, NewCompanyResponse(company))
}

// ListCompanies returns every live company.
func (h *CompanyHandler) ListCompanies(c echo.Context) error {
	companies, err := h.companyUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result := make([]*CompanyResponse, 0, len(companies))
	for _, company := range companies {
		result = append(result, NewCompanyResponse(company))
	}

	return response.Success(c, http.StatusOK, result)
}

// UpdateCompany changes a company owned by the caller.
func (h *CompanyHandler) UpdateCompany(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateCompanyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	company, err := h.companyUC.Update(c.Request().Context(), user, id, &entity.CompanyUpdate{
		Name:              req.Name,
		Description:       req.Description,
		Industry:          req.Industry,
		Address:           req.Address,
		NumberOfEmployees: req.NumberOfEmployees,
		Email:             req.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, NewCompanyResponse(company))
}

// DeleteCompany soft deletes a company. Only its owner or an admin may do so.
func (h *CompanyHandler) DeleteCompany(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.companyUC.SoftDelete(c.Request().Context(), user, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AddHR lists another user as HR of a company owned by the caller.
func (h *CompanyHandler) AddHR(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddHRRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.companyUC.AddHR(c.Request().Context(), user, id, uuid.MustParse(req.UserID)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "HR added"})
}
