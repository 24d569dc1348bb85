package usecase

import (
	"context"

	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCompanyInput defines the data required to open a company.
type CreateCompanyInput struct {
	Name              string
	Description       string
	Industry          string
	Address           string
	NumberOfEmployees entity.EmployeeRange
	Email             string
}

// CompanyUsecase defines company management by its owner.
type CompanyUsecase interface {
	Create(ctx context.Context, actor *entity.User, input *CreateCompanyInput) (*entity.Company, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Company, error)
	List(ctx context.Context) ([]*entity.Company, error)
	Update(ctx context.Context, actor *entity.User, id uuid.UUID, update *entity.CompanyUpdate) (*entity.Company, error)
	SoftDelete(ctx context.Context, actor *entity.User, id uuid.UUID) error
	AddHR(ctx context.Context, actor *entity.User, companyID, hrID uuid.UUID) error

	// IsMember reports whether the user owns or is HR of a live company.
	IsMember(ctx context.Context, userID uuid.UUID) (bool, error)
}
