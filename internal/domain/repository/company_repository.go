package repository

import (
	"context"
	"time"

	"jobboard/internal/domain/entity"
	"jobboard/internal/errors"

	"github.com/google/uuid"
)

// ErrCompanyNotFound is returned when no company matches.
var ErrCompanyNotFound = errors.New("company not found")

// CompanyRepository defines persistence for companies and their HR membership.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error

	// FindByID returns the company including banned and deleted ones.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)

	// ExistsByNameOrEmail reports whether a live company already uses the name or the email.
	ExistsByNameOrEmail(ctx context.Context, name, email string, excludeID uuid.UUID) (bool, error)

	Update(ctx context.Context, company *entity.Company) error

	AddHR(ctx context.Context, companyID, userID uuid.UUID) error

	SetBanned(ctx context.Context, id uuid.UUID, at *time.Time) error

	SetApproved(ctx context.Context, id uuid.UUID) error

	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error

	// IsMember reports whether the user owns or is HR of any live company.
	IsMember(ctx context.Context, userID uuid.UUID) (bool, error)

	// List returns the live companies.
	List(ctx context.Context) ([]*entity.Company, error)
}
