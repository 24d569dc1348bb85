package postgres

import (
	"context"
	"strings"
	"time"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const liveCompany = "deleted_at IS NULL AND banned_at IS NULL"

// companyRepository implements the domain.CompanyRepository interface.
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository is the constructor for companyRepository.
func NewCompanyRepository(db *gorm.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

// Create persists a new company.
func (repo *companyRepository) Create(ctx context.Context, company *entity.Company) error {
	if company.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate company id")
		}
		company.ID = id
	}

	companyM := fromCompanyDomain(company)
	if err := repo.db.WithContext(ctx).Omit("HRs").Create(companyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCompanyAlreadyExists.WrapMessage("company name or email already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid company owner")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create company")
	}

	company.CreatedAt = companyM.CreatedAt
	company.UpdatedAt = companyM.UpdatedAt

	return nil
}

// FindByID retrieves the company with its HR list, whatever its state.
func (repo *companyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	var companyM model.CompanyModel
	err := repo.db.WithContext(ctx).
		Preload("HRs").
		Where("id = ?", id).
		First(&companyM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCompanyNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find company")
	}

	return toCompanyDomain(&companyM), nil
}

// ExistsByNameOrEmail checks the name and email against companies that are not deleted.
func (repo *companyRepository) ExistsByNameOrEmail(ctx context.Context, name, email string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.CompanyModel{}).
		Where("deleted_at IS NULL AND id <> ?", excludeID).
		Where("name = ? OR email = ?", name, strings.ToLower(email)).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check company")
	}

	return count > 0, nil
}

// Update writes the editable company columns.
func (repo *companyRepository) Update(ctx context.Context, company *entity.Company) error {
	companyM := fromCompanyDomain(company)

	return repo.update(ctx, company.ID, "failed to update company", map[string]any{
		"name":                companyM.Name,
		"description":         companyM.Description,
		"industry":            companyM.Industry,
		"address":             companyM.Address,
		"number_of_employees": companyM.NumberOfEmployees,
		"email":               companyM.Email,
	})
}

// AddHR adds the user to the HR list. Adding an existing HR is a no-op.
func (repo *companyRepository) AddHR(ctx context.Context, companyID, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.CompanyHRModel{CompanyID: companyID, UserID: userID}).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("hr must be an existing user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add hr")
	}

	return nil
}

// SetBanned sets or clears banned_at.
func (repo *companyRepository) SetBanned(ctx context.Context, id uuid.UUID, at *time.Time) error {
	return repo.update(ctx, id, "failed to update company ban", map[string]any{
		"banned_at": at,
	})
}

// SetApproved marks the company as approved by an administrator.
func (repo *companyRepository) SetApproved(ctx context.Context, id uuid.UUID) error {
	return repo.update(ctx, id, "failed to approve company", map[string]any{
		"approved_by_admin": true,
	})
}

// SoftDelete stamps deleted_at.
func (repo *companyRepository) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	return repo.update(ctx, id, "failed to delete company", map[string]any{
		"deleted_at": at,
	})
}

// IsMember reports whether the user owns or is HR of at least one live company.
func (repo *companyRepository) IsMember(ctx context.Context, userID uuid.UUID) (bool, error) {
	hrCompanies := repo.db.Model(&model.CompanyHRModel{}).
		Select("company_id").
		Where("user_id = ?", userID)

	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.CompanyModel{}).
		Where(liveCompany).
		Where("created_by = ? OR id IN (?)", userID, hrCompanies).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check company membership")
	}

	return count > 0, nil
}

// List returns live companies with their HR lists.
func (repo *companyRepository) List(ctx context.Context) ([]*entity.Company, error) {
	var companyMs []model.CompanyModel
	err := repo.db.WithContext(ctx).
		Preload("HRs").
		Where(liveCompany).
		Order("created_at").
		Find(&companyMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list companies")
	}

	companies := make([]*entity.Company, 0, len(companyMs))
	for i := range companyMs {
		companies = append(companies, toCompanyDomain(&companyMs[i]))
	}

	return companies, nil
}

func (repo *companyRepository) update(ctx context.Context, id uuid.UUID, details string, columns map[string]any) error {
	columns["updated_at"] = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.CompanyModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrCompanyAlreadyExists.WrapMessage("company name or email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, details)
	}
	if result.RowsAffected == 0 {
		return repository.ErrCompanyNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCompanyDomain(data *model.CompanyModel) *entity.Company {
	if data == nil {
		return nil
	}

	hrs := make([]uuid.UUID, 0, len(data.HRs))
	for _, hr := range data.HRs {
		hrs = append(hrs, hr.UserID)
	}

	return &entity.Company{
		ID:                data.ID,
		Name:              data.Name,
		Description:       data.Description,
		Industry:          data.Industry,
		Address:           data.Address,
		NumberOfEmployees: entity.EmployeeRange(data.NumberOfEmployees),
		Email:             data.Email,
		CreatedBy:         data.CreatedBy,
		HRs:               hrs,
		ApprovedByAdmin:   data.ApprovedByAdmin,
		BannedAt:          data.BannedAt,
		DeletedAt:         data.DeletedAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromCompanyDomain(data *entity.Company) *model.CompanyModel {
	if data == nil {
		return nil
	}

	return &model.CompanyModel{
		ID:                data.ID,
		Name:              data.Name,
		Description:       data.Description,
		Industry:          data.Industry,
		Address:           data.Address,
		NumberOfEmployees: string(data.NumberOfEmployees),
		Email:             strings.ToLower(data.Email),
		CreatedBy:         data.CreatedBy,
		ApprovedByAdmin:   data.ApprovedByAdmin,
		BannedAt:          data.BannedAt,
		DeletedAt:         data.DeletedAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
