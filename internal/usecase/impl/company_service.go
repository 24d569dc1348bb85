package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/errors"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// companyService implements the CompanyUsecase interface.
type companyService struct {
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
	now         func() time.Time
	logger      *slog.Logger
}

// CompanyServiceParams holds dependencies for CompanyService, injected by Fx.
type CompanyServiceParams struct {
	fx.In

	CompanyRepo repository.CompanyRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewCompanyService is the constructor for companyService.
func NewCompanyService(params CompanyServiceParams) usecase.CompanyUsecase {
	return &companyService{
		companyRepo: params.CompanyRepo,
		userRepo:    params.UserRepo,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *companyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create opens a company owned by the actor. Name and email are unique among live companies.
func (srv *companyService) Create(ctx context.Context, actor *entity.User, input *usecase.CreateCompanyInput) (*entity.Company, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)

	exists, err := srv.companyRepo.ExistsByNameOrEmail(ctx, name, email, uuid.Nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check company")
	}
	if exists {
		return nil, domainerrors.ErrCompanyAlreadyExists
	}

	company := &entity.Company{
		Name:              name,
		Description:       input.Description,
		Industry:          input.Industry,
		Address:           input.Address,
		NumberOfEmployees: input.NumberOfEmployees,
		Email:             email,
		CreatedBy:         actor.ID,
	}
	if err := srv.companyRepo.Create(ctx, company); err != nil {
		return nil, errors.Wrap(err, "failed to create company")
	}

	srv.log(ctx).Info("Company created",
		slog.String("company_id", company.ID.String()),
		slog.String("owner_id", actor.ID.String()),
	)

	return company, nil
}

// Get returns a live company.
func (srv *companyService) Get(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	return srv.findLive(ctx, id)
}

func (srv *companyService) List(ctx context.Context) ([]*entity.Company, error) {
	companies, err := srv.companyRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list companies")
	}

	return companies, nil
}

// Update applies the non-nil fields. Only the owner may update.
func (srv *companyService) Update(ctx context.Context, actor *entity.User, id uuid.UUID, update *entity.CompanyUpdate) (*entity.Company, error) {
	company, err := srv.findLive(ctx, id)
	if err != nil {
		return nil, err
	}
	if !company.IsOwner(actor.ID) {
		return nil, domainerrors.ErrAccessDenied
	}

	updated := *company
	if update.Name != nil {
		updated.Name = strings.TrimSpace(*update.Name)
	}
	if update.Email != nil {
		updated.Email = normalizeEmail(*update.Email)
	}
	if update.Description != nil {
		updated.Description = *update.Description
	}
	if update.Industry != nil {
		updated.Industry = *update.Industry
	}
	if update.Address != nil {
		updated.Address = *update.Address
	}
	if update.NumberOfEmployees != nil {
		updated.NumberOfEmployees = *update.NumberOfEmployees
	}

	if updated.Name != company.Name || updated.Email != company.Email {
		exists, err := srv.companyRepo.ExistsByNameOrEmail(ctx, updated.Name, updated.Email, company.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check company")
		}
		if exists {
			return nil, domainerrors.ErrCompanyAlreadyExists
		}
	}

	if err := srv.companyRepo.Update(ctx, &updated); err != nil {
		return nil, srv.mapNotFound(err, "failed to update company")
	}

	return &updated, nil
}

// SoftDelete lets the owner or an admin delete the company.
func (srv *companyService) SoftDelete(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	company, err := srv.findLive(ctx, id)
	if err != nil {
		return err
	}
	if !company.IsOwner(actor.ID) && actor.Role != entity.RoleAdmin {
		return domainerrors.ErrAccessDenied
	}

	if err := srv.companyRepo.SoftDelete(ctx, id, srv.now()); err != nil {
		return srv.mapNotFound(err, "failed to delete company")
	}

	srv.log(ctx).Info("Company deleted",
		slog.String("company_id", id.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return nil
}

// AddHR lists an active user as HR of the actor's company.
func (srv *companyService) AddHR(ctx context.Context, actor *entity.User, companyID, hrID uuid.UUID) error {
	company, err := srv.findLive(ctx, companyID)
	if err != nil {
		return err
	}
	if !company.IsOwner(actor.ID) {
		return domainerrors.ErrAccessDenied
	}
	if company.IsOwner(hrID) || company.IsHR(hrID) {
		return domainerrors.ErrInvalidAction.WrapMessage("user already belongs to the company")
	}

	hr, err := srv.userRepo.FindByID(ctx, hrID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find hr")
	}
	if !hr.IsActive() {
		return domainerrors.ErrUserNotFound
	}

	if err := srv.companyRepo.AddHR(ctx, companyID, hrID); err != nil {
		return errors.Wrap(err, "failed to add hr")
	}

	return nil
}

func (srv *companyService) IsMember(ctx context.Context, userID uuid.UUID) (bool, error) {
	member, err := srv.companyRepo.IsMember(ctx, userID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check company membership")
	}

	return member, nil
}

// findLive hides banned and deleted companies.
func (srv *companyService) findLive(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	company, err := srv.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, srv.mapNotFound(err, "failed to find company")
	}
	if !company.IsActive() {
		return nil, domainerrors.ErrCompanyNotFound
	}

	return company, nil
}

func (srv *companyService) mapNotFound(err error, message string) error {
	if errors.Is(err, repository.ErrCompanyNotFound) {
		return domainerrors.ErrCompanyNotFound
	}

	return errors.Wrap(err, message)
}
