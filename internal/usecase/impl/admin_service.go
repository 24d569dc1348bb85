package impl

import (
	"context"
	"log/slog"
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

// adminService implements the AdminUsecase interface.
type adminService struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	now         func() time.Time
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	CompanyRepo repository.CompanyRepository
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		userRepo:    params.UserRepo,
		companyRepo: params.CompanyRepo,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BanUser bans a regular account. Banned users fail authentication until unbanned.
func (srv *adminService) BanUser(ctx context.Context, id uuid.UUID) error {
	user, err := srv.findUser(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == entity.RoleAdmin {
		return domainerrors.ErrInvalidAction.WrapMessage("administrators cannot be banned")
	}
	if user.IsBanned() {
		return domainerrors.ErrInvalidAction.WrapMessage("user is already banned")
	}

	now := srv.now()
	if err := srv.userRepo.SetBanned(ctx, id, &now); err != nil {
		return errors.Wrap(err, "failed to ban user")
	}

	srv.log(ctx).Info("User banned", slog.String("user_id", id.String()))

	return nil
}

func (srv *adminService) UnbanUser(ctx context.Context, id uuid.UUID) error {
	user, err := srv.findUser(ctx, id)
	if err != nil {
		return err
	}
	if !user.IsBanned() {
		return domainerrors.ErrInvalidAction.WrapMessage("user is not banned")
	}

	if err := srv.userRepo.SetBanned(ctx, id, nil); err != nil {
		return errors.Wrap(err, "failed to unban user")
	}

	srv.log(ctx).Info("User unbanned", slog.String("user_id", id.String()))

	return nil
}

func (srv *adminService) BanCompany(ctx context.Context, id uuid.UUID) error {
	company, err := srv.findCompany(ctx, id)
	if err != nil {
		return err
	}
	if company.BannedAt != nil {
		return domainerrors.ErrInvalidAction.WrapMessage("company is already banned")
	}

	now := srv.now()
	if err := srv.companyRepo.SetBanned(ctx, id, &now); err != nil {
		return errors.Wrap(err, "failed to ban company")
	}

	srv.log(ctx).Info("Company banned", slog.String("company_id", id.String()))

	return nil
}

func (srv *adminService) UnbanCompany(ctx context.Context, id uuid.UUID) error {
	company, err := srv.findCompany(ctx, id)
	if err != nil {
		return err
	}
	if company.BannedAt == nil {
		return domainerrors.ErrInvalidAction.WrapMessage("company is not banned")
	}

	if err := srv.companyRepo.SetBanned(ctx, id, nil); err != nil {
		return errors.Wrap(err, "failed to unban company")
	}

	srv.log(ctx).Info("Company unbanned", slog.String("company_id", id.String()))

	return nil
}

func (srv *adminService) ApproveCompany(ctx context.Context, id uuid.UUID) error {
	company, err := srv.findCompany(ctx, id)
	if err != nil {
		return err
	}
	if company.ApprovedByAdmin {
		return domainerrors.ErrInvalidAction.WrapMessage("company is already approved")
	}

	if err := srv.companyRepo.SetApproved(ctx, id); err != nil {
		return errors.Wrap(err, "failed to approve company")
	}

	srv.log(ctx).Info("Company approved", slog.String("company_id", id.String()))

	return nil
}

// AllData lists every account and live company. Phone numbers are never decrypted here.
func (srv *adminService) AllData(ctx context.Context) (*usecase.AllDataOutput, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	companies, err := srv.companyRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list companies")
	}

	profiles := make([]*entity.UserProfile, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, user.SummaryProfile())
	}

	return &usecase.AllDataOutput{
		Users:     profiles,
		Companies: companies,
	}, nil
}

// findUser returns the user unless it is deleted.
func (srv *adminService) findUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if user.IsDeleted() {
		return nil, domainerrors.ErrUserNotFound
	}

	return user, nil
}

// findCompany returns the company unless it is deleted.
func (srv *adminService) findCompany(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	company, err := srv.companyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, domainerrors.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to find company")
	}
	if company.DeletedAt != nil {
		return nil, domainerrors.ErrCompanyNotFound
	}

	return company, nil
}
