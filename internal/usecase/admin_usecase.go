package usecase

import (
	"context"

	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
)

// AllDataOutput is the administrative snapshot served over GraphQL.
type AllDataOutput struct {
	Users     []*entity.UserProfile
	Companies []*entity.Company
}

// AdminUsecase defines moderation operations. Callers must have authorized the admin role.
type AdminUsecase interface {
	BanUser(ctx context.Context, id uuid.UUID) error
	UnbanUser(ctx context.Context, id uuid.UUID) error
	BanCompany(ctx context.Context, id uuid.UUID) error
	UnbanCompany(ctx context.Context, id uuid.UUID) error
	ApproveCompany(ctx context.Context, id uuid.UUID) error
	AllData(ctx context.Context) (*AllDataOutput, error)
}
