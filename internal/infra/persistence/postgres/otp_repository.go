package postgres

import (
	"context"
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

// otpRepository stores one-time codes in user_otps, keyed by (user_id, purpose).
type otpRepository struct {
	db *gorm.DB
}

// NewOTPRepository is the constructor for otpRepository.
func NewOTPRepository(db *gorm.DB) repository.OTPRepository {
	return &otpRepository{db: db}
}

// Upsert replaces the entry of the same purpose in a single INSERT .. ON CONFLICT statement.
func (repo *otpRepository) Upsert(ctx context.Context, entry *entity.OTPEntry) error {
	otpM := fromOTPDomain(entry)
	if otpM.CreatedAt.IsZero() {
		otpM.CreatedAt = time.Now()
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "purpose"}},
			DoUpdates: clause.AssignmentColumns([]string{"code_hash", "expires_at", "created_at"}),
		}).
		Create(otpM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to store otp")
	}

	return nil
}

// Find returns the entry of the purpose.
func (repo *otpRepository) Find(ctx context.Context, userID uuid.UUID, purpose entity.OTPPurpose) (*entity.OTPEntry, error) {
	var otpM model.UserOTPModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND purpose = ?", userID, string(purpose)).
		First(&otpM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOTPNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find otp")
	}

	return toOTPDomain(&otpM), nil
}

// DeleteExpired removes every entry whose expiry is before now.
func (repo *otpRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&model.UserOTPModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired otps")
	}

	return result.RowsAffected, nil
}

func toOTPDomain(data *model.UserOTPModel) *entity.OTPEntry {
	return &entity.OTPEntry{
		UserID:    data.UserID,
		Purpose:   entity.OTPPurpose(data.Purpose),
		CodeHash:  data.CodeHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromOTPDomain(data *entity.OTPEntry) *model.UserOTPModel {
	return &model.UserOTPModel{
		UserID:    data.UserID,
		Purpose:   string(data.Purpose),
		CodeHash:  data.CodeHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
