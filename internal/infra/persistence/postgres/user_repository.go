// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID. Banned and deleted accounts are returned as well,
// the caller decides how to treat them.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", normalizeEmail(email)).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// ExistsByEmail reports whether any account, live or not, uses the email.
func (repo *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ?", normalizeEmail(email)).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check email")
	}

	return count > 0, nil
}

// ExistsByPhoneIndex reports whether another account uses the phone fingerprint.
func (repo *userRepository) ExistsByPhoneIndex(ctx context.Context, phoneIndex string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("phone_index = ? AND id <> ?", phoneIndex, excludeID).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check phone")
	}

	return count > 0, nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate user id")
		}
		user.ID = id
	}

	userM := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateCredential.WrapMessage("email or phone already exists")
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateProfile writes the editable profile columns.
func (repo *userRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	return repo.update(ctx, user.ID, "failed to update user profile", map[string]any{
		"first_name":       userM.FirstName,
		"last_name":        userM.LastName,
		"phone_ciphertext": userM.PhoneCiphertext,
		"phone_index":      userM.PhoneIndex,
		"gender":           userM.Gender,
		"birth_date":       userM.BirthDate,
	})
}

// UpdatePassword replaces the hash and stamps the credential change in the same statement.
func (repo *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string, changedAt time.Time) error {
	return repo.update(ctx, id, "failed to update password", map[string]any{
		"password_hash":          passwordHash,
		"change_credential_time": changedAt,
	})
}

// SetConfirmed marks the email as confirmed.
func (repo *userRepository) SetConfirmed(ctx context.Context, id uuid.UUID) error {
	return repo.update(ctx, id, "failed to confirm user", map[string]any{
		"is_confirmed": true,
	})
}

// SetBanned sets or clears banned_at.
func (repo *userRepository) SetBanned(ctx context.Context, id uuid.UUID, at *time.Time) error {
	return repo.update(ctx, id, "failed to update user ban", map[string]any{
		"banned_at": at,
	})
}

// SoftDelete stamps deleted_at.
func (repo *userRepository) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	return repo.update(ctx, id, "failed to delete user", map[string]any{
		"deleted_at": at,
	})
}

// List returns every account ordered by creation. Phone numbers are left encrypted.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userMs []model.UserModel
	if err := repo.db.WithContext(ctx).Order("created_at").Find(&userMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for i := range userMs {
		users = append(users, toUserDomain(&userMs[i]))
	}

	return users, nil
}

func (repo *userRepository) update(ctx context.Context, id uuid.UUID, details string, columns map[string]any) error {
	columns["updated_at"] = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrDuplicateCredential.WrapMessage("phone already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, details)
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                   data.ID,
		FirstName:            data.FirstName,
		LastName:             data.LastName,
		Email:                data.Email,
		PasswordHash:         derefString(data.PasswordHash),
		EncryptedPhone:       derefString(data.PhoneCiphertext),
		PhoneIndex:           derefString(data.PhoneIndex),
		Gender:               entity.Gender(data.Gender),
		BirthDate:            data.BirthDate,
		Role:                 entity.Role(data.Role),
		Provider:             entity.Provider(data.Provider),
		IsConfirmed:          data.IsConfirmed,
		BannedAt:             data.BannedAt,
		DeletedAt:            data.DeletedAt,
		ChangeCredentialTime: data.ChangeCredentialTime,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	gender := data.Gender
	if gender == "" {
		gender = entity.GenderUnspecified
	}

	return &model.UserModel{
		ID:                   data.ID,
		FirstName:            data.FirstName,
		LastName:             data.LastName,
		Email:                normalizeEmail(data.Email),
		PasswordHash:         optionalString(data.PasswordHash),
		PhoneCiphertext:      optionalString(data.EncryptedPhone),
		PhoneIndex:           optionalString(data.PhoneIndex),
		Gender:               string(gender),
		BirthDate:            data.BirthDate,
		Role:                 string(data.Role),
		Provider:             string(data.Provider),
		IsConfirmed:          data.IsConfirmed,
		BannedAt:             data.BannedAt,
		DeletedAt:            data.DeletedAt,
		ChangeCredentialTime: data.ChangeCredentialTime,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
