// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Provider is the sign-in method an account was created with.
type Provider string

const (
	ProviderSystem Provider = "system"
	ProviderGoogle Provider = "google"
)

// Gender of a user profile.
type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderUnspecified Gender = "unspecified"
)

// User is the principal every authentication and authorization check resolves to.
// Phone numbers are only ever held encrypted here; decryption happens on the own-profile read path.
type User struct {
	ID                   uuid.UUID
	FirstName            string
	LastName             string
	Email                string     // Unique, stored lowercase.
	PasswordHash         string     // bcrypt hash, empty for google accounts.
	EncryptedPhone       string     // Ciphertext produced by the field codec, empty for google accounts.
	PhoneIndex           string     // Keyed fingerprint of the phone number used for uniqueness checks.
	Gender               Gender
	BirthDate            *time.Time
	Role                 Role
	Provider             Provider
	IsConfirmed          bool
	BannedAt             *time.Time
	DeletedAt            *time.Time
	ChangeCredentialTime *time.Time // Tokens issued before this instant are no longer honoured.
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// FullName returns the display name of the user.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// IsBanned reports whether an administrator has banned the account.
func (u *User) IsBanned() bool {
	return u.BannedAt != nil
}

// IsDeleted reports whether the account has been soft deleted.
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// IsActive reports whether the account is neither banned nor deleted.
func (u *User) IsActive() bool {
	return !u.IsBanned() && !u.IsDeleted()
}

// CredentialsChangedAfter reports whether the credentials changed after the given issue instant.
// Token issue times have second precision, so the change time is compared at the same precision.
func (u *User) CredentialsChangedAfter(issuedAt time.Time) bool {
	if u.ChangeCredentialTime == nil {
		return false
	}

	return u.ChangeCredentialTime.Truncate(time.Second).After(issuedAt)
}

// UserProfile is the externally visible view of a user. Phone is only populated on the own-profile path.
type UserProfile struct {
	ID          uuid.UUID  `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	UserName    string     `json:"userName"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phoneNumber,omitempty"`
	Gender      Gender     `json:"gender,omitempty"`
	BirthDate   *time.Time `json:"birthDate,omitempty"`
	Role        Role       `json:"role,omitempty"`
	Provider    Provider   `json:"provider,omitempty"`
	IsConfirmed bool       `json:"isConfirmed"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// PublicProfile returns the view shown to other users. It never carries the phone number.
func (u *User) PublicProfile() *UserProfile {
	return &UserProfile{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		UserName:  u.FullName(),
		Gender:    u.Gender,
		CreatedAt: u.CreatedAt,
	}
}

// OwnProfile returns the view shown to the account owner with the decrypted phone number.
func (u *User) OwnProfile(phone string) *UserProfile {
	return &UserProfile{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		UserName:    u.FullName(),
		Email:       u.Email,
		Phone:       phone,
		Gender:      u.Gender,
		BirthDate:   u.BirthDate,
		Role:        u.Role,
		Provider:    u.Provider,
		IsConfirmed: u.IsConfirmed,
		CreatedAt:   u.CreatedAt,
	}
}

// UserProfileUpdate carries the optional fields of a profile update. Nil fields are left unchanged.
type UserProfileUpdate struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Gender    *Gender
	BirthDate *time.Time
}

// SummaryProfile returns the view used by administrative listings. The phone number stays encrypted and is omitted.
func (u *User) SummaryProfile() *UserProfile {
	return &UserProfile{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		UserName:    u.FullName(),
		Email:       u.Email,
		Gender:      u.Gender,
		BirthDate:   u.BirthDate,
		Role:        u.Role,
		Provider:    u.Provider,
		IsConfirmed: u.IsConfirmed,
		CreatedAt:   u.CreatedAt,
	}
}
