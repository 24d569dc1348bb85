// Package model holds the GORM persistence models. They are exported so the GORM Gen tool can read them.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FirstName            string     `gorm:"type:varchar(50);not null"`
	LastName             string     `gorm:"type:varchar(50);not null"`
	Email                string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash         *string    `gorm:"type:varchar(255)"`
	PhoneCiphertext      *string    `gorm:"type:text"`
	PhoneIndex           *string    `gorm:"type:char(64);uniqueIndex"`
	Gender               string     `gorm:"type:varchar(20);not null;default:unspecified"`
	BirthDate            *time.Time `gorm:"type:date"`
	Role                 string     `gorm:"type:varchar(20);not null;default:user"`
	Provider             string     `gorm:"type:varchar(20);not null;default:system"`
	IsConfirmed          bool       `gorm:"not null;default:false"`
	BannedAt             *time.Time
	DeletedAt            *time.Time
	ChangeCredentialTime *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserOTPModel mirrors the 'user_otps' table. (user_id, purpose) is unique.
type UserOTPModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Purpose   string    `gorm:"type:varchar(32);primaryKey"`
	CodeHash  string    `gorm:"type:varchar(255);not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserOTPModel) TableName() string {
	return "user_otps"
}
