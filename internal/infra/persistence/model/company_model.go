package model

import (
	"time"

	"github.com/google/uuid"
)

// CompanyModel mirrors the 'companies' table.
type CompanyModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Description       string    `gorm:"type:text;not null"`
	Industry          string    `gorm:"type:varchar(255);not null"`
	Address           string    `gorm:"type:varchar(255);not null"`
	NumberOfEmployees string    `gorm:"type:varchar(16);not null"`
	Email             string    `gorm:"type:varchar(255);not null"`
	CreatedBy         uuid.UUID `gorm:"type:uuid;not null;index"`
	ApprovedByAdmin   bool      `gorm:"not null;default:false"`
	BannedAt          *time.Time
	DeletedAt         *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	HRs []CompanyHRModel `gorm:"foreignKey:CompanyID"`
}

// TableName explicitly sets the table name for GORM.
func (CompanyModel) TableName() string {
	return "companies"
}

// CompanyHRModel mirrors the 'company_hrs' join table.
type CompanyHRModel struct {
	CompanyID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CompanyHRModel) TableName() string {
	return "company_hrs"
}
