package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeRange is the bucketed head count of a company.
type EmployeeRange string

const (
	Employees1To10    EmployeeRange = "1-10"
	Employees11To20   EmployeeRange = "11-20"
	Employees21To50   EmployeeRange = "21-50"
	Employees51To100  EmployeeRange = "51-100"
	Employees101To200 EmployeeRange = "101-200"
	Employees201To500 EmployeeRange = "201-500"
	Employees500Plus  EmployeeRange = "500+"
)

// Company is an employer account owned by the user who created it.
type Company struct {
	ID                uuid.UUID
	Name              string
	Description       string
	Industry          string
	Address           string
	NumberOfEmployees EmployeeRange
	Email             string
	CreatedBy         uuid.UUID
	HRs               []uuid.UUID
	ApprovedByAdmin   bool
	BannedAt          *time.Time
	DeletedAt         *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsActive reports whether the company is neither banned nor deleted.
func (c *Company) IsActive() bool {
	return c.BannedAt == nil && c.DeletedAt == nil
}

// IsOwner reports whether the user created the company.
func (c *Company) IsOwner(userID uuid.UUID) bool {
	return c.CreatedBy == userID
}

// IsHR reports whether the user is listed as one of the company's HRs.
func (c *Company) IsHR(userID uuid.UUID) bool {
	for _, id := range c.HRs {
		if id == userID {
			return true
		}
	}

	return false
}

// CompanyUpdate carries the optional fields of a company update.
type CompanyUpdate struct {
	Name              *string
	Description       *string
	Industry          *string
	Address           *string
	NumberOfEmployees *EmployeeRange
	Email             *string
}
