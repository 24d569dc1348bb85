package entity

import (
	"time"

	"github.com/google/uuid"
)

// OTPPurpose is the action a one-time code authorizes.
type OTPPurpose string

const (
	OTPPurposeConfirmEmail   OTPPurpose = "confirm-email"
	OTPPurposeForgotPassword OTPPurpose = "forgot-password"
)

func (p OTPPurpose) String() string {
	return string(p)
}

// IsValid checks if the purpose is a known value.
func (p OTPPurpose) IsValid() bool {
	switch p {
	case OTPPurposeConfirmEmail, OTPPurposeForgotPassword:
		return true
	default:
		return false
	}
}

// OTPEntry is the stored form of a one-time code. At most one entry exists per (user, purpose).
type OTPEntry struct {
	UserID    uuid.UUID
	Purpose   OTPPurpose
	CodeHash  string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the entry is past its expiry at the given instant.
func (e *OTPEntry) IsExpired(now time.Time) bool {
	return now.After(e.ExpiresAt)
}

// OTPDeliveryEvent asks the mailer to send a freshly generated code. The plaintext code exists only here.
type OTPDeliveryEvent struct {
	RequestID   string     `json:"requestId,omitempty"` // For distributed tracing
	PrincipalID uuid.UUID  `json:"principalId"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Purpose     OTPPurpose `json:"purpose"`
	Code        string     `json:"code"`
}
