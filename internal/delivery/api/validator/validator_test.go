package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Gender   string `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid input", func(t *testing.T) {
		err := v.Validate(&signupRequest{Email: "jane@example.com", Password: "password1"})
		assert.NoError(t, err)
	})

	t.Run("reports fields by json name", func(t *testing.T) {
		err := v.Validate(&signupRequest{Email: "not-an-email", Password: "short", Gender: "other"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "email must be a valid email address")
		assert.Contains(t, err.Error(), "password must be at least 8 characters")
		assert.Contains(t, err.Error(), "gender must be one of [male female]")
	})

	t.Run("missing required field", func(t *testing.T) {
		err := v.Validate(&signupRequest{Password: "password1"})
		require.Error(t, err)
		assert.Equal(t, "email is required", err.Error())
	})
}
