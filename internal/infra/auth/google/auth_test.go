package google

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"

	"jobboard/config"
	"jobboard/internal/errors"
)

func newTestService(validate validateFunc) *AuthServiceImpl {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "test_client_id"}}
	svc := NewAuthService(cfg, slog.Default()).(*AuthServiceImpl)
	svc.validate = validate

	return svc
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	var gotAudience string
	svc := newTestService(func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
		gotAudience = audience

		return &idtoken.Payload{
			Issuer:  "https://accounts.google.com",
			Subject: "google-sub-1",
			Claims: map[string]any{
				"email":          "Jane.Doe@Example.com",
				"email_verified": true,
				"given_name":     "Jane",
				"family_name":    "Doe",
			},
		}, nil
	})

	user, err := svc.VerifyIDToken(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "test_client_id", gotAudience)
	assert.Equal(t, "google-sub-1", user.ID)
	assert.Equal(t, "jane.doe@example.com", user.Email)
	assert.True(t, user.EmailVerified)
	assert.Equal(t, "Jane", user.GivenName)
	assert.Equal(t, "Doe", user.FamilyName)
}

func TestAuthService_VerifyIDToken_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		payload *idtoken.Payload
		err     error
	}{
		{name: "validation error", err: errors.New("idtoken: invalid signature")},
		{name: "foreign issuer", payload: &idtoken.Payload{Issuer: "https://evil.example", Claims: map[string]any{"email": "a@b.c"}}},
		{name: "no email", payload: &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(func(context.Context, string, string) (*idtoken.Payload, error) {
				return tt.payload, tt.err
			})

			user, err := svc.VerifyIDToken(context.Background(), "token")
			assert.Error(t, err)
			assert.Nil(t, user)
		})
	}
}

func TestAuthService_RequiresClientID(t *testing.T) {
	svc := NewAuthService(&config.Config{}, slog.Default())

	_, err := svc.VerifyIDToken(context.Background(), "token")
	assert.ErrorContains(t, err, "client id")
}

func TestClaimBool(t *testing.T) {
	assert.True(t, claimBool(true))
	assert.True(t, claimBool("true"))
	assert.False(t, claimBool("false"))
	assert.False(t, claimBool(nil))
}
