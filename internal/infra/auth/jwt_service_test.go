package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/config"
	"jobboard/internal/domain/entity"
)

func newTestAuthConfig() *config.Config {
	auth := &config.AuthConfig{
		AccessTTL:     time.Hour,
		RefreshTTL:    7 * 24 * time.Hour,
		EncryptionKey: strings.Repeat("e", 32),
	}
	auth.Secrets.User = config.RealmSecrets{
		Access:  "test_user_access_secret_key_very_long",
		Refresh: "test_user_refresh_secret_key_very_long",
	}
	auth.Secrets.Admin = config.RealmSecrets{
		Access:  "test_admin_access_secret_key_very_long",
		Refresh: "test_admin_refresh_secret_key_very_long",
	}

	return &config.Config{Auth: auth}
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newTestJWTService(t *testing.T) (*jwtService, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc, err := newJWTService(newTestAuthConfig(), clock.Now)
	require.NoError(t, err)

	return svc, clock
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, clock := newTestJWTService(t)
	principalID := uuid.New()

	token, err := svc.Issue(principalID, entity.RealmUser, entity.TokenPurposeAccess)
	require.NoError(t, err)

	claims, err := svc.Verify(token, entity.RealmUser, entity.TokenPurposeAccess)
	require.NoError(t, err)
	assert.Equal(t, principalID, claims.PrincipalID)
	assert.True(t, claims.IssuedAt.Equal(clock.t))
	assert.True(t, claims.ExpiresAt.Equal(clock.t.Add(time.Hour)))
}

func TestJWTService_WireClaims(t *testing.T) {
	svc, clock := newTestJWTService(t)
	principalID := uuid.New()

	token, err := svc.Issue(principalID, entity.RealmUser, entity.TokenPurposeAccess)
	require.NoError(t, err)

	parsed := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, parsed)
	require.NoError(t, err)

	assert.Equal(t, principalID.String(), parsed["id"])
	assert.InDelta(t, float64(clock.t.Unix()), parsed["iat"], 0)
}

func TestJWTService_SecretsAreDisjoint(t *testing.T) {
	svc, _ := newTestJWTService(t)
	principalID := uuid.New()

	pairs := []struct {
		realm   entity.Realm
		purpose entity.TokenPurpose
	}{
		{entity.RealmUser, entity.TokenPurposeAccess},
		{entity.RealmUser, entity.TokenPurposeRefresh},
		{entity.RealmAdmin, entity.TokenPurposeAccess},
		{entity.RealmAdmin, entity.TokenPurposeRefresh},
	}

	for _, issued := range pairs {
		token, err := svc.Issue(principalID, issued.realm, issued.purpose)
		require.NoError(t, err)

		for _, verified := range pairs {
			_, err := svc.Verify(token, verified.realm, verified.purpose)
			if issued == verified {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err, "token %s/%s must not verify as %s/%s",
					issued.realm, issued.purpose, verified.realm, verified.purpose)
			}
		}
	}
}

func TestJWTService_Expired(t *testing.T) {
	svc, clock := newTestJWTService(t)

	token, err := svc.Issue(uuid.New(), entity.RealmUser, entity.TokenPurposeAccess)
	require.NoError(t, err)

	clock.t = clock.t.Add(time.Hour + time.Second)
	_, err = svc.Verify(token, entity.RealmUser, entity.TokenPurposeAccess)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	svc, clock := newTestJWTService(t)

	claims := tokenClaims{
		ID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(clock.t),
			ExpiresAt: jwt.NewNumericDate(clock.t.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).
		SignedString([]byte("test_user_access_secret_key_very_long"))
	require.NoError(t, err)

	_, err = svc.Verify(token, entity.RealmUser, entity.TokenPurposeAccess)
	assert.Error(t, err)
}

func TestJWTService_RejectsMissingPrincipal(t *testing.T) {
	svc, clock := newTestJWTService(t)

	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(clock.t),
			ExpiresAt: jwt.NewNumericDate(clock.t.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test_user_access_secret_key_very_long"))
	require.NoError(t, err)

	_, err = svc.Verify(token, entity.RealmUser, entity.TokenPurposeAccess)
	assert.Error(t, err)
}

func TestJWTService_Malformed(t *testing.T) {
	svc, _ := newTestJWTService(t)

	_, err := svc.Verify("clearly-not-a-jwt-token-format", entity.RealmUser, entity.TokenPurposeAccess)
	assert.Error(t, err)
}

func TestJWTService_IssueAuthPair(t *testing.T) {
	svc, _ := newTestJWTService(t)

	tests := []struct {
		role  entity.Role
		realm entity.Realm
	}{
		{entity.RoleUser, entity.RealmUser},
		{entity.RoleAdmin, entity.RealmAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			user := &entity.User{ID: uuid.New(), Role: tt.role}
			pair, err := svc.IssueAuthPair(user)
			require.NoError(t, err)

			access, err := svc.Verify(pair.AccessToken, tt.realm, entity.TokenPurposeAccess)
			require.NoError(t, err)
			assert.Equal(t, user.ID, access.PrincipalID)

			refresh, err := svc.Verify(pair.RefreshToken, tt.realm, entity.TokenPurposeRefresh)
			require.NoError(t, err)
			assert.Equal(t, user.ID, refresh.PrincipalID)
			assert.True(t, refresh.ExpiresAt.After(access.ExpiresAt))
		})
	}
}

func TestNewJWTService_RejectsBadSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)

	cfg := newTestAuthConfig()
	cfg.Auth.Secrets.Admin.Access = cfg.Auth.Secrets.User.Access
	_, err = NewJWTService(cfg)
	assert.Error(t, err)
}
