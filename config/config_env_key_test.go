package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/domain/entity"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"encryptionKey": "",
			"secrets": map[string]any{
				"admin": map[string]any{
					"refresh": "",
				},
			},
		},
		"otp": map[string]any{
			"resendCooldown": "1m",
		},
		"googleOAuth": map[string]any{
			"clientId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_ENCRYPTIONKEY", want: "auth.encryptionKey"},
		{envKey: "AUTH_SECRETS_ADMIN_REFRESH", want: "auth.secrets.admin.refresh"},
		{envKey: "OTP_RESENDCOOLDOWN", want: "otp.resendCooldown"},
		{envKey: "GOOGLEOAUTH_CLIENTID", want: "googleOAuth.clientId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func validAuthConfig() *AuthConfig {
	cfg := &AuthConfig{EncryptionKey: strings.Repeat("k", 32)}
	cfg.Secrets.User = RealmSecrets{Access: strings.Repeat("a", 32), Refresh: strings.Repeat("b", 32)}
	cfg.Secrets.Admin = RealmSecrets{Access: strings.Repeat("c", 32), Refresh: strings.Repeat("d", 32)}

	return cfg
}

func TestAuthConfig_Validate(t *testing.T) {
	t.Run("distinct secrets pass", func(t *testing.T) {
		require.NoError(t, validAuthConfig().Validate())
	})

	t.Run("missing secret", func(t *testing.T) {
		cfg := validAuthConfig()
		cfg.Secrets.Admin.Access = ""
		assert.ErrorContains(t, cfg.Validate(), "admin.access")
	})

	t.Run("reused secret", func(t *testing.T) {
		cfg := validAuthConfig()
		cfg.Secrets.Admin.Refresh = cfg.Secrets.User.Access
		assert.ErrorContains(t, cfg.Validate(), "must differ")
	})

	t.Run("short encryption key", func(t *testing.T) {
		cfg := validAuthConfig()
		cfg.EncryptionKey = "short"
		assert.ErrorContains(t, cfg.Validate(), "encryption key")
	})
}

func TestAuthConfig_SecretTable(t *testing.T) {
	cfg := validAuthConfig()
	table := cfg.SecretTable()

	assert.Equal(t, cfg.Secrets.User.Access, table[entity.RealmUser][entity.TokenPurposeAccess])
	assert.Equal(t, cfg.Secrets.User.Refresh, table[entity.RealmUser][entity.TokenPurposeRefresh])
	assert.Equal(t, cfg.Secrets.Admin.Access, table[entity.RealmAdmin][entity.TokenPurposeAccess])
	assert.Equal(t, cfg.Secrets.Admin.Refresh, table[entity.RealmAdmin][entity.TokenPurposeRefresh])
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{}}
	applyDefaults(cfg)

	assert.Equal(t, defaultAccessTTL, cfg.Auth.AccessTTL)
	assert.Equal(t, defaultRefreshTTL, cfg.Auth.RefreshTTL)
	require.NotNil(t, cfg.OTP)
	assert.Equal(t, 6, cfg.OTP.Length)
	assert.Equal(t, defaultOTPTTL, cfg.OTP.TTL)
	assert.Equal(t, "0 */6 * * *", cfg.OTP.SweepSchedule)
	assert.Equal(t, defaultOTPResendCooldown, cfg.OTP.ResendCooldown)

	disabled := &Config{OTP: &OTPConfig{ResendCooldown: -1}}
	applyDefaults(disabled)
	assert.Zero(t, disabled.OTP.ResendCooldown)
}
