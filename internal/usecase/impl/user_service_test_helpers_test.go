package impl

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"jobboard/config"
	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	auth := &config.AuthConfig{
		AccessTTL:     time.Hour,
		RefreshTTL:    7 * 24 * time.Hour,
		BcryptCost:    4,
		EncryptionKey: strings.Repeat("k", 32),
	}
	auth.Secrets.User = config.RealmSecrets{
		Access:  "test_user_access_secret_key_very_long",
		Refresh: "test_user_refresh_secret_key_very_long",
	}
	auth.Secrets.Admin = config.RealmSecrets{
		Access:  "test_admin_access_secret_key_very_long",
		Refresh: "test_admin_refresh_secret_key_very_long",
	}

	return &config.Config{
		Auth: auth,
		OTP: &config.OTPConfig{
			Length:         6,
			TTL:            10 * time.Minute,
			ResendCooldown: time.Minute,
		},
	}
}

func newTestUser(role entity.Role) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "jane@example.com",
		PasswordHash: "hashed",
		Gender:       entity.GenderFemale,
		Role:         role,
		Provider:     entity.ProviderSystem,
		IsConfirmed:  true,
	}
}

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

func (c *fixedClock) Advance(d time.Duration) { c.t = c.t.Add(d) }
