package google

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/api/idtoken"

	"jobboard/config"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"
)

var validIssuers = map[string]bool{
	"https://accounts.google.com": true,
	"accounts.google.com":         true,
}

// validateFunc matches idtoken.Validate.
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthServiceImpl implements service.OAuthAuthService for Google Sign-In ID tokens.
type AuthServiceImpl struct {
	clientID string
	logger   *slog.Logger
	validate validateFunc
}

// NewAuthService creates a new Google AuthService
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &AuthServiceImpl{
		clientID: clientID,
		logger:   logger,
		validate: idtoken.Validate,
	}
}

// VerifyIDToken checks signature, audience, issuer and expiry of the ID token against Google's keys.
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, errors.New("google client id is not configured")
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.Debug("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "token verification failed")
	}

	if !validIssuers[payload.Issuer] {
		return nil, errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, errors.New("token carries no email")
	}

	oauthUser := &service.OAuthUser{
		ID:            payload.Subject,
		Email:         strings.ToLower(email),
		EmailVerified: claimBool(payload.Claims["email_verified"]),
		GivenName:     claimString(payload.Claims["given_name"]),
		FamilyName:    claimString(payload.Claims["family_name"]),
	}

	s.logger.Debug("Google ID token verified", slog.String("sub", oauthUser.ID))

	return oauthUser, nil
}

func claimString(v any) string {
	s, _ := v.(string)

	return s
}

// claimBool accepts both JSON booleans and the "true"/"false" strings some tokens carry.
func claimBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true"
	default:
		return false
	}
}
