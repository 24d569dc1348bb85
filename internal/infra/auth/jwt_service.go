// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"jobboard/config"
	"jobboard/internal/domain/entity"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"
)

// ErrUnknownTokenPair is returned when no secret is configured for a (realm, purpose) pair.
var ErrUnknownTokenPair = errors.New("no secret configured for token realm and purpose")

// tokenClaims is the wire form of a token: {id, iat, exp}.
type tokenClaims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

type tokenKey struct {
	realm   entity.Realm
	purpose entity.TokenPurpose
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secrets map[tokenKey][]byte
	ttls    map[entity.TokenPurpose]time.Duration
	now     func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTService(cfg, time.Now)
}

func newJWTService(cfg *config.Config, now func() time.Time) (*jwtService, error) {
	if cfg.Auth == nil {
		return nil, errors.New("jwt secrets must be provided")
	}
	if err := cfg.Auth.Validate(); err != nil {
		return nil, err
	}

	secrets := make(map[tokenKey][]byte, 4)
	for realm, purposes := range cfg.Auth.SecretTable() {
		for purpose, secret := range purposes {
			secrets[tokenKey{realm: realm, purpose: purpose}] = []byte(secret)
		}
	}

	return &jwtService{
		secrets: secrets,
		ttls: map[entity.TokenPurpose]time.Duration{
			entity.TokenPurposeAccess:  cfg.Auth.AccessTTL,
			entity.TokenPurposeRefresh: cfg.Auth.RefreshTTL,
		},
		now: now,
	}, nil
}

// Issue signs a token for the principal with the secret and TTL of the (realm, purpose) pair.
func (s *jwtService) Issue(principalID uuid.UUID, realm entity.Realm, purpose entity.TokenPurpose) (string, error) {
	secret, ok := s.secrets[tokenKey{realm: realm, purpose: purpose}]
	if !ok {
		return "", errors.WithStack(ErrUnknownTokenPair)
	}

	issuedAt := s.now()
	claims := tokenClaims{
		ID: principalID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttls[purpose])),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Verify checks the token against the secret of the (realm, purpose) pair only.
func (s *jwtService) Verify(token string, realm entity.Realm, purpose entity.TokenPurpose) (*entity.TokenClaims, error) {
	secret, ok := s.secrets[tokenKey{realm: realm, purpose: purpose}]
	if !ok {
		return nil, errors.WithStack(ErrUnknownTokenPair)
	}

	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	if claims.IssuedAt == nil {
		return nil, errors.New("token has no issued-at claim")
	}

	principalID, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, errors.Wrap(err, "token principal id")
	}

	return &entity.TokenClaims{
		PrincipalID: principalID,
		IssuedAt:    claims.IssuedAt.Time,
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

// IssueAuthPair issues both tokens in the realm of the user's role.
func (s *jwtService) IssueAuthPair(user *entity.User) (*entity.AuthTokens, error) {
	realm := user.Role.Realm()

	accessToken, err := s.Issue(user.ID, realm, entity.TokenPurposeAccess)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.Issue(user.ID, realm, entity.TokenPurposeRefresh)
	if err != nil {
		return nil, err
	}

	return &entity.AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
