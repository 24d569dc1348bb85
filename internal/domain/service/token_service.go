package service

import (
	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and verifying JWTs.
// Every (realm, purpose) pair is signed with its own secret, so a token only verifies where it was issued.
type TokenService interface {
	// Issue signs a token for the principal with the secret and lifetime of the pair.
	Issue(principalID uuid.UUID, realm entity.Realm, purpose entity.TokenPurpose) (string, error)

	// Verify checks signature and expiry against the secret of the pair and returns the claims.
	Verify(token string, realm entity.Realm, purpose entity.TokenPurpose) (*entity.TokenClaims, error)

	// IssueAuthPair issues an access and a refresh token in the realm matching the user's role.
	IssueAuthPair(user *entity.User) (*entity.AuthTokens, error)
}
