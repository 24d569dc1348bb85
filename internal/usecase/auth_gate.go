// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"jobboard/internal/domain/entity"
)

// AuthGate resolves the acting principal of a request and checks its role.
// REST middleware, GraphQL resolvers and the realtime handshake all go through the same gate.
type AuthGate interface {
	// Authenticate verifies a "<Scheme> <token>" credential of the given purpose and returns the principal.
	Authenticate(ctx context.Context, authorization string, purpose entity.TokenPurpose) (*entity.User, error)

	// Authorize checks that the principal holds one of the allowed roles.
	Authorize(user *entity.User, allowed ...entity.Role) error
}
