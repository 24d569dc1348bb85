// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"
	"jobboard/internal/usecase"

	"go.uber.org/fx"
)

// authGate implements the AuthGate interface.
type authGate struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthGateParams holds dependencies for the auth gate, injected by Fx.
type AuthGateParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthGate is the constructor for authGate.
func NewAuthGate(params AuthGateParams) usecase.AuthGate {
	return &authGate{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (g *authGate) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger)
}

// Authenticate runs the checks in a fixed order: header shape, realm, signature and expiry,
// principal lookup, ban, deletion, then credential freshness.
func (g *authGate) Authenticate(ctx context.Context, authorization string, purpose entity.TokenPurpose) (*entity.User, error) {
	if strings.TrimSpace(authorization) == "" {
		return nil, domainerrors.ErrMissingAuth
	}

	scheme, token, _ := strings.Cut(strings.TrimSpace(authorization), " ")
	token = strings.TrimSpace(token)
	if scheme == "" || token == "" {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("authorization must be '<scheme> <token>'")
	}

	realm, ok := entity.ParseRealm(scheme)
	if !ok {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("unknown authorization scheme")
	}

	claims, err := g.tokenService.Verify(token, realm, purpose)
	if err != nil {
		g.log(ctx).Debug("Token verification failed",
			slog.String("realm", realm.String()),
			slog.String("purpose", purpose.String()),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrInvalidToken.WrapMessage("token verification failed")
	}

	user, err := g.userRepo.FindByID(ctx, claims.PrincipalID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load token principal")
	}

	switch {
	case user.IsBanned():
		return nil, domainerrors.ErrAccountBanned
	case user.IsDeleted():
		return nil, domainerrors.ErrUserNotFound
	case user.CredentialsChangedAfter(claims.IssuedAt):
		return nil, domainerrors.ErrSessionExpired
	}

	return user, nil
}

// Authorize is an exact membership check, there is no role hierarchy.
func (g *authGate) Authorize(user *entity.User, allowed ...entity.Role) error {
	if user == nil {
		return domainerrors.ErrMissingAuth
	}
	if !entity.Roles(allowed).Contains(user.Role) {
		return domainerrors.ErrAccessDenied
	}

	return nil
}
