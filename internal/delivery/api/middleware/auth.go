package middleware

import (
	"jobboard/internal/delivery/api/response"
	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	"jobboard/internal/usecase"

	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

// AuthMiddleware runs the authentication and authorization gates for REST routes.
type AuthMiddleware struct {
	gate usecase.AuthGate
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(gate usecase.AuthGate) *AuthMiddleware {
	return &AuthMiddleware{gate: gate}
}

// Authenticate resolves the access token in the Authorization header to a principal
// and attaches it to the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authorization := c.Request().Header.Get(echo.HeaderAuthorization)

		user, err := m.gate.Authenticate(c.Request().Context(), authorization, entity.TokenPurposeAccess)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		SetPrincipal(c, user)
		ctx := deliverycontext.WithPrincipal(c.Request().Context(), user.ID, string(user.Role))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole only lets principals holding one of the roles through.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := GetPrincipal(c)
			if err := m.gate.Authorize(user, roles...); err != nil {
				return response.HandleAppError(c, err)
			}

			return next(c)
		}
	}
}

// SetPrincipal attaches the authenticated principal to the request.
func SetPrincipal(c echo.Context, user *entity.User) {
	c.Set(principalKey, user)
}

// GetPrincipal returns the principal attached by Authenticate.
func GetPrincipal(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(principalKey).(*entity.User)

	return user, ok && user != nil
}
