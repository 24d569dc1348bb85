package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	usecasemocks "jobboard/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	user, ok := GetPrincipal(c)
	if !ok {
		return c.NoContent(http.StatusTeapot)
	}

	return c.String(http.StatusOK, user.ID.String())
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser}

	t.Run("attaches the principal", func(t *testing.T) {
		gate := usecasemocks.NewMockAuthGate(t)
		gate.EXPECT().Authenticate(mock.Anything, "Bearer token", entity.TokenPurposeAccess).Return(user, nil)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer token")
		rec := httptest.NewRecorder()

		err := NewAuthMiddleware(gate).Authenticate(okHandler)(e.NewContext(req, rec))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, user.ID.String(), rec.Body.String())
	})

	t.Run("renders gate failures", func(t *testing.T) {
		gate := usecasemocks.NewMockAuthGate(t)
		gate.EXPECT().Authenticate(mock.Anything, "", entity.TokenPurposeAccess).Return(nil, domainerrors.ErrMissingAuth)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		err := NewAuthMiddleware(gate).Authenticate(okHandler)(e.NewContext(req, rec))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "MISSING_AUTH")
	})

	t.Run("banned account is forbidden", func(t *testing.T) {
		gate := usecasemocks.NewMockAuthGate(t)
		gate.EXPECT().Authenticate(mock.Anything, "Bearer token", entity.TokenPurposeAccess).Return(nil, domainerrors.ErrAccountBanned)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer token")
		rec := httptest.NewRecorder()

		err := NewAuthMiddleware(gate).Authenticate(okHandler)(e.NewContext(req, rec))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "ACCOUNT_BANNED")
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}
	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser}

	t.Run("allowed role passes", func(t *testing.T) {
		gate := usecasemocks.NewMockAuthGate(t)
		gate.EXPECT().Authorize(admin, entity.RoleAdmin).Return(nil)

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		c.Set(principalKey, admin)

		err := NewAuthMiddleware(gate).RequireRole(entity.RoleAdmin)(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("other role is denied", func(t *testing.T) {
		gate := usecasemocks.NewMockAuthGate(t)
		gate.EXPECT().Authorize(user, entity.RoleAdmin).Return(domainerrors.ErrAccessDenied)

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		c.Set(principalKey, user)

		err := NewAuthMiddleware(gate).RequireRole(entity.RoleAdmin)(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "ACCESS_DENIED")
	})
}
