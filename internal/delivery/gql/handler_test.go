package gql

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	usecasemocks "jobboard/internal/mocks/usecase"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const allDataQuery = `query ($token: String!) {
  allData(token: $token) {
    users { id email role }
    companies { id name companyEmail hrs banned }
  }
}`

type gqlResponse struct {
	Data *struct {
		AllData *struct {
			Users     []map[string]any `json:"users"`
			Companies []map[string]any `json:"companies"`
		} `json:"allData"`
	} `json:"data"`
	Errors []struct {
		Message    string         `json:"message"`
		Extensions map[string]any `json:"extensions"`
	} `json:"errors"`
}

func newTestHandler(t *testing.T) (*Handler, *usecasemocks.MockAuthGate, *usecasemocks.MockAdminUsecase) {
	t.Helper()

	gate := usecasemocks.NewMockAuthGate(t)
	adminUC := usecasemocks.NewMockAdminUsecase(t)
	h, err := NewHandler(HandlerParams{
		Gate:    gate,
		AdminUC: adminUC,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return h, gate, adminUC
}

func execute(t *testing.T, h *Handler, body string) (int, gqlResponse) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Serve(e.NewContext(req, rec)))

	var resp gqlResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return rec.Code, resp
}

func queryBody(t *testing.T, token string) string {
	t.Helper()

	body, err := json.Marshal(Request{Query: allDataQuery, Variables: map[string]any{"token": token}})
	require.NoError(t, err)

	return string(body)
}

func TestHandler_AllData(t *testing.T) {
	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}
	hrID := uuid.New()

	t.Run("admin receives users and companies", func(t *testing.T) {
		h, gate, adminUC := newTestHandler(t)
		gate.EXPECT().Authenticate(mock.Anything, "Admin good", entity.TokenPurposeAccess).Return(admin, nil)
		gate.EXPECT().Authorize(admin, entity.RoleAdmin).Return(nil)
		adminUC.EXPECT().AllData(mock.Anything).Return(&usecase.AllDataOutput{
			Users: []*entity.UserProfile{{ID: admin.ID, Email: "root@example.com", Role: entity.RoleAdmin, CreatedAt: time.Now()}},
			Companies: []*entity.Company{{
				ID:       uuid.New(),
				Name:     "Acme",
				Email:    "hr@acme.test",
				HRs:      []uuid.UUID{hrID},
				BannedAt: new(time.Time),
			}},
		}, nil)

		code, resp := execute(t, h, queryBody(t, "Admin good"))
		assert.Equal(t, http.StatusOK, code)
		require.Empty(t, resp.Errors)
		require.NotNil(t, resp.Data)
		require.NotNil(t, resp.Data.AllData)

		require.Len(t, resp.Data.AllData.Users, 1)
		assert.Equal(t, "root@example.com", resp.Data.AllData.Users[0]["email"])
		assert.Equal(t, "admin", resp.Data.AllData.Users[0]["role"])

		require.Len(t, resp.Data.AllData.Companies, 1)
		company := resp.Data.AllData.Companies[0]
		assert.Equal(t, "Acme", company["name"])
		assert.Equal(t, "hr@acme.test", company["companyEmail"])
		assert.Equal(t, []any{hrID.String()}, company["hrs"])
		assert.Equal(t, true, company["banned"])
	})

	t.Run("authentication failure carries the error code", func(t *testing.T) {
		h, gate, _ := newTestHandler(t)
		gate.EXPECT().Authenticate(mock.Anything, "Bearer admin-token", entity.TokenPurposeAccess).Return(nil, domainerrors.ErrInvalidToken)

		code, resp := execute(t, h, queryBody(t, "Bearer admin-token"))
		assert.Equal(t, http.StatusOK, code)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "INVALID_TOKEN", resp.Errors[0].Extensions["code"])
		assert.InDelta(t, float64(http.StatusBadRequest), resp.Errors[0].Extensions["statusCode"], 0)
		assert.True(t, resp.Data == nil || resp.Data.AllData == nil)
	})

	t.Run("regular user is forbidden", func(t *testing.T) {
		h, gate, _ := newTestHandler(t)
		user := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
		gate.EXPECT().Authenticate(mock.Anything, "Bearer good", entity.TokenPurposeAccess).Return(user, nil)
		gate.EXPECT().Authorize(user, entity.RoleAdmin).Return(domainerrors.ErrAccessDenied)

		_, resp := execute(t, h, queryBody(t, "Bearer good"))
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "ACCESS_DENIED", resp.Errors[0].Extensions["code"])
		assert.InDelta(t, float64(http.StatusForbidden), resp.Errors[0].Extensions["statusCode"], 0)
	})

	t.Run("internal failures stay opaque", func(t *testing.T) {
		h, gate, adminUC := newTestHandler(t)
		gate.EXPECT().Authenticate(mock.Anything, "Admin good", entity.TokenPurposeAccess).Return(admin, nil)
		gate.EXPECT().Authorize(admin, entity.RoleAdmin).Return(nil)
		adminUC.EXPECT().AllData(mock.Anything).Return(nil, errors.New("connection reset by peer"))

		_, resp := execute(t, h, queryBody(t, "Admin good"))
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "INTERNAL_ERROR", resp.Errors[0].Extensions["code"])
		assert.NotContains(t, resp.Errors[0].Message, "connection reset")
	})

	t.Run("missing query is rejected", func(t *testing.T) {
		h, _, _ := newTestHandler(t)

		code, resp := execute(t, h, `{}`)
		assert.Equal(t, http.StatusBadRequest, code)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "VALIDATION_FAILED", resp.Errors[0].Extensions["code"])
	})
}
