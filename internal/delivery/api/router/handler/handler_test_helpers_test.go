package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jobboard/internal/delivery/api/middleware"
	"jobboard/internal/delivery/api/validator"
	"jobboard/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testRequest struct {
	method        string
	path          string
	body          string
	authorization string
	principal     *entity.User
	paramNames    []string
	paramValues   []string
}

// serve runs a handler against a recorder with the validator installed, as the API server does.
func serve(t *testing.T, h echo.HandlerFunc, tr testRequest) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var body io.Reader
	if tr.body != "" {
		body = strings.NewReader(tr.body)
	}
	method := tr.method
	if method == "" {
		method = http.MethodPost
	}
	path := tr.path
	if path == "" {
		path = "/"
	}
	req := httptest.NewRequest(method, path, body)
	if tr.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if tr.authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, tr.authorization)
	}
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	if len(tr.paramNames) > 0 {
		c.SetParamNames(tr.paramNames...)
		c.SetParamValues(tr.paramValues...)
	}
	if tr.principal != nil {
		middleware.SetPrincipal(c, tr.principal)
	}

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}
