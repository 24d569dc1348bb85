package gql

import (
	"log/slog"
	"net/http"

	deliverycontext "jobboard/internal/delivery/context"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/usecase"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Request is a GraphQL-over-HTTP request body.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// HandlerParams holds dependencies for Handler, injected by Fx.
type HandlerParams struct {
	fx.In

	Gate    usecase.AuthGate
	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// Handler executes GraphQL queries.
type Handler struct {
	schema graphql.Schema
	logger *slog.Logger
}

// NewHandler builds the schema and its resolvers.
func NewHandler(params HandlerParams) (*Handler, error) {
	schema, err := newSchema(&resolver{gate: params.Gate, adminUC: params.AdminUC})
	if err != nil {
		return nil, err
	}

	return &Handler{schema: schema, logger: params.Logger}, nil
}

// Serve executes the query in the request body. Resolver failures are reported in the errors array with a 200 status.
func (h *Handler) Serve(c echo.Context) error {
	var req Request
	if err := c.Bind(&req); err != nil || req.Query == "" {
		invalid := &resolverError{appErr: domainerrors.ErrValidationFailed}

		return c.JSON(http.StatusBadRequest, &graphql.Result{
			Errors: []gqlerrors.FormattedError{{Message: invalid.Error(), Extensions: invalid.Extensions()}},
		})
	}

	ctx := c.Request().Context()
	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})

	if result.HasErrors() {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("GraphQL query returned errors",
			slog.Int("error_count", len(result.Errors)),
		)
	}

	return c.JSON(http.StatusOK, result)
}
