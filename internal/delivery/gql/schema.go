// Package gql serves the GraphQL endpoint. Queries authenticate with an explicit token argument
// carrying "<Realm> <token>" instead of the Authorization header.
package gql

import (
	"time"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/errors"
	"jobboard/internal/usecase"

	"github.com/graphql-go/graphql"
)

type userView struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	UserName    string    `json:"userName"`
	Email       string    `json:"email"`
	Gender      string    `json:"gender"`
	Role        string    `json:"role"`
	Provider    string    `json:"provider"`
	IsConfirmed bool      `json:"isConfirmed"`
	CreatedAt   time.Time `json:"createdAt"`
}

type companyView struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Industry          string    `json:"industry"`
	Address           string    `json:"address"`
	NumberOfEmployees string    `json:"numberOfEmployees"`
	Email             string    `json:"companyEmail"`
	CreatedBy         string    `json:"createdBy"`
	HRs               []string  `json:"hrs"`
	ApprovedByAdmin   bool      `json:"approvedByAdmin"`
	Banned            bool      `json:"banned"`
	CreatedAt         time.Time `json:"createdAt"`
}

type allDataView struct {
	Users     []*userView    `json:"users"`
	Companies []*companyView `json:"companies"`
}

// resolverError exposes the code and status of an application error as GraphQL extensions.
type resolverError struct {
	appErr domainerrors.AppError
}

func (e *resolverError) Error() string {
	return e.appErr.Message()
}

// Extensions implements gqlerrors.ExtendedError.
func (e *resolverError) Extensions() map[string]any {
	return map[string]any{
		"code":       e.appErr.ErrorCode(),
		"statusCode": e.appErr.HTTPCode(),
	}
}

func newSchema(r *resolver) (graphql.Schema, error) {
	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"firstName":   &graphql.Field{Type: graphql.String},
			"lastName":    &graphql.Field{Type: graphql.String},
			"userName":    &graphql.Field{Type: graphql.String},
			"email":       &graphql.Field{Type: graphql.String},
			"gender":      &graphql.Field{Type: graphql.String},
			"role":        &graphql.Field{Type: graphql.String},
			"provider":    &graphql.Field{Type: graphql.String},
			"isConfirmed": &graphql.Field{Type: graphql.Boolean},
			"createdAt":   &graphql.Field{Type: graphql.DateTime},
		},
	})

	companyType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Company",
		Fields: graphql.Fields{
			"id":                &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":              &graphql.Field{Type: graphql.String},
			"description":       &graphql.Field{Type: graphql.String},
			"industry":          &graphql.Field{Type: graphql.String},
			"address":           &graphql.Field{Type: graphql.String},
			"numberOfEmployees": &graphql.Field{Type: graphql.String},
			"companyEmail":      &graphql.Field{Type: graphql.String},
			"createdBy":         &graphql.Field{Type: graphql.ID},
			"hrs":               &graphql.Field{Type: graphql.NewList(graphql.ID)},
			"approvedByAdmin":   &graphql.Field{Type: graphql.Boolean},
			"banned":            &graphql.Field{Type: graphql.Boolean},
			"createdAt":         &graphql.Field{Type: graphql.DateTime},
		},
	})

	allDataType := graphql.NewObject(graphql.ObjectConfig{
		Name: "AllData",
		Fields: graphql.Fields{
			"users":     &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(userType)))},
			"companies": &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(companyType)))},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"allData": &graphql.Field{
				Type:        graphql.NewNonNull(allDataType),
				Description: "Every user and company. Requires an admin access token.",
				Args: graphql.FieldConfigArgument{
					"token": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.allData,
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{Query: queryType})
	if err != nil {
		return graphql.Schema{}, errors.Wrap(err, "build graphql schema")
	}

	return schema, nil
}

type resolver struct {
	gate    usecase.AuthGate
	adminUC usecase.AdminUsecase
}

func (r *resolver) allData(p graphql.ResolveParams) (any, error) {
	token, _ := p.Args["token"].(string)

	user, err := r.gate.Authenticate(p.Context, token, entity.TokenPurposeAccess)
	if err != nil {
		return nil, toResolverError(err)
	}

	if err := r.gate.Authorize(user, entity.RoleAdmin); err != nil {
		return nil, toResolverError(err)
	}

	output, err := r.adminUC.AllData(p.Context)
	if err != nil {
		return nil, toResolverError(err)
	}

	view := &allDataView{
		Users:     make([]*userView, 0, len(output.Users)),
		Companies: make([]*companyView, 0, len(output.Companies)),
	}
	for _, profile := range output.Users {
		view.Users = append(view.Users, newUserView(profile))
	}
	for _, company := range output.Companies {
		view.Companies = append(view.Companies, newCompanyView(company))
	}

	return view, nil
}

// toResolverError keeps internal failures opaque to the client.
func toResolverError(err error) error {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok && appErr.HTTPCode() < 500 {
		return &resolverError{appErr: appErr}
	}

	return &resolverError{appErr: domainerrors.ErrInternalError}
}

func newUserView(profile *entity.UserProfile) *userView {
	return &userView{
		ID:          profile.ID.String(),
		FirstName:   profile.FirstName,
		LastName:    profile.LastName,
		UserName:    profile.UserName,
		Email:       profile.Email,
		Gender:      string(profile.Gender),
		Role:        profile.Role.String(),
		Provider:    string(profile.Provider),
		IsConfirmed: profile.IsConfirmed,
		CreatedAt:   profile.CreatedAt,
	}
}

func newCompanyView(company *entity.Company) *companyView {
	hrs := make([]string, 0, len(company.HRs))
	for _, id := range company.HRs {
		hrs = append(hrs, id.String())
	}

	return &companyView{
		ID:                company.ID.String(),
		Name:              company.Name,
		Description:       company.Description,
		Industry:          company.Industry,
		Address:           company.Address,
		NumberOfEmployees: string(company.NumberOfEmployees),
		Email:             company.Email,
		CreatedBy:         company.CreatedBy.String(),
		HRs:               hrs,
		ApprovedByAdmin:   company.ApprovedByAdmin,
		Banned:            company.BannedAt != nil,
		CreatedAt:         company.CreatedAt,
	}
}
