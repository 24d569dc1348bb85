// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"jobboard/internal/delivery/api/middleware"
	"jobboard/internal/delivery/api/router/handler"
	"jobboard/internal/delivery/gql"
	"jobboard/internal/delivery/realtime"
	"jobboard/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	CompanyHandler *handler.CompanyHandler
	AdminHandler   *handler.AdminHandler
	ChatHandler    *handler.ChatHandler
	GraphQLHandler *gql.Handler
	SocketHandler  *realtime.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	companyHandler *handler.CompanyHandler
	adminHandler   *handler.AdminHandler
	chatHandler    *handler.ChatHandler
	graphqlHandler *gql.Handler
	socketHandler  *realtime.Handler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		companyHandler: params.CompanyHandler,
		adminHandler:   params.AdminHandler,
		chatHandler:    params.ChatHandler,
		graphqlHandler: params.GraphQLHandler,
		socketHandler:  params.SocketHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// GraphQL and websocket clients authenticate with explicit tokens, not the Authorization header.
	e.POST("/graphql", r.graphqlHandler.Serve)
	e.GET("/socket", r.socketHandler.Serve)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/resend-confirmation", r.authHandler.ResendConfirmation)
		authGroup.POST("/confirm-email", r.authHandler.ConfirmEmail)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/google", r.authHandler.GoogleLogin)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		// The refresh token travels in the Authorization header and is checked by the use case.
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
	}

	usersGroup := api.Group("/users")
	usersGroup.Use(r.authMiddleware.Authenticate)
	{
		usersGroup.GET("/me", r.userHandler.GetOwnProfile)
		usersGroup.PATCH("/me", r.userHandler.UpdateProfile)
		usersGroup.PUT("/me/password", r.userHandler.UpdatePassword)
		usersGroup.GET("/:id", r.userHandler.GetProfile)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser)
	}

	requireUser := r.authMiddleware.RequireRole(entity.RoleUser)

	companiesGroup := api.Group("/companies")
	{
		companiesGroup.GET("", r.companyHandler.ListCompanies)
		companiesGroup.GET("/:id", r.companyHandler.GetCompany)
		companiesGroup.POST("", r.companyHandler.CreateCompany, r.authMiddleware.Authenticate, requireUser)
		companiesGroup.PATCH("/:id", r.companyHandler.UpdateCompany, r.authMiddleware.Authenticate, requireUser)
		companiesGroup.POST("/:id/hrs", r.companyHandler.AddHR, r.authMiddleware.Authenticate, requireUser)
		// Admins may take down any company, owners only their own.
		companiesGroup.DELETE("/:id", r.companyHandler.DeleteCompany,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleUser, entity.RoleAdmin))
	}

	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/users/:id/ban", r.adminHandler.BanUser)
		adminGroup.POST("/users/:id/unban", r.adminHandler.UnbanUser)
		adminGroup.POST("/companies/:id/ban", r.adminHandler.BanCompany)
		adminGroup.POST("/companies/:id/unban", r.adminHandler.UnbanCompany)
		adminGroup.POST("/companies/:id/approve", r.adminHandler.ApproveCompany)
	}

	chatsGroup := api.Group("/chats")
	chatsGroup.Use(r.authMiddleware.Authenticate)
	chatsGroup.Use(requireUser)
	{
		chatsGroup.GET("/:userId", r.chatHandler.GetHistory)
		chatsGroup.POST("/:userId", r.chatHandler.SendMessage)
	}
}
