// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"community/internal/delivery/api/middleware"
	"community/internal/delivery/api/router/handler"
	"community/internal/domain/entity"
	"community/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	IdentityHandler    *handler.IdentityHandler
	BoardHandler       *handler.BoardHandler
	SecurityMiddleware *middleware.SecurityMiddleware
	Metrics            *metrics.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	identityHandler    *handler.IdentityHandler
	boardHandler       *handler.BoardHandler
	securityMiddleware *middleware.SecurityMiddleware
	metrics            *metrics.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		identityHandler:    params.IdentityHandler,
		boardHandler:       params.BoardHandler,
		securityMiddleware: params.SecurityMiddleware,
		metrics:            params.Metrics,
	}
}

// RegisterRoutes sets up all the routes for the application.
// Every route outside the public set requires an authentication.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.securityMiddleware.Authenticate)

	// Public
	e.GET("/", r.identityHandler.Home)
	e.GET("/health", handler.HealthCheck)
	e.GET(middleware.ErrorPath, handler.LoginError)
	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	// Provider login
	loginGroup := e.Group(middleware.LoginPath)
	{
		loginGroup.GET("", r.authHandler.LoginPage)
		loginGroup.GET("/:provider", r.authHandler.Login)
		loginGroup.GET("/:provider/callback", r.authHandler.Callback)
	}

	// Authenticated
	e.GET("/:provider/complete", r.identityHandler.Complete)
	e.GET("/me", r.identityHandler.Me)
	e.GET("/logout", r.authHandler.Logout)

	// Provider-only boards
	for _, socialType := range entity.SocialTypes() {
		e.GET("/"+socialType.String(), r.boardHandler.Board(socialType),
			r.securityMiddleware.RequireAuthority(socialType.Authority()))
	}
}
