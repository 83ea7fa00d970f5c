// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"recipebox/internal/delivery/http/middleware"
	"recipebox/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	RecipeHandler       *handler.RecipeHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	recipeHandler       *handler.RecipeHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		recipeHandler:       params.RecipeHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account and session endpoints
	e.POST("/signup", r.authHandler.Signup)
	e.POST("/login", r.authHandler.Login)
	e.GET("/check_session", r.authHandler.CheckSession)
	e.DELETE("/logout", r.authHandler.Logout, r.authMiddleware.RequireSession)

	// Recipe endpoints, session required
	recipeGroup := e.Group("/recipes")
	recipeGroup.Use(r.authMiddleware.RequireSession)
	{
		recipeGroup.GET("", r.recipeHandler.List)
		recipeGroup.POST("", r.recipeHandler.Create)
	}
}
