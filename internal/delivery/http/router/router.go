// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bizdir/internal/delivery/http/middleware"
	"bizdir/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler        *handler.UserHandler
	BusinessHandler    *handler.BusinessHandler
	ReviewHandler      *handler.ReviewHandler
	DealHandler        *handler.DealHandler
	ImageHandler       *handler.ImageHandler
	IdentityMiddleware *middleware.IdentityMiddleware
	RequestIDMW        *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler        *handler.UserHandler
	businessHandler    *handler.BusinessHandler
	reviewHandler      *handler.ReviewHandler
	dealHandler        *handler.DealHandler
	imageHandler       *handler.ImageHandler
	identityMiddleware *middleware.IdentityMiddleware
	requestIDMW        *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:        params.UserHandler,
		businessHandler:    params.BusinessHandler,
		reviewHandler:      params.ReviewHandler,
		dealHandler:        params.DealHandler,
		imageHandler:       params.ImageHandler,
		identityMiddleware: params.IdentityMiddleware,
		requestIDMW:        params.RequestIDMW,
	}
}

// RegisterRoutes sets up all the API routes for the application. Identity
// resolution runs on every route; whether anonymous is acceptable is decided
// per operation, not per route group.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMW.Process)
	e.Use(r.identityMiddleware.Resolve)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Account routes
	userGroup := e.Group("/users")
	{
		userGroup.GET("/:username", r.userHandler.GetProfile)
		userGroup.PATCH("/:id", r.userHandler.UpdateDetails)
		userGroup.DELETE("/:id", r.userHandler.DeleteAccount)
	}

	// Directory routes
	businessGroup := e.Group("/business")
	{
		businessGroup.GET("", r.businessHandler.List)
		businessGroup.POST("", r.businessHandler.Create)
		businessGroup.GET("/:id", r.businessHandler.Get)
		businessGroup.PATCH("/:id", r.businessHandler.Update)
		businessGroup.DELETE("/:id", r.businessHandler.Delete)
		businessGroup.GET("/:id/qr", r.businessHandler.QR)
		businessGroup.GET("/:id/reviews", r.reviewHandler.ListByBusiness)
		businessGroup.GET("/:id/deals", r.dealHandler.ListByBusiness)
	}

	// Review routes
	reviewGroup := e.Group("/reviews")
	{
		reviewGroup.POST("", r.reviewHandler.Create)
		reviewGroup.PATCH("/:id", r.reviewHandler.Update)
		reviewGroup.DELETE("/:id", r.reviewHandler.Delete)
	}

	// Image uploads
	e.POST("/images", r.imageHandler.Upload)

	// Deal routes
	dealGroup := e.Group("/deals")
	{
		dealGroup.POST("", r.dealHandler.Create)
		dealGroup.PATCH("/:id", r.dealHandler.Update)
		dealGroup.DELETE("/:id", r.dealHandler.Delete)
	}
}
