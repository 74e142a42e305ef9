// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"loyallink/internal/delivery/http/middleware"
	"loyallink/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BusinessHandler *handler.BusinessHandler
	CustomerHandler *handler.CustomerHandler
	VisitHandler    *handler.VisitHandler
	RewardHandler   *handler.RewardHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	businessHandler *handler.BusinessHandler
	customerHandler *handler.CustomerHandler
	visitHandler    *handler.VisitHandler
	rewardHandler   *handler.RewardHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		businessHandler: params.BusinessHandler,
		customerHandler: params.CustomerHandler,
		visitHandler:    params.VisitHandler,
		rewardHandler:   params.RewardHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.businessHandler.Register)
		authGroup.POST("/login", r.businessHandler.Login)
		authGroup.POST("/refresh", r.businessHandler.Refresh)
		authGroup.POST("/logout", r.businessHandler.Logout)
	}

	// Public routes reached from a customer's phone
	e.POST("/checkin", r.visitHandler.CheckInByQR)
	e.POST("/claim", r.rewardHandler.ClaimRewardPublic)
	e.GET("/claim/:businessID/:code", r.rewardHandler.GetClaimPreview)

	// Business routes that require authentication
	businessGroup := e.Group("/business")
	businessGroup.Use(r.authMiddleware.Authenticate)
	{
		businessGroup.GET("/profile", r.businessHandler.GetProfile)
		businessGroup.PATCH("/settings", r.businessHandler.UpdateSettings)
		businessGroup.GET("/qrcode", r.businessHandler.GetCheckInQR)
		businessGroup.GET("/stats", r.businessHandler.GetStats)

		businessGroup.POST("/customers", r.customerHandler.CreateCustomer)
		businessGroup.GET("/customers", r.customerHandler.ListCustomers)
		businessGroup.GET("/customers/:id", r.customerHandler.GetCustomer)
		businessGroup.GET("/customers/:id/visits", r.customerHandler.GetCustomerVisits)
		businessGroup.POST("/customers/:id/visits", r.visitHandler.RecordVisit)

		businessGroup.POST("/customers/:id/rewards", r.rewardHandler.IssueReward)
		businessGroup.GET("/rewards", r.rewardHandler.ListRewards)
		businessGroup.POST("/rewards/claim", r.rewardHandler.ClaimReward)
	}
}
