// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"reflourish/internal/delivery/http/middleware"
	"reflourish/internal/delivery/http/router/handler"
	"reflourish/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	PackageHandler   *handler.PackageHandler
	LedgerHandler    *handler.LedgerHandler
	VolunteerHandler *handler.VolunteerHandler
	MetricsHandler   *handler.MetricsHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	packageHandler   *handler.PackageHandler
	ledgerHandler    *handler.LedgerHandler
	volunteerHandler *handler.VolunteerHandler
	metricsHandler   *handler.MetricsHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		packageHandler:   params.PackageHandler,
		ledgerHandler:    params.LedgerHandler,
		volunteerHandler: params.VolunteerHandler,
		metricsHandler:   params.MetricsHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes; each registration endpoint fixes the account's role.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/store", r.userHandler.RegisterStore)
		authGroup.POST("/register/volunteer", r.userHandler.RegisterVolunteer)
		authGroup.POST("/register/foodbank", r.userHandler.RegisterFoodBank)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
	}

	// Package lifecycle routes
	packageGroup := e.Group("/packages")
	packageGroup.Use(r.authMiddleware.Authenticate)
	{
		packageGroup.POST("", r.packageHandler.Create, r.authMiddleware.RequireRole(string(entity.RoleStore)))
		packageGroup.GET("/available", r.packageHandler.ListAvailable, r.authMiddleware.RequireRole(string(entity.RoleVolunteer)))
		packageGroup.GET("/mine", r.packageHandler.ListMine)
		packageGroup.GET("/:id", r.packageHandler.Get)
		packageGroup.GET("/:id/qr", r.packageHandler.HandoffQR)
		packageGroup.POST("/:id/claim", r.packageHandler.Claim, r.authMiddleware.RequireRole(string(entity.RoleVolunteer)))
		packageGroup.POST("/:id/pickup", r.packageHandler.ConfirmPickup, r.authMiddleware.RequireRole(string(entity.RoleVolunteer)))
		packageGroup.POST("/:id/delivery", r.packageHandler.ConfirmDelivery, r.authMiddleware.RequireRole(string(entity.RoleFoodBank)))
		packageGroup.POST("/delivery/scan", r.packageHandler.ConfirmDeliveryScan, r.authMiddleware.RequireRole(string(entity.RoleFoodBank)))
		packageGroup.DELETE("/:id", r.packageHandler.Cancel, r.authMiddleware.RequireRole(string(entity.RoleStore)))
	}

	// Ledger routes (volunteer incentive account)
	ledgerGroup := e.Group("/ledger")
	ledgerGroup.Use(r.authMiddleware.Authenticate)
	{
		ledgerGroup.GET("/balance", r.ledgerHandler.GetBalance)
		ledgerGroup.GET("/history", r.ledgerHandler.GetHistory)
	}

	// Reward catalog and redemption routes
	rewardGroup := e.Group("/rewards")
	rewardGroup.Use(r.authMiddleware.Authenticate)
	{
		rewardGroup.GET("", r.ledgerHandler.ListRewards)
		rewardGroup.GET("/redemptions", r.ledgerHandler.GetRedemptions)
		rewardGroup.POST("/:id/redeem", r.ledgerHandler.Redeem, r.authMiddleware.RequireRole(string(entity.RoleVolunteer)))
	}

	// Volunteer aggregate views
	volunteerGroup := e.Group("/volunteers")
	volunteerGroup.Use(r.authMiddleware.Authenticate)
	{
		volunteerGroup.GET("/leaderboard", r.volunteerHandler.Leaderboard)
		volunteerGroup.GET("/stats", r.volunteerHandler.Stats, r.authMiddleware.RequireRole(string(entity.RoleVolunteer)))
	}

	// Operational metrics; rollups are triggered externally, never by an
	// in-process scheduler.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(string(entity.RoleFoodBank)))
	{
		adminGroup.POST("/metrics/rollup", r.metricsHandler.RunRollup)
		adminGroup.GET("/metrics", r.metricsHandler.GetRollups)
		adminGroup.GET("/insights/weekly", r.metricsHandler.WeeklyInsight)
	}
}
