package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/handler"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/middleware"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/service"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	AuthHandler        *handler.AuthHandler
	VehicleHandler     *handler.VehicleHandler
	DriverHandler      *handler.DriverHandler
	TripHandler        *handler.TripHandler
	MaintenanceHandler *handler.MaintenanceHandler
	ExpenseHandler     *handler.ExpenseHandler
	DashboardHandler   *handler.DashboardHandler
	AuthService        *service.AuthService
	RedisClient        *redis.Client
	NewRelicApp        *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Auth routes are open; everything else requires a token.
		auth := v1.Group("/auth")
		{
			auth.POST("/register", deps.AuthHandler.Register)
			auth.POST("/login", deps.AuthHandler.Login)
			auth.GET("/me", deps.AuthHandler.Me)
		}

		authed := v1.Group("")
		authed.Use(middleware.AuthMiddleware(deps.AuthService))

		// Vehicle routes.
		vehicles := authed.Group("/vehicles")
		{
			vehicles.POST("", deps.VehicleHandler.Register)
			vehicles.GET("", deps.VehicleHandler.GetAll)
			vehicles.GET("/:id", deps.VehicleHandler.Get)
			vehicles.PUT("/:id", deps.VehicleHandler.Update)
			vehicles.DELETE("/:id", deps.VehicleHandler.Delete)
		}

		// Driver routes.
		drivers := authed.Group("/drivers")
		{
			drivers.POST("", deps.DriverHandler.Register)
			drivers.GET("", deps.DriverHandler.GetAll)
			drivers.GET("/:id", deps.DriverHandler.Get)
			drivers.PUT("/:id", deps.DriverHandler.Update)
			drivers.DELETE("/:id", deps.DriverHandler.Delete)
		}

		// Trip dispatch routes.
		trips := authed.Group("/trips")
		{
			trips.POST("", deps.TripHandler.Create)
			trips.GET("", deps.TripHandler.GetAll)
			trips.GET("/:id", deps.TripHandler.Get)
			trips.PUT("/:id/status", deps.TripHandler.SetStatus)
		}

		// Maintenance routes.
		maintenance := authed.Group("/maintenance")
		{
			maintenance.POST("", deps.MaintenanceHandler.Open)
			maintenance.GET("", deps.MaintenanceHandler.GetAll)
			maintenance.GET("/:id", deps.MaintenanceHandler.Get)
			maintenance.PUT("/:id", deps.MaintenanceHandler.Resolve)
			maintenance.DELETE("/:id", deps.MaintenanceHandler.Delete)
		}

		// Expense routes.
		expenses := authed.Group("/expenses")
		{
			expenses.POST("", deps.ExpenseHandler.Record)
			expenses.GET("", deps.ExpenseHandler.Find)
			expenses.GET("/summary/:vehicle_id", deps.ExpenseHandler.Summary)
			expenses.GET("/:id", deps.ExpenseHandler.Get)
		}

		// Dashboard routes.
		dashboard := authed.Group("/dashboard")
		{
			dashboard.GET("", deps.DashboardHandler.Overview)
			dashboard.GET("/analytics", deps.DashboardHandler.Analytics)
			dashboard.GET("/fuel-efficiency", deps.DashboardHandler.FuelEfficiency)
			dashboard.GET("/monthly-summary", deps.DashboardHandler.MonthlySummary)
		}
	}

	return router
}
