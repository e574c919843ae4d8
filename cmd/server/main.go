package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/app"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/config"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/handler"
	internalRedis "github.com/Developer123-Aksh/fleetflow-x-odoo/internal/redis"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/repository/postgres"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic first so the database can be instrumented.
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s", cfg.NewRelic.AppName)
		}
	}

	// Initialize database with New Relic instrumentation.
	db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to PostgreSQL")

	// Initialize Redis with New Relic instrumentation.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	// Wire dependencies.
	server := wireServer(db, redisClient, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Initialize Redis stores.
	lockStore := internalRedis.NewLockStore(redisClient)
	cacheStore := internalRedis.NewCacheStore(redisClient)

	// Initialize repositories.
	vehicleRepo := postgres.NewVehicleRepository(db)
	driverRepo := postgres.NewDriverRepository(db)
	tripRepo := postgres.NewTripRepository(db)
	maintenanceRepo := postgres.NewMaintenanceRepository(db)
	expenseRepo := postgres.NewExpenseRepository(db)
	userRepo := postgres.NewUserRepository(db)
	statsRepo := postgres.NewStatsRepository(db)
	txRunner := postgres.NewTxRunner(db)

	// Initialize services.
	authService := service.NewAuthService(userRepo, cfg.Auth.JWTSecret)
	fleetService := service.NewFleetService(vehicleRepo, tripRepo, maintenanceRepo)
	driverService := service.NewDriverService(driverRepo)
	dispatchService := service.NewDispatchService(txRunner, tripRepo, lockStore)
	maintenanceService := service.NewMaintenanceService(txRunner, maintenanceRepo)
	expenseService := service.NewExpenseService(expenseRepo, vehicleRepo)
	dashboardService := service.NewDashboardService(statsRepo, driverRepo, cacheStore)

	// Initialize handlers.
	authHandler := handler.NewAuthHandler(authService)
	vehicleHandler := handler.NewVehicleHandler(fleetService)
	driverHandler := handler.NewDriverHandler(driverService)
	tripHandler := handler.NewTripHandler(dispatchService)
	maintenanceHandler := handler.NewMaintenanceHandler(maintenanceService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		AuthHandler:        authHandler,
		VehicleHandler:     vehicleHandler,
		DriverHandler:      driverHandler,
		TripHandler:        tripHandler,
		MaintenanceHandler: maintenanceHandler,
		ExpenseHandler:     expenseHandler,
		DashboardHandler:   dashboardHandler,
		AuthService:        authService,
		RedisClient:        redisClient,
		NewRelicApp:        nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
