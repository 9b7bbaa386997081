// Package main is the entry point for the spa-management account API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/spa-management/backend/config"
	"github.com/spa-management/backend/internal/application/usecase/account"
	"github.com/spa-management/backend/internal/infra/db"
	infraredis "github.com/spa-management/backend/internal/infra/redis"
	"github.com/spa-management/backend/internal/infra/server/router"
	"github.com/spa-management/backend/internal/integration/adapters"
	"github.com/spa-management/backend/internal/integration/entrypoint/controller"
	"github.com/spa-management/backend/internal/integration/entrypoint/middleware"
	"github.com/spa-management/backend/internal/integration/persistence"
	"github.com/spa-management/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting spa-management account API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Token configuration is validated eagerly; an invalid JWT section is a
	// fatal startup error, never a per-request one.
	tokenService, err := adapters.NewTokenService(cfg.JWT)
	if err != nil {
		slog.Error("Invalid JWT configuration", "error", err)
		os.Exit(1)
	}

	// Initialize database connection
	var database *db.Database
	var dbHealthChecker func() bool

	database, err = db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		database = nil
		dbHealthChecker = func() bool { return false }
	} else {
		if err := database.AutoMigrate(&model.CustomerModel{}); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Create health controller with database health checker
	healthController := controller.NewHealthController(dbHealthChecker)

	// Create controllers and middleware (only if database is available)
	var accountController *controller.AccountController
	var loginRateLimiter *middleware.RateLimiter
	var authMiddleware *middleware.AuthMiddleware

	if database != nil {
		customerRepo := persistence.NewCustomerRepository(database.DB())
		passwordService := adapters.NewPasswordService()

		registerUseCase := account.NewRegisterCustomerUseCase(customerRepo, passwordService)
		loginUseCase := account.NewLoginCustomerUseCase(customerRepo, passwordService, tokenService)
		getProfileUseCase := account.NewGetProfileUseCase(customerRepo)
		updateProfileUseCase := account.NewUpdateProfileUseCase(customerRepo)

		accountController = controller.NewAccountController(
			registerUseCase,
			loginUseCase,
			getProfileUseCase,
			updateProfileUseCase,
		)

		// Login rate limiting: shared counters in Redis when available,
		// per-process fallback otherwise.
		if redisClient, err := infraredis.NewClient(&cfg.Redis); err != nil {
			slog.Warn("Redis connection failed, using in-memory rate limiter",
				"error", err,
			)
			loginRateLimiter = middleware.NewRateLimiter()
		} else {
			loginRateLimiter = middleware.NewRedisRateLimiter(redisClient, 5, time.Minute)
			defer func() {
				if err := redisClient.Close(); err != nil {
					slog.Error("Failed to close Redis connection", "error", err)
				}
			}()
		}

		authMiddleware = middleware.NewAuthMiddleware(tokenService)

		slog.Info("Account system initialized successfully")
	} else {
		slog.Warn("Account system not initialized due to missing database connection")
	}

	// Setup router
	r := router.NewRouter(healthController, accountController, loginRateLimiter, authMiddleware)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
