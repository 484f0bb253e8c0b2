package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/go-redsync/redsync/v4"
	goredis "github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/lostfound-vn/backend/internal/config"
	"github.com/lostfound-vn/backend/internal/database"
	"github.com/lostfound-vn/backend/internal/handlers"
	"github.com/lostfound-vn/backend/internal/logging"
	"github.com/lostfound-vn/backend/internal/middleware"
	"github.com/lostfound-vn/backend/internal/notify"
	"github.com/lostfound-vn/backend/internal/routes"
	"github.com/lostfound-vn/backend/internal/scheduler"
	"github.com/lostfound-vn/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	// Missing .env is fine; real env vars win either way.
	_ = godotenv.Load()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	if err := database.SeedPackages(); err != nil {
		slog.Error("package seeding failed", "error", err)
		os.Exit(1)
	}

	// Redis-backed locks (purchase serialization, sweep overlap guards)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	locker := services.NewLocker(redsync.New(goredis.NewPool(rdb)))

	// Services
	notifier := notify.NewLogNotifier()
	catalogService := services.NewCatalogService(database.DB)
	subscriptionService := services.NewSubscriptionService(database.DB, locker)
	boostService := services.NewBoostService(database.DB, locker, cfg.BoostBaseRate)
	postService := services.NewPostService(database.DB, subscriptionService, notifier)
	moderationService := services.NewModerationService(database.DB, notifier)
	listingService := services.NewListingService(database.DB)
	statsService := services.NewStatsService(database.DB)
	reconcilerService := services.NewReconcilerService(database.DB, locker, notifier)

	// Handlers
	healthHandler := handlers.NewHealthHandler()
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	postHandler := handlers.NewPostHandler(postService, subscriptionService, boostService, listingService, statsService)
	moderationHandler := handlers.NewModerationHandler(moderationService)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Reconciler sweeps on their wall-clock schedules
	cronScheduler, err := scheduler.Start(cfg, reconcilerService)
	if err != nil {
		slog.Error("scheduler start failed", "error", err)
		os.Exit(1)
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	routes.Setup(app, cfg, healthHandler, catalogHandler, postHandler, moderationHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	cronScheduler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if err := rdb.Close(); err != nil {
		slog.Error("redis close error", "error", err)
	}

	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
