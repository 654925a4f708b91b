package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"oilwell-reports/internal/adapters/http/middleware"
	"oilwell-reports/internal/adapters/http/routes"
	"oilwell-reports/internal/adapters/persistence/models"
	"oilwell-reports/internal/adapters/persistence/repositories"
	"oilwell-reports/internal/config"
	"oilwell-reports/internal/core/services"
	"oilwell-reports/internal/pkg/jwt"
	"oilwell-reports/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	_ "oilwell-reports/docs" // Swagger docs
)

// @title Oil Well Reports API
// @version 1.0
// @description Operational reports for oil wells, with role-gated access for admins and operators.

// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("dev", os.Stderr)
		bootLog.Fatal().Err(err).Msg("❌ Failed to load configuration")
	}

	log := logger.New(cfg.AppMode, os.Stdout)
	if !cfg.EnvFileLoaded {
		log.Warn().Msg("⚠️ No .env file found, using environment variables")
	}

	tokens, err := jwt.NewService(cfg.JWT.Secret)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to create token service")
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to connect to database")
	}
	defer func() {
		if err := config.CloseDatabase(db); err != nil {
			log.Error().Err(err).Msg("❌ Error closing database")
		}
	}()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		_ = config.CloseDatabase(db)
		log.Fatal().Err(err).Msg("❌ Failed to auto migrate")
	}
	log.Info().Msg("✅ Database migration completed")

	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := config.NewSeeder(db, log).Run(seedCtx, cfg); err != nil {
		log.Warn().Err(err).Msg("⚠️ Failed to seed admin user")
	}
	cancel()

	// Report digest
	if cfg.DigestEnabled() {
		digest := services.NewDigestService(repositories.NewReportRepository(db), log)
		if err := digest.Start(cfg.Digest.Schedule); err != nil {
			log.Error().Err(err).Str("schedule", cfg.Digest.Schedule).Msg("❌ Report digest not scheduled")
		} else {
			defer digest.Stop()
		}
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Oil Well Reports API v1.0",
		ErrorHandler: middleware.NewErrorHandler(log),
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, db, cfg, tokens, log)

	// Graceful shutdown
	go gracefulShutdown(app, log)

	// Start server
	log.Info().Str("port", cfg.Port).Str("mode", cfg.AppMode).Msg("🚀 Server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("❌ Failed to start server")
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App, log zerolog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("❌ Error during shutdown")
	}
	log.Info().Msg("✅ Server stopped gracefully")
}
