package routes

import (
	"context"

	"oilwell-reports/internal/adapters/http/handlers"
	"oilwell-reports/internal/adapters/http/middleware"
	"oilwell-reports/internal/adapters/persistence/repositories"
	"oilwell-reports/internal/config"
	"oilwell-reports/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// TokenService issues and verifies access tokens. *jwt.Service implements it.
type TokenService interface {
	services.TokenIssuer
	middleware.TokenVerifier
}

// Repositories groups the stores the routes are built on
type Repositories struct {
	Users   repositories.UserRepository
	Wells   repositories.WellRepository
	Reports repositories.ReportRepository
}

// Options carries the remaining route dependencies
type Options struct {
	Mode    string
	CheckDB func(ctx context.Context) error
	Log     zerolog.Logger
}

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, tokens TokenService, log zerolog.Logger) {
	repos := Repositories{
		Users:   repositories.NewUserRepository(db),
		Wells:   repositories.NewWellRepository(db),
		Reports: repositories.NewReportRepository(db),
	}

	Mount(app, repos, tokens, Options{
		Mode: cfg.AppMode,
		CheckDB: func(ctx context.Context) error {
			return config.HealthCheck(ctx, db)
		},
		Log: log,
	})
}

// Mount wires services and handlers over the given repositories and
// registers every route.
func Mount(app *fiber.App, repos Repositories, tokens TokenService, opts Options) {
	log := opts.Log

	// Initialize services
	authService := services.NewAuthService(repos.Users, tokens, log)
	wellService := services.NewWellService(repos.Wells, log)
	reportService := services.NewReportService(repos.Reports, log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(opts.Mode, opts.CheckDB, log)
	authHandler := handlers.NewAuthHandler(authService, log)
	wellHandler := handlers.NewWellHandler(wellService, log)
	reportHandler := handlers.NewReportHandler(reportService, log)

	authenticated := middleware.AuthMiddleware(tokens, log)
	adminOnly := middleware.AdminOnly(tokens, log)
	operatorOnly := middleware.OperatorOnly(tokens, log)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Auth
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)
	app.Get("/me", authenticated, authHandler.Me)

	// Reports
	app.Post("/reports", operatorOnly, reportHandler.Create)
	app.Get("/reports", authenticated, reportHandler.List)
	app.Delete("/reports/:id", adminOnly, reportHandler.Delete)

	// Wells
	app.Post("/wells", adminOnly, wellHandler.Create)
	app.Get("/wells", authenticated, wellHandler.List)
	app.Delete("/wells/:id", adminOnly, wellHandler.Delete)
}
