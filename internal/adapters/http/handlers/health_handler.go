package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	mode    string
	checkDB func(ctx context.Context) error
	log     zerolog.Logger
}

// NewHealthHandler creates a new health handler. checkDB pings the store.
func NewHealthHandler(mode string, checkDB func(ctx context.Context) error, log zerolog.Logger) *HealthHandler {
	return &HealthHandler{mode: mode, checkDB: checkDB, log: log}
}

// Root handles root endpoint
// @Summary Root endpoint
// @Description Returns API status
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "running",
		"message": "🛢️ Oil Well Reports API is running",
		"mode":    h.mode,
		"docs":    "/swagger/index.html",
	})
}

// HealthCheck handles health check
// @Summary Health check
// @Description Check API and database health
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	status := fiber.StatusOK
	dbStatus := "healthy"
	if err := h.checkDB(c.UserContext()); err != nil {
		h.log.Warn().Err(err).Msg("⚠️ Database health check failed")
		dbStatus = "unhealthy"
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status": "ok",
		"checks": fiber.Map{
			"api":      "healthy",
			"database": dbStatus,
		},
	})
}
