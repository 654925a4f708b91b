package handlers

import (
	"strconv"

	"oilwell-reports/internal/adapters/http/middleware"
	"oilwell-reports/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

const msgAllFieldsRequired = "All fields are required."

// parseID reads a positive integer path parameter
func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// storageError logs the cause and answers with a generic 500
func storageError(c *fiber.Ctx, log zerolog.Logger, err error, message string) error {
	log.Error().
		Err(err).
		Str("request_id", middleware.RequestID(c)).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("❌ " + message)
	return response.InternalServerError(c, message)
}
