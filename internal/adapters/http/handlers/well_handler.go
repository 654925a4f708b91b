package handlers

import (
	"errors"
	"strings"

	"oilwell-reports/internal/core/domain"
	"oilwell-reports/internal/core/services"
	"oilwell-reports/internal/pkg/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// WellHandler handles well endpoints
type WellHandler struct {
	wellService WellService
	log         zerolog.Logger
}

// NewWellHandler creates a new well handler
func NewWellHandler(wellService WellService, log zerolog.Logger) *WellHandler {
	return &WellHandler{wellService: wellService, log: log}
}

// CreateWellRequest represents create well request
type CreateWellRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

func (r CreateWellRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Location, validation.Required),
	)
}

// Create creates a new well
// @Summary Create well
// @Description Create a new well (admin only)
// @Tags Wells
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateWellRequest true "Well data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /wells [post]
func (h *WellHandler) Create(c *fiber.Ctx) error {
	var req CreateWellRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Location = strings.TrimSpace(req.Location)

	if err := req.Validate(); err != nil {
		return response.BadRequest(c, msgAllFieldsRequired)
	}

	well, err := h.wellService.Create(c.UserContext(), &services.CreateWellInput{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		return storageError(c, h.log, err, "Error creating well")
	}

	return response.Created(c, "Well created", well)
}

// List lists all wells
// @Summary List wells
// @Description Get every well, unpaginated
// @Tags Wells
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Well
// @Failure 401 {object} response.Response
// @Router /wells [get]
func (h *WellHandler) List(c *fiber.Ctx) error {
	wells, err := h.wellService.List(c.UserContext())
	if err != nil {
		return storageError(c, h.log, err, "Error fetching wells")
	}
	return c.JSON(wells)
}

// Delete deletes a well
// @Summary Delete well
// @Description Delete a well by ID (admin only). Reports filed against it are kept.
// @Tags Wells
// @Produce json
// @Security BearerAuth
// @Param id path int true "Well ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /wells/{id} [delete]
func (h *WellHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.wellService.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Well not found.")
		}
		return storageError(c, h.log, err, "Error deleting well")
	}

	return response.Success(c, "Well deleted", nil)
}
