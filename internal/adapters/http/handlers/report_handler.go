package handlers

import (
	"errors"

	"oilwell-reports/internal/adapters/http/middleware"
	"oilwell-reports/internal/core/domain"
	"oilwell-reports/internal/core/services"
	"oilwell-reports/internal/pkg/pagination"
	"oilwell-reports/internal/pkg/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// ReportHandler handles report endpoints
type ReportHandler struct {
	reportService ReportService
	log           zerolog.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService ReportService, log zerolog.Logger) *ReportHandler {
	return &ReportHandler{reportService: reportService, log: log}
}

// CreateReportRequest represents create report request.
// Zero readings count as missing.
type CreateReportRequest struct {
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	Pressure    float64 `json:"pressure"`
	WellStatus  string  `json:"wellStatus"`
	Temperature float64 `json:"temperature"`
	Well        uint    `json:"well"`
}

func (r CreateReportRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Pressure, validation.Required),
		validation.Field(&r.WellStatus, validation.Required),
		validation.Field(&r.Temperature, validation.Required),
		validation.Field(&r.Well, validation.Required),
	)
}

// Create files a report
// @Summary Create report
// @Description File an operational report for a well (operator only)
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateReportRequest true "Report data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /reports [post]
func (h *ReportHandler) Create(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return response.BadRequest(c, msgAllFieldsRequired)
	}

	report, err := h.reportService.Create(c.UserContext(), &services.CreateReportInput{
		Title:       req.Title,
		Content:     req.Content,
		Pressure:    req.Pressure,
		WellStatus:  req.WellStatus,
		Temperature: req.Temperature,
		WellID:      req.Well,
	}, identity.UserID)
	if err != nil {
		return storageError(c, h.log, err, "Error adding report")
	}

	return response.Created(c, "Report added", fiber.Map{"id": report.ID})
}

// List lists reports page by page
// @Summary List reports
// @Description Paginated reports with author username and well name resolved
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(4)
// @Success 200 {object} pagination.Page[models.ReportResponse]
// @Failure 401 {object} response.Response
// @Router /reports [get]
func (h *ReportHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	page, err := h.reportService.List(c.UserContext(), params)
	if err != nil {
		return storageError(c, h.log, err, "Error fetching reports")
	}
	return c.JSON(page)
}

// Delete deletes a report
// @Summary Delete report
// @Description Delete a report by ID (admin only)
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reports/{id} [delete]
func (h *ReportHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.reportService.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Report not found.")
		}
		return storageError(c, h.log, err, "Error deleting report")
	}

	return response.Success(c, "Report deleted", nil)
}
