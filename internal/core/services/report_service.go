package services

import (
	"context"
	"fmt"

	"oilwell-reports/internal/adapters/persistence/models"
	"oilwell-reports/internal/adapters/persistence/repositories"
	"oilwell-reports/internal/core/domain"
	"oilwell-reports/internal/pkg/pagination"

	"github.com/rs/zerolog"
)

// ReportService manages operational reports
type ReportService struct {
	reportRepo repositories.ReportRepository
	log        zerolog.Logger
}

// NewReportService creates a new report service
func NewReportService(reportRepo repositories.ReportRepository, log zerolog.Logger) *ReportService {
	return &ReportService{reportRepo: reportRepo, log: log}
}

// Create files a report on behalf of createdBy. The well id is stored as
// given; its existence is not checked.
func (s *ReportService) Create(ctx context.Context, input *CreateReportInput, createdBy uint) (*models.Report, error) {
	report := &models.Report{
		Title:       input.Title,
		Content:     input.Content,
		Pressure:    input.Pressure,
		WellStatus:  input.WellStatus,
		Temperature: input.Temperature,
		WellID:      input.WellID,
		CreatedByID: createdBy,
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}

	s.log.Info().
		Uint("report_id", report.ID).
		Uint("well_id", report.WellID).
		Uint("created_by", createdBy).
		Msg("✅ Report added")
	return report, nil
}

// List returns one page of reports with creator and well resolved
func (s *ReportService) List(ctx context.Context, params *pagination.Params) (*pagination.Page[models.ReportResponse], error) {
	reports, total, err := s.reportRepo.List(ctx, params.Offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	items := make([]models.ReportResponse, 0, len(reports))
	for _, r := range reports {
		items = append(items, *r.ToResponse())
	}

	return pagination.NewPage(items, params, total), nil
}

// Delete removes a report
func (s *ReportService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.reportRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if !deleted {
		return domain.ErrReportNotFound
	}

	s.log.Info().Uint("report_id", id).Msg("🗑️ Report deleted")
	return nil
}
