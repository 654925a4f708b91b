package repositories

import (
	"context"
	"time"

	"oilwell-reports/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// reportRepository implements ReportRepository interface
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// Create creates a new report
func (r *reportRepository) Create(ctx context.Context, report *models.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// List lists reports with pagination. Count and page are read separately,
// so concurrent writes may shift rows between pages.
func (r *reportRepository) List(ctx context.Context, offset, limit int) ([]*models.Report, int64, error) {
	var reports []*models.Report
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Report{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Creator", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username")
		}).
		Preload("Well", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}

// Delete hard deletes a report
func (r *reportRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Report{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CountByWellSince tallies reports created at or after since, per well.
// Reports whose well was deleted are grouped under an empty name.
func (r *reportRepository) CountByWellSince(ctx context.Context, since time.Time) ([]*WellReportCount, error) {
	var rows []*WellReportCount
	err := r.db.WithContext(ctx).
		Table("reports").
		Select("reports.well_id AS well_id, COALESCE(wells.name, '') AS well_name, COUNT(reports.id) AS report_count").
		Joins("LEFT JOIN wells ON wells.id = reports.well_id").
		Where("reports.created_at >= ?", since).
		Group("reports.well_id, wells.name").
		Order("report_count DESC").
		Scan(&rows).Error
	return rows, err
}
