package repositories

import (
	"context"
	"time"

	"oilwell-reports/internal/adapters/persistence/models"
)

// UserRepository is the credential store
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// WellRepository defines well repository interface
type WellRepository interface {
	Create(ctx context.Context, well *models.Well) error
	List(ctx context.Context) ([]*models.Well, error)
	// Delete reports whether a row was removed
	Delete(ctx context.Context, id uint) (bool, error)
}

// ReportRepository defines report repository interface
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	// List returns one page of reports with creator and well loaded,
	// plus the total number of reports
	List(ctx context.Context, offset, limit int) ([]*models.Report, int64, error)
	// Delete reports whether a row was removed
	Delete(ctx context.Context, id uint) (bool, error)
	CountByWellSince(ctx context.Context, since time.Time) ([]*WellReportCount, error)
}

// WellReportCount is one row of the per-well report tally
type WellReportCount struct {
	WellID      uint
	WellName    string
	ReportCount int64
}
