package handlers

import (
	"context"

	"oilwell-reports/internal/adapters/persistence/models"
	"oilwell-reports/internal/core/services"
	"oilwell-reports/internal/pkg/pagination"
)

// AuthService is implemented by *services.AuthService
type AuthService interface {
	Register(ctx context.Context, input *services.RegisterInput) (*models.User, error)
	Login(ctx context.Context, input *services.LoginInput) (*services.LoginResult, error)
	GetUserByID(ctx context.Context, userID uint) (*models.User, error)
}

// WellService is implemented by *services.WellService
type WellService interface {
	Create(ctx context.Context, input *services.CreateWellInput) (*models.Well, error)
	List(ctx context.Context) ([]*models.Well, error)
	Delete(ctx context.Context, id uint) error
}

// ReportService is implemented by *services.ReportService
type ReportService interface {
	Create(ctx context.Context, input *services.CreateReportInput, createdBy uint) (*models.Report, error)
	List(ctx context.Context, params *pagination.Params) (*pagination.Page[models.ReportResponse], error)
	Delete(ctx context.Context, id uint) error
}
