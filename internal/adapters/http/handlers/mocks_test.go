package handlers

import (
	"context"

	"oilwell-reports/internal/adapters/persistence/models"
	"oilwell-reports/internal/core/services"
	"oilwell-reports/internal/pkg/pagination"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, input *services.RegisterInput) (*models.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, input *services.LoginInput) (*services.LoginResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.LoginResult), args.Error(1)
}

func (m *MockAuthService) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockWellService struct {
	mock.Mock
}

func (m *MockWellService) Create(ctx context.Context, input *services.CreateWellInput) (*models.Well, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Well), args.Error(1)
}

func (m *MockWellService) List(ctx context.Context) ([]*models.Well, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Well), args.Error(1)
}

func (m *MockWellService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Create(ctx context.Context, input *services.CreateReportInput, createdBy uint) (*models.Report, error) {
	args := m.Called(ctx, input, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func (m *MockReportService) List(ctx context.Context, params *pagination.Params) (*pagination.Page[models.ReportResponse], error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[models.ReportResponse]), args.Error(1)
}

func (m *MockReportService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
