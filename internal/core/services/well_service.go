package services

import (
	"context"
	"fmt"

	"oilwell-reports/internal/adapters/persistence/models"
	"oilwell-reports/internal/adapters/persistence/repositories"
	"oilwell-reports/internal/core/domain"

	"github.com/rs/zerolog"
)

// WellService manages wells
type WellService struct {
	wellRepo repositories.WellRepository
	log      zerolog.Logger
}

// NewWellService creates a new well service
func NewWellService(wellRepo repositories.WellRepository, log zerolog.Logger) *WellService {
	return &WellService{wellRepo: wellRepo, log: log}
}

// Create creates a new well
func (s *WellService) Create(ctx context.Context, input *CreateWellInput) (*models.Well, error) {
	well := &models.Well{
		Name:     input.Name,
		Location: input.Location,
	}
	if err := s.wellRepo.Create(ctx, well); err != nil {
		return nil, fmt.Errorf("create well: %w", err)
	}

	s.log.Info().Uint("well_id", well.ID).Str("name", well.Name).Msg("✅ Well created")
	return well, nil
}

// List returns every well, unpaginated
func (s *WellService) List(ctx context.Context) ([]*models.Well, error) {
	wells, err := s.wellRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list wells: %w", err)
	}
	if wells == nil {
		wells = []*models.Well{}
	}
	return wells, nil
}

// Delete removes a well. Reports filed against it are kept.
func (s *WellService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.wellRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete well: %w", err)
	}
	if !deleted {
		return domain.ErrWellNotFound
	}

	s.log.Info().Uint("well_id", id).Msg("🗑️ Well deleted")
	return nil
}
