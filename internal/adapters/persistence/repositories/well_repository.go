package repositories

import (
	"context"

	"oilwell-reports/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

type wellRepository struct {
	db *gorm.DB
}

// NewWellRepository creates a new well repository
func NewWellRepository(db *gorm.DB) WellRepository {
	return &wellRepository{db: db}
}

func (r *wellRepository) Create(ctx context.Context, well *models.Well) error {
	return r.db.WithContext(ctx).Create(well).Error
}

// List lists every well in insertion order
func (r *wellRepository) List(ctx context.Context) ([]*models.Well, error) {
	var wells []*models.Well
	err := r.db.WithContext(ctx).Order("id ASC").Find(&wells).Error
	return wells, err
}

func (r *wellRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Well{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
