package config

import (
	"context"
	"fmt"

	"oilwell-reports/internal/adapters/persistence/models"
	"oilwell-reports/internal/core/domain"
	"oilwell-reports/internal/pkg/password"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, log zerolog.Logger) *Seeder {
	return &Seeder{db: db, log: log}
}

// Run executes all seeders
func (s *Seeder) Run(ctx context.Context, cfg *Config) error {
	if !cfg.SeedAdminEnabled() {
		return nil
	}

	created, err := s.SeedAdminUser(ctx, cfg.Seed.AdminUsername, cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	if created {
		s.log.Info().Str("username", cfg.Seed.AdminUsername).Msg("✅ Admin user created")
	}
	return nil
}

// SeedAdminUser creates an admin account unless one already exists.
// It reports whether a user was created.
func (s *Seeder) SeedAdminUser(ctx context.Context, username, plain string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("role = ?", string(domain.RoleAdmin)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	hashed, err := password.Hash(plain)
	if err != nil {
		return false, err
	}

	admin := &models.User{
		Username: username,
		Password: hashed,
		Role:     string(domain.RoleAdmin),
	}
	if err := s.db.WithContext(ctx).Create(admin).Error; err != nil {
		return false, err
	}
	return true, nil
}
