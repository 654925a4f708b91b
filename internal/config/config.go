package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// DigestDisabled turns the daily digest job off when used as DIGEST_CRON
const DigestDisabled = "off"

// Config holds all configuration for the application.
// It is loaded once at startup and treated as read-only afterwards.
type Config struct {
	AppMode        string
	Port           string
	EnvFileLoaded  bool
	AllowedOrigins string
	Database       DatabaseConfig
	JWT            JWTConfig
	Digest         DigestConfig
	Seed           SeedConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds the token signing secret
type JWTConfig struct {
	Secret string
}

// DigestConfig holds the report digest schedule (standard 5-field cron)
type DigestConfig struct {
	Schedule string
}

// SeedConfig holds the optional bootstrap admin credentials
type SeedConfig struct {
	AdminUsername string
	AdminPassword string
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Missing .env is fine: production passes plain environment variables
	envLoaded := godotenv.Load() == nil

	// Trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	jwtCfg, err := loadJWTConfig(appMode)
	if err != nil {
		return nil, err
	}

	digestCfg, err := loadDigestConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		AppMode:        appMode,
		Port:           getEnv("PORT", "5000"),
		EnvFileLoaded:  envLoaded,
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", ""),
		Database:       loadDatabaseConfig(appMode),
		JWT:            jwtCfg,
		Digest:         digestCfg,
		Seed: SeedConfig{
			AdminUsername: os.Getenv("SEED_ADMIN_USERNAME"),
			AdminPassword: os.Getenv("SEED_ADMIN_PASSWORD"),
		},
	}, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := modePrefix(mode)

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "oilwells"),
	}
}

// loadJWTConfig loads the signing secret. Production has no fallback.
func loadJWTConfig(mode string) (JWTConfig, error) {
	key := modePrefix(mode) + "JWT_SECRET"
	if mode == "prod" {
		secret := os.Getenv(key)
		if secret == "" {
			return JWTConfig{}, errors.New(key + " is required in prod mode")
		}
		return JWTConfig{Secret: secret}, nil
	}
	return JWTConfig{Secret: getEnv(key, "secret_key")}, nil
}

// loadDigestConfig rejects a malformed schedule at startup, before any
// connection is opened
func loadDigestConfig() (DigestConfig, error) {
	schedule := strings.TrimSpace(getEnv("DIGEST_CRON", "0 6 * * *"))
	if schedule != DigestDisabled {
		if _, err := cron.ParseStandard(schedule); err != nil {
			return DigestConfig{}, fmt.Errorf("invalid DIGEST_CRON %q: %w", schedule, err)
		}
	}
	return DigestConfig{Schedule: schedule}, nil
}

func modePrefix(mode string) string {
	if mode == "prod" {
		return "PROD_"
	}
	return "DEV_"
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// DigestEnabled reports whether the digest job should be scheduled
func (c *Config) DigestEnabled() bool {
	return c.Digest.Schedule != "" && c.Digest.Schedule != DigestDisabled
}

// SeedAdminEnabled reports whether bootstrap admin credentials were supplied
func (c *Config) SeedAdminEnabled() bool {
	return c.Seed.AdminUsername != "" && c.Seed.AdminPassword != ""
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	if c.AllowedOrigins == "" {
		if c.IsDev() {
			return "*"
		}
		return "http://localhost:3000"
	}
	return c.AllowedOrigins
}
