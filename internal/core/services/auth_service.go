package services

import (
	"context"
	"errors"
	"fmt"

	"oilwell-reports/internal/adapters/persistence/models"
	"oilwell-reports/internal/adapters/persistence/repositories"
	"oilwell-reports/internal/core/domain"
	"oilwell-reports/internal/pkg/password"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// AuthService handles registration and login
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   TokenIssuer
	log      zerolog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, tokens TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		log:      log,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Username string
	Password string
	Role     string
}

// LoginInput represents login input
type LoginInput struct {
	Username string
	Password string
}

// LoginResult is returned on successful login
type LoginResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Register stores a new user with a hashed password. Any role string is
// accepted and usernames are not checked for uniqueness.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*models.User, error) {
	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username: input.Username,
		Password: hashed,
		Role:     input.Role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info().Uint("user_id", user.ID).Str("username", user.Username).Str("role", user.Role).
		Msg("✅ User registered")
	return user, nil
}

// Login authenticates a user and issues a token. Unknown usernames and
// wrong passwords both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !password.Verify(input.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info().Uint("user_id", user.ID).Str("username", user.Username).Msg("✅ User logged in")

	return &LoginResult{Token: token, Role: user.Role}, nil
}

// GetUserByID gets a user by ID
func (s *AuthService) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
