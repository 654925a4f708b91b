package domain

import (
	"errors"
	"fmt"
)

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Entity errors, all matching ErrNotFound
var (
	ErrUserNotFound   = fmt.Errorf("user not found: %w", ErrNotFound)
	ErrWellNotFound   = fmt.Errorf("well not found: %w", ErrNotFound)
	ErrReportNotFound = fmt.Errorf("report not found: %w", ErrNotFound)
)
