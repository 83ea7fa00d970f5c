// Package repository defines the persistence interfaces consumed by the
// usecase layer, keeping it independent of any specific database driver.
package repository

import (
	"context"

	"github.com/google/uuid"

	"recipebox/internal/domain/entity"
	"recipebox/internal/errors"
)

// Sentinel errors returned by repository implementations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUsername indicates a unique-constraint violation on the
	// username column.
	ErrDuplicateUsername = errors.New("username already taken")
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create persists a new user. Returns ErrDuplicateUsername when the
	// username is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a user by their unique username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}
