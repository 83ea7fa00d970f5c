package repository

import (
	"context"

	"github.com/google/uuid"

	"recipebox/internal/domain/entity"
	"recipebox/internal/errors"
)

// ErrRecipeConstraintViolated indicates the recipe row broke a database
// constraint, e.g. a missing owner or a null required column.
var ErrRecipeConstraintViolated = errors.New("recipe violates a database constraint")

// RecipeRepository defines persistence operations for recipes.
type RecipeRepository interface {
	// Create persists a new recipe owned by an existing user.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// ListByUserID retrieves all recipes owned by the given user.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Recipe, error)
}
