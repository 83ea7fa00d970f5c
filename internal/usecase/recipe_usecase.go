package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CreateRecipeInput carries the validated recipe creation payload.
type CreateRecipeInput struct {
	Title             string
	Instructions      string
	MinutesToComplete int
}

// RecipeOutput is the serialized form of a recipe.
type RecipeOutput struct {
	ID                uuid.UUID `json:"id"`
	Title             string    `json:"title"`
	Instructions      string    `json:"instructions"`
	MinutesToComplete int       `json:"minutes_to_complete"`
	UserID            uuid.UUID `json:"user_id"`
}

// RecipeUsecase defines the recipe operations. Both operations require the
// caller to pass the authenticated user's id from the session.
type RecipeUsecase interface {
	// ListForUser returns all recipes owned by the user. Returns the
	// user-not-found error when the user no longer exists.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*RecipeOutput, error)

	// Create validates and persists a new recipe for the user. Every
	// failure mode collapses into the generic invalid-recipe error.
	Create(ctx context.Context, userID uuid.UUID, input *CreateRecipeInput) (*RecipeOutput, error)
}
