package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	domainerrors "recipebox/internal/domain/errors"
)

// Minimum length of the instructions text, in characters.
const minInstructionsLength = 50

// Recipe is a cooking recipe owned by exactly one user.
type Recipe struct {
	ID                uuid.UUID
	Title             string
	Instructions      string
	MinutesToComplete int
	UserID            uuid.UUID // Owning user, required.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewRecipe validates the field values and constructs a Recipe. Validation
// runs here, at construction time, so an invalid recipe never reaches the
// persistence layer. The presence check on instructions takes precedence
// over the length check.
func NewRecipe(title, instructions string, minutesToComplete int, userID uuid.UUID) (*Recipe, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	if err := ValidateInstructions(instructions); err != nil {
		return nil, err
	}

	return &Recipe{
		Title:             title,
		Instructions:      instructions,
		MinutesToComplete: minutesToComplete,
		UserID:            userID,
	}, nil
}

// ValidateTitle rejects empty or all-whitespace titles.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return domainerrors.NewValidationError("Title must be present.")
	}

	return nil
}

// ValidateInstructions rejects empty or all-whitespace instructions, then
// instructions shorter than the minimum length.
func ValidateInstructions(instructions string) error {
	if strings.TrimSpace(instructions) == "" {
		return domainerrors.NewValidationError("Instructions must be present.")
	}
	if len([]rune(instructions)) < minInstructionsLength {
		return domainerrors.NewValidationError("Instructions must be at least 50 characters long.")
	}

	return nil
}
