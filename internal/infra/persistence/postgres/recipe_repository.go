package postgres

import (
	"context"

	"recipebox/internal/domain/entity"
	"recipebox/internal/domain/repository"
	"recipebox/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recipeRepository implements the repository.RecipeRepository interface using GORM.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// Create persists a new recipe. Constraint violations (missing owner, null
// required columns) are translated to repository.ErrRecipeConstraintViolated.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).Create(recipeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) || isNotNullConstraintViolation(err) || isUniqueConstraintViolation(err) {
			return repository.ErrRecipeConstraintViolated
		}

		return errors.Wrap(err, "failed to create recipe")
	}

	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt
	recipe.UpdatedAt = recipeM.UpdatedAt

	return nil
}

// ListByUserID retrieves all recipes owned by the given user.
func (repo *recipeRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Recipe, error) {
	var recipeMs []model.RecipeModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Find(&recipeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recipes by user id")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeMs))
	for i := range recipeMs {
		recipes = append(recipes, toRecipeDomain(&recipeMs[i]))
	}

	return recipes, nil
}

func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	return &entity.Recipe{
		ID:                data.ID,
		Title:             data.Title,
		Instructions:      data.Instructions,
		MinutesToComplete: data.MinutesToComplete,
		UserID:            data.UserID,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	if data == nil {
		return nil
	}

	return &model.RecipeModel{
		ID:                data.ID,
		Title:             data.Title,
		Instructions:      data.Instructions,
		MinutesToComplete: data.MinutesToComplete,
		UserID:            data.UserID,
	}
}
