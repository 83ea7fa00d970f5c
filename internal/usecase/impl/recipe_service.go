package impl

import (
	"context"
	"log/slog"

	deliverycontext "recipebox/internal/delivery/context"
	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/domain/repository"
	"recipebox/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	recipeRepo repository.RecipeRepository
	logger     *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	recipeRepo repository.RecipeRepository,
	logger *slog.Logger,
) usecase.RecipeUsecase {
	return &recipeService{
		txManager:  txManager,
		userRepo:   userRepo,
		recipeRepo: recipeRepo,
		logger:     logger,
	}
}

func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListForUser returns all recipes owned by the user. The user must still
// exist; a stale session id surfaces as the user-not-found error.
func (srv *recipeService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*usecase.RecipeOutput, error) {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "recipe listing failed")
		}

		return nil, errors.Wrap(err, "failed to load user for recipe listing")
	}

	recipes, err := srv.recipeRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	outputs := make([]*usecase.RecipeOutput, 0, len(recipes))
	for _, recipe := range recipes {
		outputs = append(outputs, toRecipeOutput(recipe))
	}

	return outputs, nil
}

// Create validates and persists a new recipe inside a transaction. Field
// validation runs at entity construction, before any persistence attempt;
// every failure mode collapses into the generic invalid-recipe error and the
// specific validation message is not surfaced.
func (srv *recipeService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateRecipeInput) (*usecase.RecipeOutput, error) {
	recipe, err := entity.NewRecipe(input.Title, input.Instructions, input.MinutesToComplete, userID)
	if err != nil {
		srv.log(ctx).Warn("Recipe rejected by validation", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInvalidRecipe, "recipe validation failed")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.RecipeRepo().Create(ctx, recipe)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute recipe creation transaction", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInvalidRecipe, "recipe creation failed")
	}

	srv.log(ctx).Debug("Recipe created", slog.Any("recipeID", recipe.ID), slog.Any("userID", userID))

	return toRecipeOutput(recipe), nil
}

func toRecipeOutput(recipe *entity.Recipe) *usecase.RecipeOutput {
	return &usecase.RecipeOutput{
		ID:                recipe.ID,
		Title:             recipe.Title,
		Instructions:      recipe.Instructions,
		MinutesToComplete: recipe.MinutesToComplete,
		UserID:            recipe.UserID,
	}
}
