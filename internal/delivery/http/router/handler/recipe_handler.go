package handler

import (
	"net/http"
	"strconv"

	"recipebox/internal/delivery/http/middleware"
	"recipebox/internal/delivery/http/response"
	"recipebox/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecipeHandler holds dependencies for the recipe endpoints. Both endpoints
// sit behind the RequireSession middleware.
type RecipeHandler struct {
	uc usecase.RecipeUsecase
}

// NewRecipeHandler is the constructor for RecipeHandler, injected by Fx.
func NewRecipeHandler(uc usecase.RecipeUsecase) *RecipeHandler {
	return &RecipeHandler{uc: uc}
}

// createRecipeRequest is the wire form of a recipe creation. Minutes arrive
// as any because clients send both numbers and numeric strings.
type createRecipeRequest struct {
	Title             string `json:"title" validate:"required"`
	Instructions      string `json:"instructions" validate:"required"`
	MinutesToComplete any    `json:"minutes_to_complete" validate:"required"`
}

// List handles GET /recipes, returning the authenticated user's recipes.
func (h *RecipeHandler) List(c echo.Context) error {
	userID := sessionUserID(c)

	outputs, err := h.uc.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, outputs)
}

// Create handles POST /recipes. Any missing field, type conversion failure,
// validation error, or integrity error answers with the same generic 422;
// the specific reason is never surfaced at this endpoint.
func (h *RecipeHandler) Create(c echo.Context) error {
	userID := sessionUserID(c)

	var req createRecipeRequest
	if err := c.Bind(&req); err != nil {
		return invalidRecipe(c)
	}
	if err := c.Validate(&req); err != nil {
		return invalidRecipe(c)
	}

	// Zero minutes is treated the same as a missing field.
	minutes, err := coerceMinutes(req.MinutesToComplete)
	if err != nil || minutes == 0 {
		return invalidRecipe(c)
	}

	output, err := h.uc.Create(c.Request().Context(), userID, &usecase.CreateRecipeInput{
		Title:             req.Title,
		Instructions:      req.Instructions,
		MinutesToComplete: minutes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, output)
}

func invalidRecipe(c echo.Context) error {
	return response.Error(c, http.StatusUnprocessableEntity, "Invalid recipe")
}

// sessionUserID reads the user id placed on the context by RequireSession.
func sessionUserID(c echo.Context) uuid.UUID {
	userID, _ := c.Get(middleware.ContextKeyUserID).(uuid.UUID)

	return userID
}

// coerceMinutes converts the wire value to an int, accepting JSON numbers
// and numeric strings.
func coerceMinutes(value any) (int, error) {
	switch v := value.(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case string:
		minutes, err := strconv.Atoi(v)
		if err != nil {
			return 0, errors.Wrap(err, "minutes_to_complete is not numeric")
		}

		return minutes, nil
	default:
		return 0, errors.Errorf("minutes_to_complete has unsupported type %T", value)
	}
}
