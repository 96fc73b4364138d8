package recipes

import (
	"github.com/matt-dz/foodgram/internal/recipe"
)

type CreateRecipeRequest struct {
	Ingredients []recipe.IngredientAmount `json:"ingredients" validate:"dive"`
	Tags        []int64                   `json:"tags"`
	Image       string                    `json:"image" validate:"required"`
	Name        string                    `json:"name" validate:"required,max=200"`
	Text        string                    `json:"text" validate:"required"`
	CookingTime int32                     `json:"cooking_time" validate:"required,min=1"`
} //	@name	CreateRecipeRequest

// UpdateRecipeRequest replaces ingredients and tags; omitted scalar fields
// keep their current value.
type UpdateRecipeRequest struct {
	Ingredients []recipe.IngredientAmount `json:"ingredients" validate:"dive"`
	Tags        []int64                   `json:"tags"`
	Image       *string                   `json:"image" validate:"omitempty,min=1"`
	Name        *string                   `json:"name" validate:"omitempty,min=1,max=200"`
	Text        *string                   `json:"text" validate:"omitempty,min=1"`
	CookingTime *int32                    `json:"cooking_time" validate:"omitempty,min=1"`
} //	@name	UpdateRecipeRequest
