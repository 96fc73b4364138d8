package recipe

import (
	"context"
	"fmt"

	"github.com/matt-dz/foodgram/internal/database"
)

const (
	fieldIngredients = "ingredients"
	fieldTags        = "tags"
	fieldName        = "name"
)

type IngredientAmount struct {
	ID     int64 `json:"id"`
	Amount int32 `json:"amount"`
}

// Contents is the part of a recipe subject to referential validation.
type Contents struct {
	Name        string
	Ingredients []IngredientAmount
	Tags        []int64
}

// Validate checks c against the database and returns the first failure
// as a *ValidationError. excludeID is the recipe being updated, or 0.
// On success the tag ids are returned deduplicated in input order.
func Validate(
	ctx context.Context,
	q database.Querier,
	authorID, excludeID int64,
	c Contents,
) ([]int64, error) {
	if len(c.Ingredients) == 0 {
		return nil, newValidationError(ReasonIngredientsEmpty, fieldIngredients,
			"at least one ingredient is required")
	}

	ingredientIDs := make([]int64, 0, len(c.Ingredients))
	for _, in := range c.Ingredients {
		ingredientIDs = append(ingredientIDs, in.ID)
	}
	uniqueIngredients := dedupe(ingredientIDs)
	found, err := q.ListIngredientsByIDs(ctx, uniqueIngredients)
	if err != nil {
		return nil, fmt.Errorf("listing ingredients: %w", err)
	}
	if id, ok := firstMissing(uniqueIngredients, ingredientSet(found)); ok {
		return nil, newValidationError(ReasonIngredientNotFound, fieldIngredients,
			"ingredient %d does not exist", id)
	}

	seen := make(map[int64]struct{}, len(c.Ingredients))
	for _, in := range c.Ingredients {
		if _, dup := seen[in.ID]; dup {
			return nil, newValidationError(ReasonIngredientDuplicate, fieldIngredients,
				"ingredient %d is listed more than once", in.ID)
		}
		seen[in.ID] = struct{}{}
	}

	for _, in := range c.Ingredients {
		if in.Amount < 1 {
			return nil, newValidationError(ReasonAmountInvalid, fieldIngredients,
				"amount of ingredient %d must be at least 1", in.ID)
		}
	}

	if len(c.Tags) == 0 {
		return nil, newValidationError(ReasonTagsEmpty, fieldTags, "at least one tag is required")
	}
	tagIDs := dedupe(c.Tags)
	tags, err := q.ListTagsByIDs(ctx, tagIDs)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	if id, ok := firstMissing(tagIDs, tagSet(tags)); ok {
		return nil, newValidationError(ReasonTagNotFound, fieldTags, "tag %d does not exist", id)
	}

	taken, err := q.RecipeNameTaken(ctx, database.RecipeNameTakenParams{
		AuthorID:  authorID,
		Name:      c.Name,
		ExcludeID: excludeID,
	})
	if err != nil {
		return nil, fmt.Errorf("checking recipe name: %w", err)
	}
	if taken {
		return nil, nameTakenError(c.Name)
	}

	return tagIDs, nil
}

func nameTakenError(name string) *ValidationError {
	return newValidationError(ReasonNameTaken, fieldName, "you already have a recipe named %q", name)
}

func dedupe(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func firstMissing(ids []int64, present map[int64]struct{}) (int64, bool) {
	for _, id := range ids {
		if _, ok := present[id]; !ok {
			return id, true
		}
	}
	return 0, false
}

func ingredientSet(rows []database.Ingredient) map[int64]struct{} {
	set := make(map[int64]struct{}, len(rows))
	for _, r := range rows {
		set[r.ID] = struct{}{}
	}
	return set
}

func tagSet(rows []database.Tag) map[int64]struct{} {
	set := make(map[int64]struct{}, len(rows))
	for _, r := range rows {
		set[r.ID] = struct{}{}
	}
	return set
}
