package recipe

import (
	"context"
	"fmt"

	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/view"
)

// List returns one page of recipes matching f as seen by viewerID.
func List(ctx context.Context, e *env.Env, viewerID int64, f Filter) (view.Page[view.RecipeDetail], error) {
	listParams, countParams, empty := f.Params(viewerID)
	if empty {
		return view.Page[view.RecipeDetail]{Results: []view.RecipeDetail{}}, nil
	}

	count, err := e.Database.CountRecipes(ctx, countParams)
	if err != nil {
		return view.Page[view.RecipeDetail]{}, fmt.Errorf("counting recipes: %w", err)
	}
	rows, err := e.Database.ListRecipes(ctx, listParams)
	if err != nil {
		return view.Page[view.RecipeDetail]{}, fmt.Errorf("listing recipes: %w", err)
	}
	results, err := hydrate(ctx, e, rows)
	if err != nil {
		return view.Page[view.RecipeDetail]{}, err
	}

	return view.Page[view.RecipeDetail]{Count: count, Results: results}, nil
}

// Get returns recipe id as seen by viewerID.
func Get(ctx context.Context, e *env.Env, viewerID, id int64) (view.RecipeDetail, error) {
	row, err := e.Database.GetRecipeDetail(ctx, database.GetRecipeDetailParams{
		ViewerID: viewerID,
		ID:       id,
	})
	if database.IsNotFound(err) {
		return view.RecipeDetail{}, ErrNotFound
	} else if err != nil {
		return view.RecipeDetail{}, fmt.Errorf("getting recipe: %w", err)
	}

	details, err := hydrate(ctx, e, []database.ListRecipesRow{database.ListRecipesRow(row)})
	if err != nil {
		return view.RecipeDetail{}, err
	}
	return details[0], nil
}

func hydrate(ctx context.Context, e *env.Env, rows []database.ListRecipesRow) ([]view.RecipeDetail, error) {
	if len(rows) == 0 {
		return []view.RecipeDetail{}, nil
	}

	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	tags, err := e.Database.ListRecipeTags(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("listing recipe tags: %w", err)
	}
	ingredients, err := e.Database.ListRecipeIngredients(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("listing recipe ingredients: %w", err)
	}

	return view.RecipeDetails(rows, tags, ingredients, e.FileStore.URL), nil
}
