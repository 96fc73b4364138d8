package recipe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/filestore"
	"github.com/matt-dz/foodgram/internal/metrics"
	"github.com/matt-dz/foodgram/internal/role"
)

type CreateInput struct {
	Name        string
	Image       Image
	Text        string
	CookingTime int32
	Ingredients []IngredientAmount
	Tags        []int64
}

// UpdateInput replaces ingredients and tags wholesale. Nil scalar fields
// keep their stored value.
type UpdateInput struct {
	Name        *string
	Image       *Image
	Text        *string
	CookingTime *int32
	Ingredients []IngredientAmount
	Tags        []int64
}

// Actor is the identity performing a mutation.
type Actor struct {
	UserID int64
	Role   role.Role
}

func (a Actor) canModify(authorID int64) bool {
	return a.UserID == authorID || a.Role.Satisfies(role.RoleAdmin)
}

// Create validates in, stores its image and writes the recipe with its
// tags and ingredients in a single transaction.
func Create(ctx context.Context, e *env.Env, authorID int64, in CreateInput) (int64, error) {
	tagIDs, err := Validate(ctx, e.Database, authorID, 0, Contents{
		Name:        in.Name,
		Ingredients: in.Ingredients,
		Tags:        in.Tags,
	})
	if err != nil {
		return 0, err
	}

	key := filestore.NewRecipeImageKey(in.Image.Suffix)
	e.Logger.DebugContext(ctx, "saving recipe image", slog.String("key", key))
	if err := e.FileStore.Save(ctx, key, in.Image.MimeType, in.Image.Data); err != nil {
		return 0, fmt.Errorf("saving image: %w", err)
	}

	var id int64
	err = e.Database.ExecTx(ctx, func(q database.Querier) error {
		var err error
		id, err = q.CreateRecipe(ctx, database.CreateRecipeParams{
			AuthorID:    authorID,
			Name:        in.Name,
			Image:       key,
			Text:        in.Text,
			CookingTime: in.CookingTime,
		})
		if err != nil {
			return fmt.Errorf("inserting recipe: %w", err)
		}
		return writeContents(ctx, q, id, in.Ingredients, tagIDs)
	})
	if err != nil {
		discardImage(ctx, e, key)
		return 0, mapWriteError(err, in.Name)
	}

	metrics.RecordRecipeMutation("create")
	return id, nil
}

// Update applies in to recipe id on behalf of actor. The stored row is
// locked for the duration of the transaction, so concurrent updates merge
// against the latest committed values.
func Update(ctx context.Context, e *env.Env, actor Actor, id int64, in UpdateInput) error {
	existing, err := e.Database.GetRecipe(ctx, id)
	if database.IsNotFound(err) {
		return ErrNotFound
	} else if err != nil {
		return fmt.Errorf("getting recipe: %w", err)
	}
	if !actor.canModify(existing.AuthorID) {
		return ErrNotOwned
	}

	var newKey string
	if in.Image != nil {
		newKey = filestore.NewRecipeImageKey(in.Image.Suffix)
		e.Logger.DebugContext(ctx, "saving replacement image", slog.String("key", newKey))
		if err := e.FileStore.Save(ctx, newKey, in.Image.MimeType, in.Image.Data); err != nil {
			return fmt.Errorf("saving image: %w", err)
		}
	}

	var params database.UpdateRecipeParams
	var oldKey string
	err = e.Database.ExecTx(ctx, func(q database.Querier) error {
		locked, err := q.GetRecipeForUpdate(ctx, id)
		if database.IsNotFound(err) {
			return ErrNotFound
		} else if err != nil {
			return fmt.Errorf("locking recipe: %w", err)
		}
		oldKey = locked.Image
		params = mergeUpdate(locked, in, newKey)

		tagIDs, err := Validate(ctx, q, locked.AuthorID, id, Contents{
			Name:        params.Name,
			Ingredients: in.Ingredients,
			Tags:        in.Tags,
		})
		if err != nil {
			return err
		}

		if err := q.UpdateRecipe(ctx, params); err != nil {
			return fmt.Errorf("updating recipe: %w", err)
		}
		if err := q.DeleteRecipeIngredients(ctx, id); err != nil {
			return fmt.Errorf("clearing ingredients: %w", err)
		}
		if err := q.DeleteRecipeTags(ctx, id); err != nil {
			return fmt.Errorf("clearing tags: %w", err)
		}
		return writeContents(ctx, q, id, in.Ingredients, tagIDs)
	})
	if err != nil {
		discardImage(ctx, e, newKey)
		return mapWriteError(err, params.Name)
	}

	if in.Image != nil {
		discardImage(ctx, e, oldKey)
	}
	metrics.RecordRecipeMutation("update")
	return nil
}

// mergeUpdate overlays the fields set in in onto the stored row.
func mergeUpdate(stored database.Recipe, in UpdateInput, newKey string) database.UpdateRecipeParams {
	params := database.UpdateRecipeParams{
		ID:          stored.ID,
		Name:        stored.Name,
		Image:       stored.Image,
		Text:        stored.Text,
		CookingTime: stored.CookingTime,
	}
	if in.Name != nil {
		params.Name = *in.Name
	}
	if newKey != "" {
		params.Image = newKey
	}
	if in.Text != nil {
		params.Text = *in.Text
	}
	if in.CookingTime != nil {
		params.CookingTime = *in.CookingTime
	}
	return params
}

// mapWriteError turns constraint violations raised while writing a recipe
// into the validation errors Validate would have reported. An ingredient
// or tag deleted after validation surfaces here as a foreign key violation.
func mapWriteError(err error, name string) error {
	switch {
	case database.IsUniqueViolation(err, database.ConstraintRecipeAuthorName):
		return nameTakenError(name)
	case database.IsForeignKeyViolation(err, database.ConstraintRecipeIngredientFK):
		return newValidationError(ReasonIngredientNotFound, fieldIngredients,
			"an ingredient no longer exists")
	case database.IsForeignKeyViolation(err, database.ConstraintRecipeTagFK):
		return newValidationError(ReasonTagNotFound, fieldTags, "a tag no longer exists")
	}
	return err
}

// Delete removes recipe id and its stored image.
func Delete(ctx context.Context, e *env.Env, actor Actor, id int64) error {
	existing, err := e.Database.GetRecipe(ctx, id)
	if database.IsNotFound(err) {
		return ErrNotFound
	} else if err != nil {
		return fmt.Errorf("getting recipe: %w", err)
	}
	if !actor.canModify(existing.AuthorID) {
		return ErrNotOwned
	}

	rows, err := e.Database.DeleteRecipe(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting recipe: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	discardImage(ctx, e, existing.Image)
	metrics.RecordRecipeMutation("delete")
	return nil
}

func writeContents(
	ctx context.Context,
	q database.Querier,
	recipeID int64,
	ingredients []IngredientAmount,
	tagIDs []int64,
) error {
	if err := q.InsertRecipeTags(ctx, database.InsertRecipeTagsParams{
		RecipeID: recipeID,
		TagIds:   tagIDs,
	}); err != nil {
		return fmt.Errorf("inserting tags: %w", err)
	}

	rows := make([]database.InsertRecipeIngredientsParams, 0, len(ingredients))
	for _, in := range ingredients {
		rows = append(rows, database.InsertRecipeIngredientsParams{
			RecipeID:     recipeID,
			IngredientID: in.ID,
			Amount:       in.Amount,
		})
	}
	n, err := q.InsertRecipeIngredients(ctx, rows)
	if err != nil {
		return fmt.Errorf("inserting ingredients: %w", err)
	}
	if n != int64(len(rows)) {
		return fmt.Errorf("inserted %d of %d ingredients", n, len(rows))
	}
	return nil
}

// discardImage removes an object that is no longer referenced. Failures
// leave an orphan behind and are only logged.
func discardImage(ctx context.Context, e *env.Env, key string) {
	if key == "" {
		return
	}
	if err := e.FileStore.Delete(ctx, key); err != nil && !errors.Is(err, context.Canceled) {
		e.Logger.WarnContext(ctx, "failed to delete image", slog.String("key", key), slog.Any("error", err))
	}
}
