// Package recipes contains handlers for the recipes endpoint.
package recipes

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/params"
	"github.com/matt-dz/foodgram/internal/api/requestid"
	"github.com/matt-dz/foodgram/internal/api/token"
	"github.com/matt-dz/foodgram/internal/env"
	mJson "github.com/matt-dz/foodgram/internal/json"
	"github.com/matt-dz/foodgram/internal/recipe"
)

const (
	// Base64 inflates the image limit by 4/3; leave room for the other fields.
	maxBodySize = recipe.MaxImageSize*4/3 + 1<<20
)

// HandleListRecipes godoc
//
//	@Summary		List recipes.
//	@Description	Newest first. Tags are OR-combined, other filters AND-combined.
//	@Tags			Recipes
//	@Produce		json
//	@Param			tags				query		[]string	false	"Tag slugs"	collectionFormat(multi)
//	@Param			author				query		int			false	"Author id"
//	@Param			is_favorited		query		int			false	"1 to list the caller's favorites"
//	@Param			is_in_shopping_cart	query		int			false	"1 to list the caller's cart"
//	@Param			page				query		int			false	"Page number"
//	@Param			limit				query		int			false	"Page size"
//	@Success		200					{object}	view.Page[view.RecipeDetail]
//	@Failure		500					{object}	apiError.Error
//	@Router			/api/recipes [GET]
func HandleListRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	filter := recipe.ParseFilter(r.URL.Query())
	env.Logger.DebugContext(ctx, "listing recipes",
		slog.Any("tags", filter.Tags),
		slog.Bool("is_favorited", filter.IsFavorited),
		slog.Bool("is_in_shopping_cart", filter.IsInShoppingCart))
	page, err := recipe.List(ctx, env, token.ViewerFromCtx(ctx), filter)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if err := mJson.WriteJSON(w, http.StatusOK, page); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleGetRecipe godoc
//
//	@Summary	Get a recipe.
//	@Tags		Recipes
//	@Produce	json
//	@Param		id	path		int	true	"Recipe id"
//	@Success	200	{object}	view.RecipeDetail
//	@Failure	404	{object}	apiError.Error
//	@Router		/api/recipes/{id} [GET]
func HandleGetRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	id, err := params.ID(r, "id")
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "getting recipe", slog.Int64("recipe_id", id))
	detail, err := recipe.Get(ctx, env, token.ViewerFromCtx(ctx), id)
	if errors.Is(err, recipe.ErrNotFound) {
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if err := mJson.WriteJSON(w, http.StatusOK, detail); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleCreateRecipe godoc
//
//	@Summary		Create a recipe.
//	@Description	The image is a base64 data URL. Validation failures carry a reason:
//	@Description	ingredients_empty, ingredient_not_found, ingredient_duplicate,
//	@Description	amount_invalid, tags_empty, tag_not_found or name_taken.
//	@Tags			Recipes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateRecipeRequest	true	"Recipe"
//	@Success		201		{object}	view.RecipeDetail
//	@Failure		400		{object}	apiError.Error	"Bad request or validation error"
//	@Failure		401		{object}	apiError.Error	"Unauthorized"
//	@Failure		413		{object}	apiError.Error	"Image too large"
//	@Failure		500		{object}	apiError.Error	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/recipes [POST]
func HandleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)
	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Decode JSON
	var request CreateRecipeRequest
	env.Logger.DebugContext(ctx, "reading request body")
	if !decodeBody(w, r, &request) {
		return
	}

	env.Logger.DebugContext(ctx, "decoding image")
	image, ok := decodeImage(w, r, request.Image)
	if !ok {
		return
	}

	env.Logger.DebugContext(ctx, "creating recipe")
	id, err := recipe.Create(ctx, env, userID, recipe.CreateInput{
		Name:        request.Name,
		Image:       image,
		Text:        request.Text,
		CookingTime: request.CookingTime,
		Ingredients: request.Ingredients,
		Tags:        request.Tags,
	})
	if err != nil {
		encodeMutationError(w, r, err)
		return
	}

	writeDetail(w, r, id, http.StatusCreated)
}

// HandleUpdateRecipe godoc
//
//	@Summary		Update a recipe.
//	@Description	Ingredients and tags are replaced as a whole. Author or admin only.
//	@Tags			Recipes
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Recipe id"
//	@Param			request	body		UpdateRecipeRequest	true	"Recipe"
//	@Success		200		{object}	view.RecipeDetail
//	@Failure		400		{object}	apiError.Error	"Bad request or validation error"
//	@Failure		403		{object}	apiError.Error	"Not the author"
//	@Failure		404		{object}	apiError.Error	"Recipe not found"
//	@Security		BearerAuth
//	@Router			/api/recipes/{id} [PATCH]
func HandleUpdateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)
	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	id, err := params.ID(r, "id")
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return
	}

	var request UpdateRecipeRequest
	env.Logger.DebugContext(ctx, "reading request body")
	if !decodeBody(w, r, &request) {
		return
	}

	in := recipe.UpdateInput{
		Name:        request.Name,
		Text:        request.Text,
		CookingTime: request.CookingTime,
		Ingredients: request.Ingredients,
		Tags:        request.Tags,
	}
	if request.Image != nil {
		env.Logger.DebugContext(ctx, "decoding image")
		image, ok := decodeImage(w, r, *request.Image)
		if !ok {
			return
		}
		in.Image = &image
	}

	env.Logger.DebugContext(ctx, "updating recipe", slog.Int64("recipe_id", id))
	actor := recipe.Actor{UserID: userID, Role: token.RoleFromCtx(ctx)}
	if err := recipe.Update(ctx, env, actor, id, in); err != nil {
		encodeMutationError(w, r, err)
		return
	}

	writeDetail(w, r, id, http.StatusOK)
}

// HandleDeleteRecipe godoc
//
//	@Summary	Delete a recipe.
//	@Tags		Recipes
//	@Param		id	path	int	true	"Recipe id"
//	@Success	204
//	@Failure	403	{object}	apiError.Error	"Not the author"
//	@Failure	404	{object}	apiError.Error	"Recipe not found"
//	@Security	BearerAuth
//	@Router		/api/recipes/{id} [DELETE]
func HandleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)
	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	id, err := params.ID(r, "id")
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "deleting recipe", slog.Int64("recipe_id", id))
	actor := recipe.Actor{UserID: userID, Role: token.RoleFromCtx(ctx)}
	if err := recipe.Delete(ctx, env, actor, id); err != nil {
		encodeMutationError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	defer func() { _ = r.Body.Close() }()
	if err := mJson.DecodeJSON(dst, mJson.NewStrictDecoder(r.Body)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request body", slog.Any("error", err))
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			_ = apiError.EncodeError(w, apiError.PayloadTooLarge, "request body too large", requestID)
			return false
		}
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return false
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(dst); err != nil {
		env.Logger.ErrorContext(ctx, "failed to validate request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return false
	}
	return true
}

func decodeImage(w http.ResponseWriter, r *http.Request, raw string) (recipe.Image, bool) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	image, err := recipe.DecodeDataURL(raw)
	switch {
	case err == nil:
		return image, true
	case errors.Is(err, recipe.ErrImageTooLarge):
		env.Logger.ErrorContext(ctx, "image too large", slog.Any("error", err))
		_ = apiError.EncodeFieldError(w, apiError.PayloadTooLarge, "image exceeds 10 MiB", "image", "", requestID)
	default:
		env.Logger.ErrorContext(ctx, "unsupported image", slog.Any("error", err))
		_ = apiError.EncodeFieldError(w, apiError.UnsupportedImage,
			"image must be a base64 data URL of a jpeg, png, gif, webp or svg", "image", "", requestID)
	}
	return recipe.Image{}, false
}

func encodeMutationError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	if verr, ok := recipe.AsValidationError(err); ok {
		env.Logger.DebugContext(ctx, "recipe rejected", slog.String("reason", string(verr.Reason)))
		_ = apiError.EncodeFieldError(w, apiError.ValidationError, verr.Message,
			verr.Field, string(verr.Reason), requestID)
		return
	}
	switch {
	case errors.Is(err, recipe.ErrNotFound):
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
	case errors.Is(err, recipe.ErrNotOwned):
		env.Logger.ErrorContext(ctx, "user does not own recipe")
		_ = apiError.EncodeError(w, apiError.RecipeNotOwned, "user does not own recipe", requestID)
	default:
		env.Logger.ErrorContext(ctx, "failed to mutate recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
	}
}

func writeDetail(w http.ResponseWriter, r *http.Request, id int64, status int) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	detail, err := recipe.Get(ctx, env, token.ViewerFromCtx(ctx), id)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to read back recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if err := mJson.WriteJSON(w, status, detail); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}
