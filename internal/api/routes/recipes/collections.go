package recipes

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/params"
	"github.com/matt-dz/foodgram/internal/api/requestid"
	"github.com/matt-dz/foodgram/internal/api/token"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/env"
	mJson "github.com/matt-dz/foodgram/internal/json"
	"github.com/matt-dz/foodgram/internal/metrics"
	"github.com/matt-dz/foodgram/internal/shoppinglist"
	"github.com/matt-dz/foodgram/internal/toggle"
	"github.com/matt-dz/foodgram/internal/view"
)

const (
	formatXLSX = "xlsx"
	formatText = "txt"
)

type recipeToggle func(
	ctx context.Context, q database.Querier, userID, recipeID int64, action toggle.Action,
) (database.Recipe, error)

// HandleAddFavorite godoc
//
//	@Summary	Add a recipe to favorites.
//	@Tags		Favorites
//	@Produce	json
//	@Param		id	path		int	true	"Recipe id"
//	@Success	201	{object}	view.RecipeMini
//	@Failure	400	{object}	apiError.Error	"Already favorited"
//	@Failure	404	{object}	apiError.Error	"Recipe not found"
//	@Security	BearerAuth
//	@Router		/api/recipes/{id}/favorite [POST]
func HandleAddFavorite(w http.ResponseWriter, r *http.Request) {
	handleToggle(w, r, toggle.Favorite, toggle.Add)
}

// HandleRemoveFavorite godoc
//
//	@Summary	Remove a recipe from favorites.
//	@Tags		Favorites
//	@Param		id	path	int	true	"Recipe id"
//	@Success	204
//	@Failure	400	{object}	apiError.Error	"Not favorited"
//	@Failure	404	{object}	apiError.Error	"Recipe not found"
//	@Security	BearerAuth
//	@Router		/api/recipes/{id}/favorite [DELETE]
func HandleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	handleToggle(w, r, toggle.Favorite, toggle.Remove)
}

// HandleAddToShoppingCart godoc
//
//	@Summary	Add a recipe to the shopping cart.
//	@Tags		Shopping cart
//	@Produce	json
//	@Param		id	path		int	true	"Recipe id"
//	@Success	201	{object}	view.RecipeMini
//	@Failure	400	{object}	apiError.Error	"Already in cart"
//	@Failure	404	{object}	apiError.Error	"Recipe not found"
//	@Security	BearerAuth
//	@Router		/api/recipes/{id}/shopping_cart [POST]
func HandleAddToShoppingCart(w http.ResponseWriter, r *http.Request) {
	handleToggle(w, r, toggle.ShoppingCart, toggle.Add)
}

// HandleRemoveFromShoppingCart godoc
//
//	@Summary	Remove a recipe from the shopping cart.
//	@Tags		Shopping cart
//	@Param		id	path	int	true	"Recipe id"
//	@Success	204
//	@Failure	400	{object}	apiError.Error	"Not in cart"
//	@Failure	404	{object}	apiError.Error	"Recipe not found"
//	@Security	BearerAuth
//	@Router		/api/recipes/{id}/shopping_cart [DELETE]
func HandleRemoveFromShoppingCart(w http.ResponseWriter, r *http.Request) {
	handleToggle(w, r, toggle.ShoppingCart, toggle.Remove)
}

func handleToggle(w http.ResponseWriter, r *http.Request, fn recipeToggle, action toggle.Action) {
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

	env.Logger.DebugContext(ctx, "toggling recipe", slog.Int64("recipe_id", id), slog.String("action", string(action)))
	rec, err := fn(ctx, env.Database, userID, id, action)
	switch {
	case errors.Is(err, toggle.ErrTargetNotFound):
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return
	case errors.Is(err, toggle.ErrAlreadyExists):
		_ = apiError.EncodeError(w, apiError.AlreadyExists, "recipe already added", requestID)
		return
	case errors.Is(err, toggle.ErrNotInCollection):
		_ = apiError.EncodeError(w, apiError.NotInCollection, "recipe was not added", requestID)
		return
	case err != nil:
		env.Logger.ErrorContext(ctx, "failed to toggle recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if action == toggle.Remove {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err := mJson.WriteJSON(w, http.StatusCreated, view.Mini(rec, env.FileStore.URL)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleDownloadShoppingCart godoc
//
//	@Summary		Download the shopping list.
//	@Description	Ingredients of every recipe in the cart, summed per ingredient and sorted by name.
//	@Tags			Shopping cart
//	@Produce		plain
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param			format	query	string	false	"txt (default) or xlsx"
//	@Success		200		{file}	file
//	@Failure		401		{object}	apiError.Error	"Unauthorized"
//	@Security		BearerAuth
//	@Router			/api/recipes/download_shopping_cart [GET]
func HandleDownloadShoppingCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)
	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "building shopping list")
	list, err := shoppinglist.Build(ctx, env.Database, userID)
	if database.IsNotFound(err) {
		_ = apiError.EncodeError(w, apiError.UserNotFound, "user not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to build shopping list", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	format := formatText
	if r.URL.Query().Get("format") == formatXLSX {
		format = formatXLSX
	}
	env.Logger.DebugContext(ctx, "writing shopping list",
		slog.String("format", format), slog.Int("items", len(list.Items)))

	if format == formatXLSX {
		w.Header().Set("Content-Type", shoppinglist.XLSXContentType)
		w.Header().Set("Content-Disposition", "attachment; filename="+shoppinglist.XLSXFilename)
		err = shoppinglist.RenderXLSX(w, list)
	} else {
		w.Header().Set("Content-Type", shoppinglist.TextContentType)
		w.Header().Set("Content-Disposition", "attachment; filename="+shoppinglist.TextFilename)
		err = shoppinglist.RenderText(w, list)
	}
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to write shopping list", slog.Any("error", err))
		return
	}
	metrics.RecordShoppingListDownload(format)
}
