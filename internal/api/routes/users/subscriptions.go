package users

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/params"
	"github.com/matt-dz/foodgram/internal/api/requestid"
	"github.com/matt-dz/foodgram/internal/api/token"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/env"
	mJson "github.com/matt-dz/foodgram/internal/json"
	"github.com/matt-dz/foodgram/internal/pagination"
	"github.com/matt-dz/foodgram/internal/toggle"
	"github.com/matt-dz/foodgram/internal/view"
)

const defaultRecipesLimit = 3

// recipesLimit reads the recipes_limit query parameter. Negative or
// malformed values fall back to the default.
func recipesLimit(q url.Values) int64 {
	v, err := strconv.ParseInt(q.Get("recipes_limit"), 10, 64)
	if err != nil || v < 0 {
		return defaultRecipesLimit
	}
	return v
}

func subscriptionViews(
	ctx context.Context,
	e *env.Env,
	authors []database.ListSubscriptionsRow,
	limit int64,
) ([]view.SubscriptionView, error) {
	if len(authors) == 0 {
		return []view.SubscriptionView{}, nil
	}
	ids := make([]int64, 0, len(authors))
	for _, a := range authors {
		ids = append(ids, a.ID)
	}

	var previews []database.ListAuthorRecipePreviewsRow
	if limit > 0 {
		var err error
		previews, err = e.Database.ListAuthorRecipePreviews(ctx, database.ListAuthorRecipePreviewsParams{
			AuthorIds: ids,
			PerAuthor: limit,
		})
		if err != nil {
			return nil, err
		}
	}
	counts, err := e.Database.CountRecipesByAuthors(ctx, ids)
	if err != nil {
		return nil, err
	}
	return view.Subscriptions(authors, previews, counts, e.FileStore.URL), nil
}

// HandleListSubscriptions godoc
//
//	@Summary	List the authors the current user follows.
//	@Tags		Users
//	@Produce	json
//	@Param		page			query		int	false	"Page number"
//	@Param		limit			query		int	false	"Page size"
//	@Param		recipes_limit	query		int	false	"Recipes shown per author"
//	@Success	200				{object}	view.Page[view.SubscriptionView]
//	@Failure	401				{object}	apiError.Error
//	@Security	BearerAuth
//	@Router		/api/users/subscriptions [GET]
func HandleListSubscriptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)
	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	query := r.URL.Query()
	page := pagination.Parse(query, pagination.DefaultLimit)

	env.Logger.DebugContext(ctx, "Counting subscriptions")
	count, err := env.Database.CountSubscriptions(ctx, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to count subscriptions", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	env.Logger.DebugContext(ctx, "Listing subscriptions")
	authors, err := env.Database.ListSubscriptions(ctx, database.ListSubscriptionsParams{
		UserID:     userID,
		PageLimit:  page.Limit,
		PageOffset: page.Offset(),
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to list subscriptions", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	results, err := subscriptionViews(ctx, env, authors, recipesLimit(query))
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to load author recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if err := mJson.WriteJSON(w, http.StatusOK, view.Page[view.SubscriptionView]{
		Count:   count,
		Results: results,
	}); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleSubscribe godoc
//
//	@Summary	Follow an author.
//	@Tags		Users
//	@Produce	json
//	@Param		id				path		int	true	"Author id"
//	@Param		recipes_limit	query		int	false	"Recipes shown"
//	@Success	201				{object}	view.SubscriptionView
//	@Failure	400				{object}	apiError.Error	"Already subscribed or self subscription"
//	@Failure	404				{object}	apiError.Error
//	@Security	BearerAuth
//	@Router		/api/users/{id}/subscribe [POST]
func HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	handleSubscription(w, r, toggle.Add)
}

// HandleUnsubscribe godoc
//
//	@Summary	Unfollow an author.
//	@Tags		Users
//	@Param		id	path	int	true	"Author id"
//	@Success	204
//	@Failure	400	{object}	apiError.Error	"Not subscribed"
//	@Failure	404	{object}	apiError.Error
//	@Security	BearerAuth
//	@Router		/api/users/{id}/subscribe [DELETE]
func HandleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	handleSubscription(w, r, toggle.Remove)
}

func handleSubscription(w http.ResponseWriter, r *http.Request, action toggle.Action) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)
	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	authorID, err := params.ID(r, "id")
	if err != nil {
		_ = apiError.EncodeError(w, apiError.UserNotFound, "user not found", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Toggling subscription",
		slog.Int64("author_id", authorID), slog.String("action", string(action)))
	author, err := toggle.Subscription(ctx, env.Database, userID, authorID, action)
	switch {
	case errors.Is(err, toggle.ErrSelfSubscription):
		_ = apiError.EncodeError(w, apiError.SelfSubscription, "cannot subscribe to yourself", requestID)
		return
	case errors.Is(err, toggle.ErrTargetNotFound):
		_ = apiError.EncodeError(w, apiError.UserNotFound, "user not found", requestID)
		return
	case errors.Is(err, toggle.ErrAlreadyExists):
		_ = apiError.EncodeError(w, apiError.AlreadyExists, "already subscribed", requestID)
		return
	case errors.Is(err, toggle.ErrNotInCollection):
		_ = apiError.EncodeError(w, apiError.NotInCollection, "not subscribed", requestID)
		return
	case err != nil:
		env.Logger.ErrorContext(ctx, "Failed to toggle subscription", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if action == toggle.Remove {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	views, err := subscriptionViews(ctx, env, []database.ListSubscriptionsRow{{
		ID:        author.ID,
		Email:     author.Email,
		Username:  author.Username,
		FirstName: author.FirstName,
		LastName:  author.LastName,
	}}, recipesLimit(r.URL.Query()))
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to load author recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if err := mJson.WriteJSON(w, http.StatusCreated, views[0]); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}
