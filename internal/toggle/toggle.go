// Package toggle adds and removes membership rows: favorites, the shopping
// cart and author subscriptions.
package toggle

import (
	"context"
	"errors"
	"fmt"

	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/metrics"
)

type Action string

const (
	Add    Action = "add"
	Remove Action = "remove"
)

const (
	collectionFavorites     = "favorites"
	collectionShoppingCart  = "shopping_cart"
	collectionSubscriptions = "subscriptions"
)

var (
	ErrAlreadyExists    = errors.New("already in collection")
	ErrNotInCollection  = errors.New("not in collection")
	ErrSelfSubscription = errors.New("cannot subscribe to yourself")
	ErrTargetNotFound   = errors.New("target not found")
)

type recipeOps struct {
	collection string
	add        func(context.Context, database.Querier, int64, int64) (int64, error)
	remove     func(context.Context, database.Querier, int64, int64) (int64, error)
}

var favorites = recipeOps{
	collection: collectionFavorites,
	add: func(ctx context.Context, q database.Querier, userID, recipeID int64) (int64, error) {
		return q.AddFavorite(ctx, database.AddFavoriteParams{UserID: userID, RecipeID: recipeID})
	},
	remove: func(ctx context.Context, q database.Querier, userID, recipeID int64) (int64, error) {
		return q.RemoveFavorite(ctx, database.RemoveFavoriteParams{UserID: userID, RecipeID: recipeID})
	},
}

var shoppingCart = recipeOps{
	collection: collectionShoppingCart,
	add: func(ctx context.Context, q database.Querier, userID, recipeID int64) (int64, error) {
		return q.AddToShoppingCart(ctx, database.AddToShoppingCartParams{UserID: userID, RecipeID: recipeID})
	},
	remove: func(ctx context.Context, q database.Querier, userID, recipeID int64) (int64, error) {
		return q.RemoveFromShoppingCart(ctx, database.RemoveFromShoppingCartParams{UserID: userID, RecipeID: recipeID})
	},
}

// Favorite adds or removes recipeID from the favorites of userID and
// returns the recipe.
func Favorite(ctx context.Context, q database.Querier, userID, recipeID int64, action Action) (database.Recipe, error) {
	return toggleRecipe(ctx, q, favorites, userID, recipeID, action)
}

// ShoppingCart adds or removes recipeID from the cart of userID and
// returns the recipe.
func ShoppingCart(ctx context.Context, q database.Querier, userID, recipeID int64, action Action) (database.Recipe, error) {
	return toggleRecipe(ctx, q, shoppingCart, userID, recipeID, action)
}

func toggleRecipe(
	ctx context.Context,
	q database.Querier,
	ops recipeOps,
	userID, recipeID int64,
	action Action,
) (database.Recipe, error) {
	recipe, err := q.GetRecipe(ctx, recipeID)
	if database.IsNotFound(err) {
		return database.Recipe{}, record(ops.collection, action, ErrTargetNotFound)
	} else if err != nil {
		return database.Recipe{}, fmt.Errorf("getting recipe: %w", err)
	}

	err = apply(ctx, q, userID, recipeID, action, ops.add, ops.remove)
	return recipe, record(ops.collection, action, err)
}

// Subscription follows or unfollows authorID on behalf of userID and
// returns the author.
func Subscription(ctx context.Context, q database.Querier, userID, authorID int64, action Action) (database.User, error) {
	if userID == authorID {
		return database.User{}, record(collectionSubscriptions, action, ErrSelfSubscription)
	}

	author, err := q.GetUser(ctx, authorID)
	if database.IsNotFound(err) {
		return database.User{}, record(collectionSubscriptions, action, ErrTargetNotFound)
	} else if err != nil {
		return database.User{}, fmt.Errorf("getting author: %w", err)
	}

	err = apply(ctx, q, userID, authorID, action,
		func(ctx context.Context, q database.Querier, userID, authorID int64) (int64, error) {
			return q.Subscribe(ctx, database.SubscribeParams{UserID: userID, AuthorID: authorID})
		},
		func(ctx context.Context, q database.Querier, userID, authorID int64) (int64, error) {
			return q.Unsubscribe(ctx, database.UnsubscribeParams{UserID: userID, AuthorID: authorID})
		},
	)
	if database.IsCheckViolation(err, database.ConstraintSubscriptionSelf) {
		err = ErrSelfSubscription
	}
	return author, record(collectionSubscriptions, action, err)
}

func apply(
	ctx context.Context,
	q database.Querier,
	userID, targetID int64,
	action Action,
	add, remove func(context.Context, database.Querier, int64, int64) (int64, error),
) error {
	switch action {
	case Add:
		rows, err := add(ctx, q, userID, targetID)
		if database.IsForeignKeyViolation(err, "") {
			return ErrTargetNotFound
		} else if err != nil {
			return fmt.Errorf("inserting: %w", err)
		}
		if rows == 0 {
			return ErrAlreadyExists
		}
	case Remove:
		rows, err := remove(ctx, q, userID, targetID)
		if err != nil {
			return fmt.Errorf("deleting: %w", err)
		}
		if rows == 0 {
			return ErrNotInCollection
		}
	default:
		return fmt.Errorf("unknown action %q", action)
	}
	return nil
}

func record(collection string, action Action, err error) error {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrAlreadyExists):
		outcome = "already_exists"
	case errors.Is(err, ErrNotInCollection):
		outcome = "not_in_collection"
	case errors.Is(err, ErrSelfSubscription):
		outcome = "self_subscription"
	case errors.Is(err, ErrTargetNotFound):
		outcome = "not_found"
	default:
		outcome = "error"
	}
	metrics.RecordToggle(collection, string(action), outcome)
	return err
}
