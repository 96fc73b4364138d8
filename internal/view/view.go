// Package view holds the response shapes returned by the API and the
// conversions from database rows into them.
package view

import (
	"github.com/matt-dz/foodgram/internal/database"
)

type TagView struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Color string  `json:"color"`
	Slug  *string `json:"slug"`
} //	@name	Tag

type IngredientView struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
} //	@name	Ingredient

type RecipeIngredientView struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int32  `json:"amount"`
} //	@name	RecipeIngredient

type UserView struct {
	Email        string `json:"email"`
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
} //	@name	User

type RecipeMini struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int32  `json:"cooking_time"`
} //	@name	RecipeMini

type RecipeDetail struct {
	ID               int64                  `json:"id"`
	Tags             []TagView              `json:"tags"`
	Author           UserView               `json:"author"`
	Ingredients      []RecipeIngredientView `json:"ingredients"`
	IsFavorited      bool                   `json:"is_favorited"`
	IsInShoppingCart bool                   `json:"is_in_shopping_cart"`
	Name             string                 `json:"name"`
	Image            string                 `json:"image"`
	Text             string                 `json:"text"`
	CookingTime      int32                  `json:"cooking_time"`
} //	@name	Recipe

type SubscriptionView struct {
	UserView
	Recipes      []RecipeMini `json:"recipes"`
	RecipesCount int64        `json:"recipes_count"`
} //	@name	Subscription

// Page is the paginated envelope of list endpoints.
type Page[T any] struct {
	Count   int64 `json:"count"`
	Results []T   `json:"results"`
}

// ImageURL resolves a stored image key into a client-facing URL.
type ImageURL func(key string) string

func Tag(t database.Tag) TagView {
	v := TagView{ID: t.ID, Name: t.Name, Color: t.Color}
	if t.Slug.Valid {
		slug := t.Slug.String
		v.Slug = &slug
	}
	return v
}

func Tags(tags []database.Tag) []TagView {
	out := make([]TagView, 0, len(tags))
	for _, t := range tags {
		out = append(out, Tag(t))
	}
	return out
}

func Ingredient(i database.Ingredient) IngredientView {
	return IngredientView{ID: i.ID, Name: i.Name, MeasurementUnit: i.MeasurementUnit}
}

func Ingredients(ingredients []database.Ingredient) []IngredientView {
	out := make([]IngredientView, 0, len(ingredients))
	for _, i := range ingredients {
		out = append(out, Ingredient(i))
	}
	return out
}

func User(u database.User, isSubscribed bool) UserView {
	return UserView{
		Email:        u.Email,
		ID:           u.ID,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: isSubscribed,
	}
}

func UserFromRow(r database.ListUsersRow) UserView {
	return UserView{
		Email:        r.Email,
		ID:           r.ID,
		Username:     r.Username,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		IsSubscribed: r.IsSubscribed,
	}
}

func Mini(r database.Recipe, image ImageURL) RecipeMini {
	return RecipeMini{ID: r.ID, Name: r.Name, Image: image(r.Image), CookingTime: r.CookingTime}
}
