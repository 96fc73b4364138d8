package view

import (
	"github.com/matt-dz/foodgram/internal/database"
)

// RecipeDetails assembles detail views for rows, attaching tags and
// ingredients by recipe id. Row order is preserved.
func RecipeDetails(
	rows []database.ListRecipesRow,
	tags []database.ListRecipeTagsRow,
	ingredients []database.ListRecipeIngredientsRow,
	image ImageURL,
) []RecipeDetail {
	tagsByRecipe := make(map[int64][]TagView, len(rows))
	for _, t := range tags {
		tagsByRecipe[t.RecipeID] = append(tagsByRecipe[t.RecipeID], Tag(database.Tag{
			ID: t.ID, Name: t.Name, Color: t.Color, Slug: t.Slug,
		}))
	}
	ingredientsByRecipe := make(map[int64][]RecipeIngredientView, len(rows))
	for _, i := range ingredients {
		ingredientsByRecipe[i.RecipeID] = append(ingredientsByRecipe[i.RecipeID], RecipeIngredientView{
			ID:              i.ID,
			Name:            i.Name,
			MeasurementUnit: i.MeasurementUnit,
			Amount:          i.Amount,
		})
	}

	out := make([]RecipeDetail, 0, len(rows))
	for _, r := range rows {
		d := RecipeDetail{
			ID: r.ID,
			Author: UserView{
				Email:        r.AuthorEmail,
				ID:           r.AuthorID,
				Username:     r.AuthorUsername,
				FirstName:    r.AuthorFirstName,
				LastName:     r.AuthorLastName,
				IsSubscribed: r.AuthorIsSubscribed,
			},
			Tags:             tagsByRecipe[r.ID],
			Ingredients:      ingredientsByRecipe[r.ID],
			IsFavorited:      r.IsFavorited,
			IsInShoppingCart: r.IsInShoppingCart,
			Name:             r.Name,
			Image:            image(r.Image),
			Text:             r.Text,
			CookingTime:      r.CookingTime,
		}
		if d.Tags == nil {
			d.Tags = []TagView{}
		}
		if d.Ingredients == nil {
			d.Ingredients = []RecipeIngredientView{}
		}
		out = append(out, d)
	}
	return out
}

// Subscriptions assembles subscription views; previews must already be
// limited per author.
func Subscriptions(
	authors []database.ListSubscriptionsRow,
	previews []database.ListAuthorRecipePreviewsRow,
	counts []database.CountRecipesByAuthorsRow,
	image ImageURL,
) []SubscriptionView {
	recipesByAuthor := make(map[int64][]RecipeMini, len(authors))
	for _, p := range previews {
		recipesByAuthor[p.AuthorID] = append(recipesByAuthor[p.AuthorID], RecipeMini{
			ID: p.ID, Name: p.Name, Image: image(p.Image), CookingTime: p.CookingTime,
		})
	}
	countByAuthor := make(map[int64]int64, len(counts))
	for _, c := range counts {
		countByAuthor[c.AuthorID] = c.RecipesCount
	}

	out := make([]SubscriptionView, 0, len(authors))
	for _, a := range authors {
		recipes := recipesByAuthor[a.ID]
		if recipes == nil {
			recipes = []RecipeMini{}
		}
		out = append(out, SubscriptionView{
			UserView: UserView{
				Email:        a.Email,
				ID:           a.ID,
				Username:     a.Username,
				FirstName:    a.FirstName,
				LastName:     a.LastName,
				IsSubscribed: true,
			},
			Recipes:      recipes,
			RecipesCount: countByAuthor[a.ID],
		})
	}
	return out
}
