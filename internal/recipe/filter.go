package recipe

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/pagination"
)

const (
	paramTags             = "tags"
	paramAuthor           = "author"
	paramIsFavorited      = "is_favorited"
	paramIsInShoppingCart = "is_in_shopping_cart"
)

// Filter is the parsed form of the recipe list query string. Values that
// fail to parse are dropped, as if the parameter were absent.
type Filter struct {
	Tags             []string
	AuthorID         *int64
	IsFavorited      bool
	IsInShoppingCart bool
	Page             pagination.Page
}

func ParseFilter(q url.Values) Filter {
	f := Filter{
		Tags: []string{},
		Page: pagination.Parse(q, pagination.DefaultLimit),
	}

	for _, slug := range q[paramTags] {
		if slug = strings.TrimSpace(slug); slug != "" {
			f.Tags = append(f.Tags, slug)
		}
	}
	if raw := q.Get(paramAuthor); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			f.AuthorID = &id
		}
	}
	f.IsFavorited = parseFlag(q.Get(paramIsFavorited))
	f.IsInShoppingCart = parseFlag(q.Get(paramIsInShoppingCart))

	return f
}

// parseFlag accepts 1/0/true/false. Anything else imposes no constraint.
func parseFlag(raw string) bool {
	switch strings.ToLower(raw) {
	case "1", "true":
		return true
	default:
		return false
	}
}

// Params builds the list and count query arguments for viewerID.
// empty is true when the result is known to be empty without querying,
// which happens when an anonymous viewer asks for their own collections.
func (f Filter) Params(viewerID int64) (
	list database.ListRecipesParams,
	count database.CountRecipesParams,
	empty bool,
) {
	if viewerID == 0 && (f.IsFavorited || f.IsInShoppingCart) {
		return list, count, true
	}

	var author, favoritedBy, inCartOf pgtype.Int8
	if f.AuthorID != nil {
		author = pgtype.Int8{Int64: *f.AuthorID, Valid: true}
	}
	if f.IsFavorited {
		favoritedBy = pgtype.Int8{Int64: viewerID, Valid: true}
	}
	if f.IsInShoppingCart {
		inCartOf = pgtype.Int8{Int64: viewerID, Valid: true}
	}
	tags := f.Tags
	if tags == nil {
		tags = []string{}
	}

	list = database.ListRecipesParams{
		ViewerID:    viewerID,
		AuthorID:    author,
		TagSlugs:    tags,
		FavoritedBy: favoritedBy,
		InCartOf:    inCartOf,
		PageLimit:   f.Page.Limit,
		PageOffset:  f.Page.Offset(),
	}
	count = database.CountRecipesParams{
		AuthorID:    author,
		TagSlugs:    tags,
		FavoritedBy: favoritedBy,
		InCartOf:    inCartOf,
	}
	return list, count, false
}
