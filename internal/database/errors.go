package database

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

// Constraint names from schema.sql that callers map to domain errors.
const (
	ConstraintUsersEmail         = "users_email_key"
	ConstraintUsersUsername      = "users_username_key"
	ConstraintIngredientNameUnit = "ingredients_name_unit_key"
	ConstraintTagName            = "tags_name_key"
	ConstraintTagSlug            = "tags_slug_key"
	ConstraintRecipeAuthorName   = "recipes_author_name_key"
	ConstraintSubscriptionSelf   = "subscriptions_not_self"
	ConstraintRecipeIngredientFK = "recipe_ingredients_ingredient_fkey"
	ConstraintRecipeTagFK        = "recipe_tags_tag_fkey"
)

func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func pgCode(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

// IsUniqueViolation reports whether err is a unique violation on constraint.
// An empty constraint matches any unique violation.
func IsUniqueViolation(err error, constraint string) bool {
	code, name := pgCode(err)
	return code == uniqueViolation && (constraint == "" || constraint == name)
}

// IsForeignKeyViolation reports whether err is a foreign key violation on
// constraint. An empty constraint matches any foreign key violation.
func IsForeignKeyViolation(err error, constraint string) bool {
	code, name := pgCode(err)
	return code == foreignKeyViolation && (constraint == "" || constraint == name)
}

func IsCheckViolation(err error, constraint string) bool {
	code, name := pgCode(err)
	return code == checkViolation && (constraint == "" || constraint == name)
}
