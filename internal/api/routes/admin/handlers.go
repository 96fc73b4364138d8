// Package admin contains handlers for the admin endpoints
package admin

import (
	"log/slog"
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgtype"

	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/requestid"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/env"
	mJson "github.com/matt-dz/foodgram/internal/json"
	"github.com/matt-dz/foodgram/internal/view"
)

const maxBodySize = 1 << 16

var slugRe = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRe.MatchString(fl.Field().String())
	})
	return v
}

type CreateTagRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Color string `json:"color" validate:"required,hexcolor,max=7"`
	Slug  string `json:"slug" validate:"omitempty,max=200,slug"`
} //	@name	CreateTagRequest

type CreateIngredientRequest struct {
	Name            string `json:"name" validate:"required,max=200"`
	MeasurementUnit string `json:"measurement_unit" validate:"required,max=200"`
} //	@name	CreateIngredientRequest

// HandleCreateTag godoc
//
//	@Summary	Create a tag.
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateTagRequest	true	"Tag"
//	@Success	201		{object}	view.TagView
//	@Failure	400		{object}	apiError.Error
//	@Failure	403		{object}	apiError.Error
//	@Failure	409		{object}	apiError.Error	"Name or slug taken"
//	@Security	BearerAuth
//	@Router		/api/admin/tags [POST]
func HandleCreateTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	var request CreateTagRequest
	if !decodeBody(w, r, &request) {
		return
	}

	env.Logger.DebugContext(ctx, "Creating tag", slog.String("name", request.Name))
	tag, err := env.Database.CreateTag(ctx, database.CreateTagParams{
		Name:  request.Name,
		Color: request.Color,
		Slug:  pgtype.Text{String: request.Slug, Valid: request.Slug != ""},
	})
	switch {
	case database.IsUniqueViolation(err, database.ConstraintTagName),
		database.IsUniqueViolation(err, database.ConstraintTagSlug):
		env.Logger.ErrorContext(ctx, "Tag already exists", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.TagConflict, "tag already exists", requestID)
		return
	case err != nil:
		env.Logger.ErrorContext(ctx, "Failed to create tag", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if err := mJson.WriteJSON(w, http.StatusCreated, view.Tag(tag)); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleCreateIngredient godoc
//
//	@Summary	Create an ingredient.
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateIngredientRequest	true	"Ingredient"
//	@Success	201		{object}	view.IngredientView
//	@Failure	400		{object}	apiError.Error
//	@Failure	403		{object}	apiError.Error
//	@Failure	409		{object}	apiError.Error	"Ingredient with this unit exists"
//	@Security	BearerAuth
//	@Router		/api/admin/ingredients [POST]
func HandleCreateIngredient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	var request CreateIngredientRequest
	if !decodeBody(w, r, &request) {
		return
	}

	env.Logger.DebugContext(ctx, "Creating ingredient", slog.String("name", request.Name))
	ingredient, err := env.Database.CreateIngredient(ctx, database.CreateIngredientParams{
		Name:            request.Name,
		MeasurementUnit: request.MeasurementUnit,
	})
	if database.IsUniqueViolation(err, database.ConstraintIngredientNameUnit) {
		env.Logger.ErrorContext(ctx, "Ingredient already exists", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.IngredientConflict, "ingredient already exists", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to create ingredient", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if err := mJson.WriteJSON(w, http.StatusCreated, view.Ingredient(ingredient)); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	defer func() { _ = r.Body.Close() }()
	if err := mJson.DecodeJSON(dst, mJson.NewStrictDecoder(r.Body)); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return false
	}
	if err := newValidator().Struct(dst); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to validate request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return false
	}
	return true
}
