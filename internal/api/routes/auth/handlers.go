// Package auth contains handlers for the auth endpoints
package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/requestid"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/env"
	mJson "github.com/matt-dz/foodgram/internal/json"
	mJwt "github.com/matt-dz/foodgram/internal/jwt"
	"github.com/matt-dz/foodgram/internal/password"
	"github.com/matt-dz/foodgram/internal/role"
)

const maxBodySize = 1 << 16

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
} //	@name	LoginRequest

type LoginResponse struct {
	AuthToken string `json:"auth_token"`
} //	@name	LoginResponse

// HandleLogin godoc
//
//	@Summary		Obtain an access token.
//	@Description	Exchanges an email and password for a bearer token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	LoginResponse
//	@Failure		400		{object}	apiError.Error	"Invalid credentials"
//	@Failure		429		{object}	apiError.Error	"Too many requests"
//	@Router			/api/auth/token/login [POST]
func HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	// Decode JSON
	var request LoginRequest
	env.Logger.DebugContext(ctx, "Reading request body")
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	defer func() { _ = r.Body.Close() }()
	if err := mJson.DecodeJSON(&request, mJson.NewStrictDecoder(r.Body)); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(request); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to validate request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	// Look up user
	env.Logger.DebugContext(ctx, "Getting user by email")
	user, err := env.Database.GetUserByEmail(ctx, request.Email)
	if database.IsNotFound(err) {
		env.Logger.ErrorContext(ctx, "User does not exist")
		_ = apiError.EncodeError(w, apiError.InvalidCredentials, "invalid credentials", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to get user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Verify password
	env.Logger.DebugContext(ctx, "Verifying password")
	ok, err := password.Verify(request.Password, user.PasswordHash)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to verify password", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if !ok {
		env.Logger.ErrorContext(ctx, "Password mismatch", slog.Int64("user_id", user.ID))
		_ = apiError.EncodeError(w, apiError.InvalidCredentials, "invalid credentials", requestID)
		return
	}

	// Issue token
	secret := env.Config.AppSecret.Value
	if secret == nil {
		env.Logger.ErrorContext(ctx, "app secret not configured")
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	version := env.Config.AppSecret.Version
	if version == "" {
		version = mJwt.DefaultKID
	}
	env.Logger.DebugContext(ctx, "Generating access token")
	token, err := mJwt.GenerateJWT(mJwt.JWTParams{
		Role:   role.DBToRole(user.Role).String(),
		UserID: user.ID,
	}, []byte(*secret), version)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to generate access token", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if err := mJson.WriteJSON(w, http.StatusOK, LoginResponse{AuthToken: token}); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleLogout godoc
//
//	@Summary		Log out.
//	@Description	Tokens are stateless; clients discard theirs.
//	@Tags			Auth
//	@Success		204
//	@Failure		401	{object}	apiError.Error
//	@Security		BearerAuth
//	@Router			/api/auth/token/logout [POST]
func HandleLogout(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
