// Package middleware contains middleware functions for the API
package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/httprate"
	"github.com/golang-jwt/jwt/v5"

	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/requestid"
	"github.com/matt-dz/foodgram/internal/api/token"
	"github.com/matt-dz/foodgram/internal/env"
	mJwt "github.com/matt-dz/foodgram/internal/jwt"
	"github.com/matt-dz/foodgram/internal/log"
	"github.com/matt-dz/foodgram/internal/metrics"
	"github.com/matt-dz/foodgram/internal/role"
)

const (
	corsMaxAge = 86400
)

// InjectEnv injects an environment struct into the request context.
func InjectEnv(environment *env.Env) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(env.WithCtx(r.Context(), environment)))
		})
	}
}

func LogRequest(logger *slog.Logger) func(http.Handler) http.Handler {
	return httplog.RequestLogger(logger, &httplog.Options{
		Level: slog.LevelInfo,
		LogExtraAttrs: func(r *http.Request, reqBody string, respStatus int) []slog.Attr {
			if id := requestid.ExtractRequestID(r.Context()); id != "" {
				return []slog.Attr{slog.String("request_id", id)}
			}
			return []slog.Attr{slog.String("request_id", "N/A")}
		},
	})
}

// AddRequestID tags the request with a fresh ULID, both in the context and
// in the X-Request-Id response header.
func AddRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := requestid.New()
		w.Header().Set(requestid.Header, requestID)
		r = r.WithContext(log.AppendCtx(r.Context(), slog.String("request_id", requestID)))
		r = r.WithContext(requestid.InjectRequestID(r.Context(), requestID))
		next.ServeHTTP(w, r)
	})
}

// AddCors answers preflight requests and sets CORS headers for origins.
func AddCors(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{requestid.Header, "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	})
}

// RecordMetrics counts requests by chi route pattern rather than raw path.
func RecordMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		var route string
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.RecordHTTPRequest(r.Method, route, status, time.Since(start))
	})
}

// RateLimit limits requests per client IP and answers with the API error body.
func RateLimit(requests int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(requests, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			requestID := requestid.ExtractRequestID(r.Context())
			_ = apiError.EncodeError(w, apiError.TooManyRequests, "too many requests", requestID)
		}),
	)
}

// Authenticate resolves the Authorization header into an identity. Requests
// without the header continue anonymously; a header that does not carry a
// valid token is rejected.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		env := env.EnvFromCtx(ctx)
		requestID := requestid.ExtractRequestID(ctx)

		rawToken, err := token.FromAuthorizationHeader(r.Header.Get("Authorization"))
		if err != nil {
			env.Logger.ErrorContext(ctx, "malformed authorization header", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
			return
		}
		if rawToken == "" {
			next.ServeHTTP(w, r)
			return
		}

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

		params, err := mJwt.ValidateJWT(rawToken, version, []byte(*secret))
		if errors.Is(err, jwt.ErrTokenExpired) {
			env.Logger.ErrorContext(ctx, "access token expired", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.ExpiredAccessToken, "access token expired", requestID)
			return
		} else if err != nil {
			env.Logger.ErrorContext(ctx, "invalid access token", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
			return
		}

		ctx = log.AppendCtx(ctx, slog.Int64("user_id", params.UserID))
		ctx = token.UserIDWithCtx(ctx, params.UserID)
		ctx = token.RoleWithCtx(ctx, role.ToRole(params.Role))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole rejects anonymous requests and identities below required.
// It must run after Authenticate.
func RequireRole(required role.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			env := env.EnvFromCtx(ctx)
			requestID := requestid.ExtractRequestID(ctx)

			if _, err := token.UserIDFromCtx(ctx); err != nil {
				env.Logger.DebugContext(ctx, "rejecting anonymous request")
				_ = apiError.EncodeError(w, apiError.AuthenticationRequired, "authentication required", requestID)
				return
			}

			userRole := token.RoleFromCtx(ctx)
			if !userRole.Satisfies(required) {
				env.Logger.ErrorContext(ctx, "user does not have required role",
					slog.String("user-role", userRole.String()),
					slog.String("required-role", required.String()))
				_ = apiError.EncodeError(w, apiError.InsufficientPermissions, "insufficient permissions", requestID)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireUser is RequireRole(role.RoleUser).
func RequireUser(next http.Handler) http.Handler {
	return RequireRole(role.RoleUser)(next)
}

// NotFound answers unmatched routes with the API error body.
func NotFound(w http.ResponseWriter, r *http.Request) {
	_ = apiError.EncodeError(w, apiError.NotFound, "resource not found", requestid.ExtractRequestID(r.Context()))
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	_ = apiError.EncodeError(w, apiError.MethodNotAllowed, "method not allowed",
		requestid.ExtractRequestID(r.Context()))
}
