package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/requestid"
	"github.com/matt-dz/foodgram/internal/api/token"
	"github.com/matt-dz/foodgram/internal/config"
	"github.com/matt-dz/foodgram/internal/env"
	mJson "github.com/matt-dz/foodgram/internal/json"
	mJwt "github.com/matt-dz/foodgram/internal/jwt"
	"github.com/matt-dz/foodgram/internal/role"
)

const testSecret = "test-secret-32-bytes-long-123456"

func testEnv() *env.Env {
	e := env.Null()
	secret := config.AppSecretValue(testSecret)
	e.Config.AppSecret = config.AppSecret{Value: &secret, Version: mJwt.DefaultKID}
	return e
}

func signToken(t *testing.T, userID int64, r role.Role) string {
	t.Helper()
	raw, err := mJwt.GenerateJWT(mJwt.JWTParams{UserID: userID, Role: r.String()},
		[]byte(testSecret), mJwt.DefaultKID)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return raw
}

func expiredToken(t *testing.T) string {
	t.Helper()
	past := time.Now().Add(-48 * time.Hour)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "7",
		"iss":  "foodgram",
		"role": "user",
		"iat":  past.Unix(),
		"exp":  past.Add(time.Hour).Unix(),
	})
	tok.Header["kid"] = mJwt.DefaultKID
	raw, err := tok.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return raw
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiError.Error {
	t.Helper()
	var body apiError.Error
	if err := mJson.DecodeJSON(&body, mJson.NewStrictDecoder(rec.Body)); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	return body
}

func TestAddRequestID(t *testing.T) {
	var seen string
	handler := AddRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.ExtractRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatal("expected request id in context")
	}
	if got := rec.Header().Get(requestid.Header); got != seen {
		t.Errorf("expected header %q, got %q", seen, got)
	}
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   apiError.ErrorCode
		wantUserID int64
		wantRole   role.Role
	}{
		{
			name:       "anonymous",
			wantStatus: http.StatusOK,
			wantRole:   role.RoleUnknown,
		},
		{
			name:       "bearer token",
			header:     "Bearer " + signToken(t, 7, role.RoleUser),
			wantStatus: http.StatusOK,
			wantUserID: 7,
			wantRole:   role.RoleUser,
		},
		{
			name:       "token scheme",
			header:     "Token " + signToken(t, 9, role.RoleAdmin),
			wantStatus: http.StatusOK,
			wantUserID: 9,
			wantRole:   role.RoleAdmin,
		},
		{
			name:       "malformed header",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiError.InvalidAccessToken,
		},
		{
			name:       "garbage token",
			header:     "Bearer not-a-jwt",
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiError.InvalidAccessToken,
		},
		{
			name:       "expired token",
			header:     "Bearer " + expiredToken(t),
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiError.ExpiredAccessToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int64
			var gotRole role.Role
			handler := InjectEnv(testEnv())(Authenticate(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					gotUserID = token.ViewerFromCtx(r.Context())
					gotRole = token.RoleFromCtx(r.Context())
				})))

			req := httptest.NewRequest(http.MethodGet, "/api/recipes", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantCode != "" {
				if body := decodeError(t, rec); body.Code != tt.wantCode {
					t.Errorf("expected code %q, got %q", tt.wantCode, body.Code)
				}
				return
			}
			if gotUserID != tt.wantUserID || gotRole != tt.wantRole {
				t.Errorf("expected identity %d/%s, got %d/%s",
					tt.wantUserID, tt.wantRole, gotUserID, gotRole)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		userID     int64
		userRole   role.Role
		required   role.Role
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name:       "anonymous",
			required:   role.RoleUser,
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiError.AuthenticationRequired,
		},
		{
			name:       "user on user route",
			userID:     7,
			userRole:   role.RoleUser,
			required:   role.RoleUser,
			wantStatus: http.StatusOK,
		},
		{
			name:       "user on admin route",
			userID:     7,
			userRole:   role.RoleUser,
			required:   role.RoleAdmin,
			wantStatus: http.StatusForbidden,
			wantCode:   apiError.InsufficientPermissions,
		},
		{
			name:       "admin on admin route",
			userID:     1,
			userRole:   role.RoleAdmin,
			required:   role.RoleAdmin,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RequireRole(tt.required)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

			req := httptest.NewRequest(http.MethodPost, "/api/admin/tags", nil)
			ctx := req.Context()
			if tt.userID != 0 {
				ctx = token.UserIDWithCtx(ctx, tt.userID)
				ctx = token.RoleWithCtx(ctx, tt.userRole)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req.WithContext(ctx))

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantCode != "" {
				if body := decodeError(t, rec); body.Code != tt.wantCode {
					t.Errorf("expected code %q, got %q", tt.wantCode, body.Code)
				}
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	handler := RateLimit(1, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for i, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/token/login", nil)
		req.RemoteAddr = "10.0.0.1:" + strconv.Itoa(1000+i)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != want {
			t.Errorf("request %d: expected %d, got %d", i, want, rec.Code)
		}
	}
}
