// Package token contains utilities for request identities carried in tokens.
package token

import (
	"context"
	"errors"
	"strings"

	"github.com/matt-dz/foodgram/internal/role"
)

var (
	ErrNoUserID       = errors.New("user id not found in context")
	ErrMalformedToken = errors.New("malformed authorization header")
)

// Anonymous is the viewer id of an unauthenticated request.
const Anonymous int64 = 0

type (
	userIDKeyType struct{}
	roleKeyType   struct{}
)

var (
	userIDKey userIDKeyType
	roleKey   roleKeyType
)

func UserIDWithCtx(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromCtx returns the authenticated user id or ErrNoUserID.
func UserIDFromCtx(ctx context.Context) (int64, error) {
	if v, ok := ctx.Value(userIDKey).(int64); ok && v != Anonymous {
		return v, nil
	}
	return Anonymous, ErrNoUserID
}

// ViewerFromCtx returns the user id, or Anonymous when the request carries none.
func ViewerFromCtx(ctx context.Context) int64 {
	id, _ := UserIDFromCtx(ctx)
	return id
}

func RoleWithCtx(ctx context.Context, r role.Role) context.Context {
	return context.WithValue(ctx, roleKey, r)
}

func RoleFromCtx(ctx context.Context) role.Role {
	if v, ok := ctx.Value(roleKey).(role.Role); ok {
		return v
	}
	return role.RoleUnknown
}

// FromAuthorizationHeader extracts the raw token from "Bearer <t>" or
// "Token <t>". An empty header returns "" and no error.
func FromAuthorizationHeader(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", nil
	}
	scheme, raw, ok := strings.Cut(header, " ")
	if !ok {
		return "", ErrMalformedToken
	}
	switch strings.ToLower(scheme) {
	case "bearer", "token":
	default:
		return "", ErrMalformedToken
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrMalformedToken
	}
	return raw, nil
}
