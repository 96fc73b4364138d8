// Package filestore stores recipe images behind a backend-agnostic interface.
package filestore

import (
	"context"
	"path"
	"strings"

	"github.com/google/uuid"
)

const (
	recipeImagesDir = "recipes/images"
)

const (
	DefaultURLPrefix = "/media"
)

type FileStore interface {
	// Save stores data under key, replacing any existing object.
	Save(ctx context.Context, key, contentType string, data []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// URL returns the client-facing location of key.
	URL(key string) string
}

// NewRecipeImageKey returns a fresh object key for a recipe image.
func NewRecipeImageKey(suffix string) string {
	return path.Join(recipeImagesDir, uuid.NewString()+suffix)
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}
