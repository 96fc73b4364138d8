// Package env provides a structure for managing application-wide dependencies.
package env

import (
	"context"
	"log/slog"

	"github.com/matt-dz/foodgram/internal/config"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/filestore"
	mHttp "github.com/matt-dz/foodgram/internal/http"
	"github.com/matt-dz/foodgram/internal/log"
)

type Env struct {
	Logger    *slog.Logger
	Database  database.Store
	FileStore filestore.FileStore
	HTTP      *mHttp.HTTP
	Config    config.Config
}

func New(logger *slog.Logger) *Env {
	if logger == nil {
		logger = log.NullLogger()
	}

	return &Env{
		Logger: logger,
	}
}

func Null() *Env {
	return New(nil)
}

type envKeyType struct{}

var envKey envKeyType

func WithCtx(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey, env)
}

// EnvFromCtx returns the Env stored in ctx, or a Null env when none was set.
func EnvFromCtx(ctx context.Context) *Env {
	if env, ok := ctx.Value(envKey).(*Env); ok && env != nil {
		return env
	}
	return Null()
}
