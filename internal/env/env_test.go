package env

import (
	"context"
	"testing"

	"github.com/matt-dz/foodgram/internal/config"
)

func TestEnvFromCtx(t *testing.T) {
	fallback := EnvFromCtx(context.Background())
	if fallback == nil || fallback.Logger == nil {
		t.Fatal("expected a null env with a logger")
	}

	e := New(nil)
	e.Config = config.Config{Env: config.EnvProd}
	got := EnvFromCtx(WithCtx(context.Background(), e))
	if got != e {
		t.Errorf("expected the injected env, got %+v", got)
	}
	if !got.Config.IsProd() {
		t.Error("expected config to travel with the env")
	}
}
