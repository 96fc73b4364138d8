// Package setup is responsible for setting up components.
package setup

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matt-dz/foodgram/internal/config"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/filestore"
	"github.com/matt-dz/foodgram/internal/garage"
	mHttp "github.com/matt-dz/foodgram/internal/http"
	"github.com/matt-dz/foodgram/internal/password"
)

// Database connects to Postgres and applies the schema on a fresh database.
func Database(ctx context.Context, conf config.Config) (*database.Database, error) {
	dsn := (&url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(conf.Database.User, conf.Database.Password),
		Host:   fmt.Sprintf("%s:%d", conf.Database.Host, conf.Database.Port),
		Path:   "/" + conf.Database.Database,
	}).String()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db := database.NewDatabase(pool)
	if err := database.EnsureSchema(ctx, db); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	return db, nil
}

// FileStore builds the configured image backend. For minio the Garage
// layout is bootstrapped first when admin credentials are configured.
func FileStore(
	ctx context.Context,
	conf config.Config,
	doer mHttp.HTTPDoer,
	logger *slog.Logger,
) (filestore.FileStore, error) {
	switch conf.Storage.Backend {
	case config.StorageMinio:
		if g := conf.Storage.Garage; g.AdminHost != "" {
			logger.InfoContext(ctx, "initializing garage layout", slog.String("host", g.AdminHost))
			if err := garage.NewClient(doer, g.AdminHost, g.AdminToken).InitializeLayout(ctx); err != nil {
				return nil, fmt.Errorf("initializing garage layout: %w", err)
			}
		}

		m := conf.Storage.Minio
		store, err := filestore.NewMinio(filestore.MinioConfig{
			Endpoint:  m.Endpoint,
			AccessKey: m.AccessKey,
			SecretKey: m.SecretKey,
			Bucket:    m.Bucket,
			UseSSL:    m.UseSSL,
			PublicURL: m.PublicURL,
		})
		if err != nil {
			return nil, err
		}
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return store, nil

	default:
		volume, err := filepath.Abs(conf.Storage.Disk.Volume)
		if err != nil {
			return nil, fmt.Errorf("resolving storage volume: %w", err)
		}
		return filestore.NewDisk(volume, conf.Storage.Disk.URLPrefix, conf.HostOrigin), nil
	}
}

// Admin creates the configured admin account when no admin exists yet.
// Requires env.Database.
func Admin(ctx context.Context, env *env.Env) error {
	count, err := env.Database.GetAdminCount(ctx)
	if err != nil {
		return fmt.Errorf("getting admin count: %w", err)
	}
	if count > 0 {
		env.Logger.InfoContext(ctx, "admin already setup, skipping setup")
		return nil
	}

	admin := env.Config.Admin
	if admin.Email == "" || admin.Password == "" {
		env.Logger.InfoContext(ctx, "admin credentials not configured, skipping admin setup")
		return nil
	}

	hash, err := password.Hash(string(admin.Password), password.DefaultParams)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	_, err = env.Database.CreateUser(ctx, database.CreateUserParams{
		Email:        admin.Email,
		Username:     admin.Username,
		FirstName:    admin.FirstName,
		LastName:     admin.LastName,
		PasswordHash: hash,
		Role:         database.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("creating admin: %w", err)
	}
	env.Logger.InfoContext(ctx, "successfully setup admin", slog.String("email", admin.Email))

	return nil
}
