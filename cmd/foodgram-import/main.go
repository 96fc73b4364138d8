// Command foodgram-import loads ingredients and tags from CSV files.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/matt-dz/foodgram/internal/config"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/importer"
	"github.com/matt-dz/foodgram/internal/log"
	"github.com/matt-dz/foodgram/internal/setup"
)

type loader func(context.Context, database.Querier, io.Reader) (importer.Result, error)

func importFile(ctx context.Context, db database.Store, path string, load loader) (importer.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return importer.Result{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var res importer.Result
	err = db.ExecTx(ctx, func(q database.Querier) error {
		res, err = load(ctx, q, f)
		return err
	})
	return res, err
}

func main() {
	ingredients := flag.String("ingredients", "data/ingredients.csv", "ingredients CSV (name,measurement_unit)")
	tags := flag.String("tags", "data/tags.csv", "tags CSV (name,color,slug)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()
	logger := log.New(&slog.HandlerOptions{Level: slog.LevelInfo})

	conf, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := setup.Database(ctx, conf)
	if err != nil {
		logger.Error("failed to setup database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Pool.Close()

	for _, job := range []struct {
		kind string
		path string
		load loader
	}{
		{kind: "ingredients", path: *ingredients, load: importer.Ingredients},
		{kind: "tags", path: *tags, load: importer.Tags},
	} {
		if job.path == "" {
			continue
		}
		res, err := importFile(ctx, db, job.path, job.load)
		if err != nil {
			logger.Error("import failed", slog.String("kind", job.kind), slog.Any("error", err))
			db.Pool.Close()
			os.Exit(1)
		}
		logger.Info("import finished", slog.String("kind", job.kind),
			slog.Int("read", res.Read), slog.Int("created", res.Created))
	}
}
