// Package importer loads reference data (ingredients and tags) from CSV files.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/matt-dz/foodgram/internal/database"
)

var ErrMalformedRow = errors.New("malformed row")

// Result counts rows read and rows that created a new record. Rows matching
// an existing record are skipped.
type Result struct {
	Read    int
	Created int
}

// Ingredients reads `name,measurement_unit` rows after a header row.
func Ingredients(ctx context.Context, q database.Querier, r io.Reader) (Result, error) {
	return load(r, 2, func(rec []string) (int64, error) {
		return q.CreateIngredientIfAbsent(ctx, database.CreateIngredientIfAbsentParams{
			Name:            rec[0],
			MeasurementUnit: rec[1],
		})
	})
}

// Tags reads `name,color,slug` rows after a header row. An empty slug is
// stored as NULL.
func Tags(ctx context.Context, q database.Querier, r io.Reader) (Result, error) {
	return load(r, 3, func(rec []string) (int64, error) {
		return q.CreateTagIfAbsent(ctx, database.CreateTagIfAbsentParams{
			Name:  rec[0],
			Color: rec[1],
			Slug:  pgtype.Text{String: rec[2], Valid: rec[2] != ""},
		})
	})
}

func load(r io.Reader, columns int, insert func(rec []string) (int64, error)) (Result, error) {
	var res Result

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	// header
	if _, err := reader.Read(); errors.Is(err, io.EOF) {
		return res, nil
	} else if err != nil {
		return res, fmt.Errorf("reading header: %w", err)
	}

	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return res, nil
		} else if err != nil {
			return res, fmt.Errorf("reading csv: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if len(rec) < columns {
			return res, fmt.Errorf("line %d: expected %d columns, got %d: %w", line, columns, len(rec), ErrMalformedRow)
		}
		rec = rec[:columns]
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		if rec[0] == "" {
			return res, fmt.Errorf("line %d: empty name: %w", line, ErrMalformedRow)
		}

		res.Read++
		n, err := insert(rec)
		if err != nil {
			return res, fmt.Errorf("line %d: inserting %q: %w", line, rec[0], err)
		}
		res.Created += int(n)
	}
}
