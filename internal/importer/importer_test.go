package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/mock/gomock"

	"github.com/matt-dz/foodgram/internal/database"
)

func TestIngredients(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := database.NewMockQuerier(ctrl)

	gomock.InOrder(
		mockDB.EXPECT().CreateIngredientIfAbsent(gomock.Any(), database.CreateIngredientIfAbsentParams{
			Name: "salt", MeasurementUnit: "g",
		}).Return(int64(1), nil),
		mockDB.EXPECT().CreateIngredientIfAbsent(gomock.Any(), database.CreateIngredientIfAbsentParams{
			Name: "milk", MeasurementUnit: "ml",
		}).Return(int64(0), nil),
	)

	csv := "name,measurement_unit\nsalt,g\n milk , ml\n"
	res, err := Ingredients(context.Background(), mockDB, strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Read != 2 || res.Created != 1 {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestTags(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := database.NewMockQuerier(ctrl)

	gomock.InOrder(
		mockDB.EXPECT().CreateTagIfAbsent(gomock.Any(), database.CreateTagIfAbsentParams{
			Name: "Breakfast", Color: "#E26C2D", Slug: pgtype.Text{String: "breakfast", Valid: true},
		}).Return(int64(1), nil),
		mockDB.EXPECT().CreateTagIfAbsent(gomock.Any(), database.CreateTagIfAbsentParams{
			Name: "Dinner", Color: "#8775D2", Slug: pgtype.Text{},
		}).Return(int64(1), nil),
	)

	csv := "name,color,slug\nBreakfast,#E26C2D,breakfast\nDinner,#8775D2,\n"
	res, err := Tags(context.Background(), mockDB, strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Read != 2 || res.Created != 2 {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		wantErr error
	}{
		{name: "empty file", csv: ""},
		{name: "header only", csv: "name,measurement_unit\n"},
		{name: "missing column", csv: "name,measurement_unit\nsalt\n", wantErr: ErrMalformedRow},
		{name: "empty name", csv: "name,measurement_unit\n,g\n", wantErr: ErrMalformedRow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDB := database.NewMockQuerier(ctrl)

			res, err := Ingredients(context.Background(), mockDB, strings.NewReader(tt.csv))
			if tt.wantErr == nil {
				if err != nil || res.Read != 0 {
					t.Errorf("expected nothing read, got %+v, %v", res, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadInsertError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := database.NewMockQuerier(ctrl)
	boom := errors.New("boom")
	mockDB.EXPECT().CreateIngredientIfAbsent(gomock.Any(), gomock.Any()).Return(int64(0), boom)

	_, err := Ingredients(context.Background(), mockDB, strings.NewReader("name,measurement_unit\nsalt,g\n"))
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped insert error, got %v", err)
	}
}
