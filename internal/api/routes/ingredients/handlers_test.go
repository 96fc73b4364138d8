package ingredients

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"go.uber.org/mock/gomock"

	"github.com/matt-dz/foodgram/internal/api/middleware"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/env"
)

func TestHandleListIngredients(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPrefix string
	}{
		{name: "no filter", query: "", wantPrefix: ""},
		{name: "prefix", query: "?name=sa", wantPrefix: "sa"},
		{name: "wildcards are escaped", query: "?name=50%25_", wantPrefix: `50\%\_`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDB := database.NewMockQuerier(ctrl)
			mockDB.EXPECT().ListIngredients(gomock.Any(), tt.wantPrefix).
				Return([]database.Ingredient{{ID: 1, Name: "Salt", MeasurementUnit: "g"}}, nil)

			e := env.Null()
			e.Database = database.NewMockStore(mockDB)
			handler := middleware.InjectEnv(e)(http.HandlerFunc(HandleListIngredients))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ingredients"+tt.query, nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			want := `[{"id":1,"name":"Salt","measurement_unit":"g"}]`
			if rec.Body.String() != want {
				t.Errorf("expected %s, got %s", want, rec.Body.String())
			}
		})
	}
}

func TestHandleGetIngredient(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(*database.MockQuerier)
		wantStatus int
	}{
		{
			name: "found",
			path: "/api/ingredients/1",
			setup: func(m *database.MockQuerier) {
				m.EXPECT().GetIngredient(gomock.Any(), int64(1)).
					Return(database.Ingredient{ID: 1, Name: "Salt", MeasurementUnit: "g"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing",
			path: "/api/ingredients/2",
			setup: func(m *database.MockQuerier) {
				m.EXPECT().GetIngredient(gomock.Any(), int64(2)).Return(database.Ingredient{}, pgx.ErrNoRows)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "bad id",
			path:       "/api/ingredients/x",
			setup:      func(*database.MockQuerier) {},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDB := database.NewMockQuerier(ctrl)
			tt.setup(mockDB)

			e := env.Null()
			e.Database = database.NewMockStore(mockDB)
			router := chi.NewRouter()
			router.Use(middleware.InjectEnv(e))
			router.Get("/api/ingredients/{id}", HandleGetIngredient)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}
