package recipes

import (
	"bytes"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"go.uber.org/mock/gomock"

	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/middleware"
	"github.com/matt-dz/foodgram/internal/api/token"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/filestore"
	mJson "github.com/matt-dz/foodgram/internal/json"
	"github.com/matt-dz/foodgram/internal/role"
	"github.com/matt-dz/foodgram/internal/view"
)

var pngImage = "data:image/png;base64," +
	base64.StdEncoding.EncodeToString([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))

type identity struct {
	userID int64
	role   role.Role
}

func newTestRouter(t *testing.T, who identity) (http.Handler, *database.MockQuerier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockDB := database.NewMockQuerier(ctrl)

	e := env.Null()
	e.Database = database.NewMockStore(mockDB)
	e.FileStore = filestore.NewDisk(t.TempDir(), "/media", "http://localhost:8080")

	router := chi.NewRouter()
	router.Use(middleware.InjectEnv(e))
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if who.userID != 0 {
				ctx = token.UserIDWithCtx(ctx, who.userID)
				ctx = token.RoleWithCtx(ctx, who.role)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	router.Get("/api/recipes", HandleListRecipes)
	router.Post("/api/recipes", HandleCreateRecipe)
	router.Get("/api/recipes/download_shopping_cart", HandleDownloadShoppingCart)
	router.Get("/api/recipes/{id}", HandleGetRecipe)
	router.Patch("/api/recipes/{id}", HandleUpdateRecipe)
	router.Delete("/api/recipes/{id}", HandleDeleteRecipe)
	router.Post("/api/recipes/{id}/favorite", HandleAddFavorite)
	router.Delete("/api/recipes/{id}/favorite", HandleRemoveFavorite)
	router.Post("/api/recipes/{id}/shopping_cart", HandleAddToShoppingCart)
	router.Delete("/api/recipes/{id}/shopping_cart", HandleRemoveFromShoppingCart)
	return router, mockDB
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := mJson.DecodeJSON(&out, mJson.NewStrictDecoder(bytes.NewReader(rec.Body.Bytes()))); err != nil {
		t.Fatalf("decoding %q: %v", rec.Body.String(), err)
	}
	return out
}

func expectDetail(mockDB *database.MockQuerier, id int64) {
	mockDB.EXPECT().GetRecipeDetail(gomock.Any(), gomock.Any()).
		Return(database.GetRecipeDetailRow{ID: id, AuthorID: 7, Name: "Soup", Image: "recipes/images/a.png"}, nil)
	mockDB.EXPECT().ListRecipeTags(gomock.Any(), []int64{id}).Return(nil, nil)
	mockDB.EXPECT().ListRecipeIngredients(gomock.Any(), []int64{id}).Return(nil, nil)
}

func TestHandleListRecipesAnonymousFavorites(t *testing.T) {
	router, _ := newTestRouter(t, identity{})

	rec := serve(router, http.MethodGet, "/api/recipes?is_favorited=1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	page := decode[view.Page[view.RecipeDetail]](t, rec)
	if page.Count != 0 || len(page.Results) != 0 {
		t.Errorf("expected empty page, got %+v", page)
	}
}

func TestHandleGetRecipeNotFound(t *testing.T) {
	tests := []struct {
		name   string
		target string
		setup  func(*database.MockQuerier)
	}{
		{
			name:   "missing row",
			target: "/api/recipes/99",
			setup: func(m *database.MockQuerier) {
				m.EXPECT().GetRecipeDetail(gomock.Any(), gomock.Any()).
					Return(database.GetRecipeDetailRow{}, pgx.ErrNoRows)
			},
		},
		{
			name:   "non-numeric id",
			target: "/api/recipes/soup",
			setup:  func(*database.MockQuerier) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockDB := newTestRouter(t, identity{})
			tt.setup(mockDB)

			rec := serve(router, http.MethodGet, tt.target, "")
			if rec.Code != http.StatusNotFound {
				t.Fatalf("expected 404, got %d", rec.Code)
			}
			if body := decode[apiError.Error](t, rec); body.Code != apiError.RecipeNotFound {
				t.Errorf("expected %q, got %q", apiError.RecipeNotFound, body.Code)
			}
		})
	}
}

func TestHandleCreateRecipe(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(*database.MockQuerier)
		wantStatus int
		wantCode   apiError.ErrorCode
		wantReason string
	}{
		{
			name: "created",
			body: `{"ingredients":[{"id":1,"amount":2}],"tags":[5],"image":"` + pngImage +
				`","name":"Soup","text":"Boil.","cooking_time":10}`,
			setup: func(m *database.MockQuerier) {
				m.EXPECT().ListIngredientsByIDs(gomock.Any(), []int64{1}).
					Return([]database.Ingredient{{ID: 1, Name: "Salt", MeasurementUnit: "g"}}, nil)
				m.EXPECT().ListTagsByIDs(gomock.Any(), []int64{5}).
					Return([]database.Tag{{ID: 5, Name: "Lunch", Color: "#E26C2D"}}, nil)
				m.EXPECT().RecipeNameTaken(gomock.Any(), gomock.Any()).Return(false, nil)
				m.EXPECT().CreateRecipe(gomock.Any(), gomock.Any()).Return(int64(3), nil)
				m.EXPECT().InsertRecipeTags(gomock.Any(), gomock.Any()).Return(nil)
				m.EXPECT().InsertRecipeIngredients(gomock.Any(), gomock.Any()).Return(int64(1), nil)
				expectDetail(m, 3)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate ingredient",
			body: `{"ingredients":[{"id":1,"amount":2},{"id":1,"amount":3}],"tags":[5],"image":"` + pngImage +
				`","name":"Soup","text":"Boil.","cooking_time":10}`,
			setup: func(m *database.MockQuerier) {
				m.EXPECT().ListIngredientsByIDs(gomock.Any(), []int64{1}).
					Return([]database.Ingredient{{ID: 1, Name: "Salt", MeasurementUnit: "g"}}, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.ValidationError,
			wantReason: "ingredient_duplicate",
		},
		{
			name: "zero ingredient id",
			body: `{"ingredients":[{"id":0,"amount":2}],"tags":[5],"image":"` + pngImage +
				`","name":"Soup","text":"Boil.","cooking_time":10}`,
			setup: func(m *database.MockQuerier) {
				m.EXPECT().ListIngredientsByIDs(gomock.Any(), []int64{0}).
					Return([]database.Ingredient{}, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.ValidationError,
			wantReason: "ingredient_not_found",
		},
		{
			name:       "missing cooking time",
			body:       `{"ingredients":[{"id":1,"amount":2}],"tags":[5],"image":"` + pngImage + `","name":"Soup","text":"Boil."}`,
			setup:      func(*database.MockQuerier) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.BadRequest,
		},
		{
			name: "unsupported image",
			body: `{"ingredients":[{"id":1,"amount":2}],"tags":[5],"image":"data:image/png;base64,` +
				base64.StdEncoding.EncodeToString([]byte("plain text")) + `","name":"Soup","text":"Boil.","cooking_time":10}`,
			setup:      func(*database.MockQuerier) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.UnsupportedImage,
		},
		{
			name:       "unknown field",
			body:       `{"title":"Soup"}`,
			setup:      func(*database.MockQuerier) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.BadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockDB := newTestRouter(t, identity{userID: 7, role: role.RoleUser})
			tt.setup(mockDB)

			rec := serve(router, http.MethodPost, "/api/recipes", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if tt.wantCode == "" {
				detail := decode[view.RecipeDetail](t, rec)
				if detail.ID != 3 || !strings.HasPrefix(detail.Image, "http://localhost:8080/media/") {
					t.Errorf("unexpected detail %+v", detail)
				}
				return
			}
			body := decode[apiError.Error](t, rec)
			if body.Code != tt.wantCode || body.Reason != tt.wantReason {
				t.Errorf("expected %s/%s, got %s/%s", tt.wantCode, tt.wantReason, body.Code, body.Reason)
			}
		})
	}
}

func TestHandleUpdateRecipeNotOwned(t *testing.T) {
	router, mockDB := newTestRouter(t, identity{userID: 8, role: role.RoleUser})
	mockDB.EXPECT().GetRecipe(gomock.Any(), int64(3)).Return(database.Recipe{ID: 3, AuthorID: 7}, nil)

	rec := serve(router, http.MethodPatch, "/api/recipes/3", `{"ingredients":[{"id":1,"amount":1}],"tags":[5]}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if body := decode[apiError.Error](t, rec); body.Code != apiError.RecipeNotOwned {
		t.Errorf("expected %q, got %q", apiError.RecipeNotOwned, body.Code)
	}
}

func TestHandleDeleteRecipe(t *testing.T) {
	router, mockDB := newTestRouter(t, identity{userID: 1, role: role.RoleAdmin})
	mockDB.EXPECT().GetRecipe(gomock.Any(), int64(3)).
		Return(database.Recipe{ID: 3, AuthorID: 7, Image: "recipes/images/a.png"}, nil)
	mockDB.EXPECT().DeleteRecipe(gomock.Any(), int64(3)).Return(int64(1), nil)

	rec := serve(router, http.MethodDelete, "/api/recipes/3", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestFavoriteToggleSequence(t *testing.T) {
	router, mockDB := newTestRouter(t, identity{userID: 7, role: role.RoleUser})
	mockDB.EXPECT().GetRecipe(gomock.Any(), int64(3)).
		Return(database.Recipe{ID: 3, Name: "Soup", Image: "recipes/images/a.png", CookingTime: 10}, nil).
		AnyTimes()
	gomock.InOrder(
		mockDB.EXPECT().AddFavorite(gomock.Any(), gomock.Any()).Return(int64(1), nil),
		mockDB.EXPECT().AddFavorite(gomock.Any(), gomock.Any()).Return(int64(0), nil),
		mockDB.EXPECT().RemoveFavorite(gomock.Any(), gomock.Any()).Return(int64(1), nil),
		mockDB.EXPECT().RemoveFavorite(gomock.Any(), gomock.Any()).Return(int64(0), nil),
	)

	steps := []struct {
		method     string
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{http.MethodPost, http.StatusCreated, ""},
		{http.MethodPost, http.StatusBadRequest, apiError.AlreadyExists},
		{http.MethodDelete, http.StatusNoContent, ""},
		{http.MethodDelete, http.StatusBadRequest, apiError.NotInCollection},
	}
	for i, step := range steps {
		rec := serve(router, step.method, "/api/recipes/3/favorite", "")
		if rec.Code != step.wantStatus {
			t.Fatalf("step %d: expected %d, got %d", i, step.wantStatus, rec.Code)
		}
		if step.wantCode != "" {
			if body := decode[apiError.Error](t, rec); body.Code != step.wantCode {
				t.Errorf("step %d: expected %q, got %q", i, step.wantCode, body.Code)
			}
		} else if step.wantStatus == http.StatusCreated {
			if mini := decode[view.RecipeMini](t, rec); mini.ID != 3 || mini.CookingTime != 10 {
				t.Errorf("step %d: unexpected body %+v", i, mini)
			}
		}
	}
}

func TestHandleDownloadShoppingCart(t *testing.T) {
	router, mockDB := newTestRouter(t, identity{userID: 7, role: role.RoleUser})
	mockDB.EXPECT().GetUser(gomock.Any(), int64(7)).Return(database.User{ID: 7, Username: "alice"}, nil)
	mockDB.EXPECT().ListShoppingCartIngredients(gomock.Any(), int64(7)).
		Return([]database.ListShoppingCartIngredientsRow{
			{RecipeID: 1, IngredientID: 10, Name: "Salt", MeasurementUnit: "g", Amount: 5},
			{RecipeID: 2, IngredientID: 10, Name: "Salt", MeasurementUnit: "g", Amount: 10},
			{RecipeID: 2, IngredientID: 11, Name: "Pepper", MeasurementUnit: "g", Amount: 2},
		}, nil)

	rec := serve(router, http.MethodGet, "/api/recipes/download_shopping_cart", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); got != "attachment; filename=data.txt" {
		t.Errorf("unexpected Content-Disposition %q", got)
	}
	want := "Shopping list for alice:\n1. Pepper (g) - 2\n2. Salt (g) - 15\n"
	if rec.Body.String() != want {
		t.Errorf("expected %q, got %q", want, rec.Body.String())
	}
}
