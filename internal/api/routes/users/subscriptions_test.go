package users

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/jackc/pgx/v5"
	"go.uber.org/mock/gomock"

	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/view"
)

func TestRecipesLimit(t *testing.T) {
	tests := []struct {
		query string
		want  int64
	}{
		{query: "", want: defaultRecipesLimit},
		{query: "recipes_limit=1", want: 1},
		{query: "recipes_limit=0", want: 0},
		{query: "recipes_limit=-2", want: defaultRecipesLimit},
		{query: "recipes_limit=x", want: defaultRecipesLimit},
	}
	for _, tt := range tests {
		q, _ := url.ParseQuery(tt.query)
		if got := recipesLimit(q); got != tt.want {
			t.Errorf("%q: expected %d, got %d", tt.query, tt.want, got)
		}
	}
}

func TestHandleSubscribe(t *testing.T) {
	t.Run("self", func(t *testing.T) {
		router, _ := newTestRouter(t, 7)
		rec := serve(router, http.MethodPost, "/api/users/7/subscribe", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if got := decode[apiError.Error](t, rec); got.Code != apiError.SelfSubscription {
			t.Errorf("expected self_subscription, got %q", got.Code)
		}
	})

	t.Run("unknown author", func(t *testing.T) {
		router, mockDB := newTestRouter(t, 7)
		mockDB.EXPECT().GetUser(gomock.Any(), int64(8)).Return(database.User{}, pgx.ErrNoRows)

		rec := serve(router, http.MethodPost, "/api/users/8/subscribe", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("already subscribed", func(t *testing.T) {
		router, mockDB := newTestRouter(t, 7)
		mockDB.EXPECT().GetUser(gomock.Any(), int64(8)).Return(database.User{ID: 8}, nil)
		mockDB.EXPECT().Subscribe(gomock.Any(), database.SubscribeParams{UserID: 7, AuthorID: 8}).
			Return(int64(0), nil)

		rec := serve(router, http.MethodPost, "/api/users/8/subscribe", "")
		if got := decode[apiError.Error](t, rec); got.Code != apiError.AlreadyExists {
			t.Errorf("expected already_exists, got %q", got.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		router, mockDB := newTestRouter(t, 7)
		mockDB.EXPECT().GetUser(gomock.Any(), int64(8)).
			Return(database.User{ID: 8, Username: "chef", Email: "chef@example.com"}, nil)
		mockDB.EXPECT().Subscribe(gomock.Any(), database.SubscribeParams{UserID: 7, AuthorID: 8}).
			Return(int64(1), nil)
		mockDB.EXPECT().ListAuthorRecipePreviews(gomock.Any(), database.ListAuthorRecipePreviewsParams{
			AuthorIds: []int64{8}, PerAuthor: 1,
		}).Return([]database.ListAuthorRecipePreviewsRow{
			{ID: 30, AuthorID: 8, Name: "Soup", Image: "recipes/images/a.png", CookingTime: 20},
		}, nil)
		mockDB.EXPECT().CountRecipesByAuthors(gomock.Any(), []int64{8}).
			Return([]database.CountRecipesByAuthorsRow{{AuthorID: 8, RecipesCount: 4}}, nil)

		rec := serve(router, http.MethodPost, "/api/users/8/subscribe?recipes_limit=1", "")
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		got := decode[view.SubscriptionView](t, rec)
		if !got.IsSubscribed || got.RecipesCount != 4 || len(got.Recipes) != 1 {
			t.Fatalf("unexpected subscription %+v", got)
		}
		if got.Recipes[0].Image != "http://localhost:8080/media/recipes/images/a.png" {
			t.Errorf("unexpected image url %q", got.Recipes[0].Image)
		}
	})
}

func TestHandleUnsubscribe(t *testing.T) {
	router, mockDB := newTestRouter(t, 7)
	mockDB.EXPECT().GetUser(gomock.Any(), int64(8)).Return(database.User{ID: 8}, nil).Times(2)
	gomock.InOrder(
		mockDB.EXPECT().Unsubscribe(gomock.Any(), database.UnsubscribeParams{UserID: 7, AuthorID: 8}).
			Return(int64(1), nil),
		mockDB.EXPECT().Unsubscribe(gomock.Any(), database.UnsubscribeParams{UserID: 7, AuthorID: 8}).
			Return(int64(0), nil),
	)

	if rec := serve(router, http.MethodDelete, "/api/users/8/subscribe", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	rec := serve(router, http.MethodDelete, "/api/users/8/subscribe", "")
	if got := decode[apiError.Error](t, rec); got.Code != apiError.NotInCollection {
		t.Errorf("expected not_in_collection, got %q", got.Code)
	}
}

func TestHandleListSubscriptions(t *testing.T) {
	router, mockDB := newTestRouter(t, 7)
	mockDB.EXPECT().CountSubscriptions(gomock.Any(), int64(7)).Return(int64(0), nil)
	mockDB.EXPECT().ListSubscriptions(gomock.Any(), database.ListSubscriptionsParams{
		UserID: 7, PageLimit: 6, PageOffset: 0,
	}).Return([]database.ListSubscriptionsRow{}, nil)

	rec := serve(router, http.MethodGet, "/api/users/subscriptions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	page := decode[view.Page[view.SubscriptionView]](t, rec)
	if page.Count != 0 || page.Results == nil || len(page.Results) != 0 {
		t.Errorf("expected empty non-nil results, got %+v", page)
	}
}
