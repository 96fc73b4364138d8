package recipe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/mock/gomock"

	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/filestore"
	"github.com/matt-dz/foodgram/internal/role"
)

func TestCreateStoresExactlyTheInputSets(t *testing.T) {
	e, mockDB, disk := newTestEnv(t)
	expectValidContents(mockDB, []int64{1, 2}, []int64{5})

	var storedKey string
	mockDB.EXPECT().CreateRecipe(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg database.CreateRecipeParams) (int64, error) {
			if arg.AuthorID != 7 || arg.Name != "Soup" || arg.CookingTime != 15 {
				t.Errorf("unexpected recipe params %+v", arg)
			}
			storedKey = arg.Image
			return 10, nil
		})
	mockDB.EXPECT().InsertRecipeTags(gomock.Any(), database.InsertRecipeTagsParams{
		RecipeID: 10, TagIds: []int64{5},
	}).Return(nil)
	mockDB.EXPECT().InsertRecipeIngredients(gomock.Any(), []database.InsertRecipeIngredientsParams{
		{RecipeID: 10, IngredientID: 1, Amount: 2},
		{RecipeID: 10, IngredientID: 2, Amount: 3},
	}).Return(int64(2), nil)

	id, err := Create(context.Background(), e, 7, CreateInput{
		Name:        "Soup",
		Image:       Image{Data: pngHeader, MimeType: "image/png", Suffix: ".png"},
		Text:        "Boil water.",
		CookingTime: 15,
		Ingredients: []IngredientAmount{{ID: 1, Amount: 2}, {ID: 2, Amount: 3}},
		Tags:        []int64{5, 5},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 10 {
		t.Errorf("expected id 10, got %d", id)
	}
	if !imageExists(t, disk, storedKey) {
		t.Errorf("expected image %q to be stored", storedKey)
	}
}

func TestCreateRemovesImageWhenTransactionFails(t *testing.T) {
	tests := []struct {
		name       string
		txErr      error
		wantReason Reason
	}{
		{
			name:       "unique violation maps to name_taken",
			txErr:      &pgconn.PgError{Code: "23505", ConstraintName: database.ConstraintRecipeAuthorName},
			wantReason: ReasonNameTaken,
		},
		{
			name:  "other failure is returned",
			txErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, mockDB, disk := newTestEnv(t)
			expectValidContents(mockDB, []int64{1}, []int64{5})

			var storedKey string
			mockDB.EXPECT().CreateRecipe(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, arg database.CreateRecipeParams) (int64, error) {
					storedKey = arg.Image
					return 0, tt.txErr
				})

			_, err := Create(context.Background(), e, 7, CreateInput{
				Name:        "Soup",
				Image:       Image{Data: pngHeader, MimeType: "image/png", Suffix: ".png"},
				Text:        "Boil water.",
				CookingTime: 15,
				Ingredients: []IngredientAmount{{ID: 1, Amount: 2}},
				Tags:        []int64{5},
			})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			verr, ok := AsValidationError(err)
			if tt.wantReason != "" && (!ok || verr.Reason != tt.wantReason) {
				t.Errorf("expected reason %q, got %v", tt.wantReason, err)
			}
			if tt.wantReason == "" && ok {
				t.Errorf("expected infrastructure error, got %v", err)
			}
			if imageExists(t, disk, storedKey) {
				t.Errorf("expected image %q to be removed", storedKey)
			}
		})
	}
}

func TestUpdateReplacesIngredientSet(t *testing.T) {
	e, mockDB, _ := newTestEnv(t)
	existing := database.Recipe{
		ID: 3, AuthorID: 7, Name: "Soup", Image: "recipes/images/old.png", Text: "Boil.", CookingTime: 10,
	}
	mockDB.EXPECT().GetRecipe(gomock.Any(), int64(3)).Return(existing, nil)
	mockDB.EXPECT().GetRecipeForUpdate(gomock.Any(), int64(3)).Return(existing, nil)
	mockDB.EXPECT().ListIngredientsByIDs(gomock.Any(), []int64{30}).
		Return([]database.Ingredient{{ID: 30, Name: "C", MeasurementUnit: "g"}}, nil)
	mockDB.EXPECT().ListTagsByIDs(gomock.Any(), []int64{5}).
		Return([]database.Tag{{ID: 5, Name: "Lunch", Color: "#E26C2D"}}, nil)
	mockDB.EXPECT().RecipeNameTaken(gomock.Any(), database.RecipeNameTakenParams{
		AuthorID: 7, Name: "Soup", ExcludeID: 3,
	}).Return(false, nil)

	cookingTime := int32(20)
	gomock.InOrder(
		mockDB.EXPECT().UpdateRecipe(gomock.Any(), database.UpdateRecipeParams{
			ID: 3, Name: "Soup", Image: "recipes/images/old.png", Text: "Boil.", CookingTime: 20,
		}).Return(nil),
		mockDB.EXPECT().DeleteRecipeIngredients(gomock.Any(), int64(3)).Return(nil),
		mockDB.EXPECT().DeleteRecipeTags(gomock.Any(), int64(3)).Return(nil),
		mockDB.EXPECT().InsertRecipeTags(gomock.Any(), database.InsertRecipeTagsParams{
			RecipeID: 3, TagIds: []int64{5},
		}).Return(nil),
		mockDB.EXPECT().InsertRecipeIngredients(gomock.Any(), []database.InsertRecipeIngredientsParams{
			{RecipeID: 3, IngredientID: 30, Amount: 1},
		}).Return(int64(1), nil),
	)

	err := Update(context.Background(), e, Actor{UserID: 7, Role: role.RoleUser}, 3, UpdateInput{
		CookingTime: &cookingTime,
		Ingredients: []IngredientAmount{{ID: 30, Amount: 1}},
		Tags:        []int64{5},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateReplacesImage(t *testing.T) {
	e, mockDB, disk := newTestEnv(t)
	const oldKey = "recipes/images/old.png"
	if err := disk.Save(context.Background(), oldKey, "image/png", pngHeader); err != nil {
		t.Fatalf("seeding image: %v", err)
	}

	stored := database.Recipe{
		ID: 3, AuthorID: 7, Name: "Soup", Image: oldKey, Text: "Boil.", CookingTime: 10,
	}
	mockDB.EXPECT().GetRecipe(gomock.Any(), int64(3)).Return(stored, nil)
	mockDB.EXPECT().GetRecipeForUpdate(gomock.Any(), int64(3)).Return(stored, nil)
	expectValidContents(mockDB, []int64{1}, []int64{5})

	var newKey string
	mockDB.EXPECT().UpdateRecipe(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg database.UpdateRecipeParams) error {
			newKey = arg.Image
			return nil
		})
	mockDB.EXPECT().DeleteRecipeIngredients(gomock.Any(), int64(3)).Return(nil)
	mockDB.EXPECT().DeleteRecipeTags(gomock.Any(), int64(3)).Return(nil)
	mockDB.EXPECT().InsertRecipeTags(gomock.Any(), gomock.Any()).Return(nil)
	mockDB.EXPECT().InsertRecipeIngredients(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	err := Update(context.Background(), e, Actor{UserID: 1, Role: role.RoleAdmin}, 3, UpdateInput{
		Image:       &Image{Data: pngHeader, MimeType: "image/png", Suffix: ".png"},
		Ingredients: []IngredientAmount{{ID: 1, Amount: 1}},
		Tags:        []int64{5},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if newKey == oldKey || !imageExists(t, disk, newKey) {
		t.Errorf("expected new image to be stored under a fresh key, got %q", newKey)
	}
	if imageExists(t, disk, oldKey) {
		t.Error("expected previous image to be deleted after commit")
	}
}

func TestUpdateMergesAgainstLockedRow(t *testing.T) {
	e, mockDB, _ := newTestEnv(t)
	mockDB.EXPECT().GetRecipe(gomock.Any(), int64(3)).Return(database.Recipe{
		ID: 3, AuthorID: 7, Name: "Soup", Image: "recipes/images/old.png", Text: "Boil.", CookingTime: 10,
	}, nil)
	// A concurrent update committed a new name and text before the lock was taken.
	mockDB.EXPECT().GetRecipeForUpdate(gomock.Any(), int64(3)).Return(database.Recipe{
		ID: 3, AuthorID: 7, Name: "Stew", Image: "recipes/images/old.png", Text: "Simmer.", CookingTime: 10,
	}, nil)
	mockDB.EXPECT().ListIngredientsByIDs(gomock.Any(), []int64{1}).
		Return([]database.Ingredient{{ID: 1, Name: "i", MeasurementUnit: "g"}}, nil)
	mockDB.EXPECT().ListTagsByIDs(gomock.Any(), []int64{5}).
		Return([]database.Tag{{ID: 5, Name: "t", Color: "#FFFFFF"}}, nil)
	mockDB.EXPECT().RecipeNameTaken(gomock.Any(), database.RecipeNameTakenParams{
		AuthorID: 7, Name: "Stew", ExcludeID: 3,
	}).Return(false, nil)
	mockDB.EXPECT().UpdateRecipe(gomock.Any(), database.UpdateRecipeParams{
		ID: 3, Name: "Stew", Image: "recipes/images/old.png", Text: "Simmer.", CookingTime: 45,
	}).Return(nil)
	mockDB.EXPECT().DeleteRecipeIngredients(gomock.Any(), int64(3)).Return(nil)
	mockDB.EXPECT().DeleteRecipeTags(gomock.Any(), int64(3)).Return(nil)
	mockDB.EXPECT().InsertRecipeTags(gomock.Any(), gomock.Any()).Return(nil)
	mockDB.EXPECT().InsertRecipeIngredients(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	cookingTime := int32(45)
	err := Update(context.Background(), e, Actor{UserID: 7, Role: role.RoleUser}, 3, UpdateInput{
		CookingTime: &cookingTime,
		Ingredients: []IngredientAmount{{ID: 1, Amount: 1}},
		Tags:        []int64{5},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateRecipeDeletedBeforeLock(t *testing.T) {
	e, mockDB, _ := newTestEnv(t)
	root := t.TempDir()
	e.FileStore = filestore.NewDisk(root, "/media", "http://localhost:8080")
	mockDB.EXPECT().GetRecipe(gomock.Any(), int64(3)).
		Return(database.Recipe{ID: 3, AuthorID: 7, Image: "recipes/images/old.png"}, nil)
	mockDB.EXPECT().GetRecipeForUpdate(gomock.Any(), int64(3)).Return(database.Recipe{}, pgx.ErrNoRows)

	err := Update(context.Background(), e, Actor{UserID: 7, Role: role.RoleUser}, 3, UpdateInput{
		Image:       &Image{Data: pngHeader, MimeType: "image/png", Suffix: ".png"},
		Ingredients: []IngredientAmount{{ID: 1, Amount: 1}},
		Tags:        []int64{5},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected %v, got %v", ErrNotFound, err)
	}
	entries, err := os.ReadDir(filepath.Join(root, "recipes", "images"))
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("reading image dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected replacement image to be removed, found %d files", len(entries))
	}
}

func TestWriteForeignKeyViolationMapsToValidationError(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		wantReason Reason
		wantField  string
	}{
		{
			name:       "ingredient deleted after validation",
			constraint: database.ConstraintRecipeIngredientFK,
			wantReason: ReasonIngredientNotFound,
			wantField:  "ingredients",
		},
		{
			name:       "tag deleted after validation",
			constraint: database.ConstraintRecipeTagFK,
			wantReason: ReasonTagNotFound,
			wantField:  "tags",
		},
	}

	for _, tt := range tests {
		fkErr := &pgconn.PgError{Code: "23503", ConstraintName: tt.constraint}

		t.Run(tt.name+" create", func(t *testing.T) {
			e, mockDB, disk := newTestEnv(t)
			expectValidContents(mockDB, []int64{1}, []int64{5})

			var storedKey string
			mockDB.EXPECT().CreateRecipe(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, arg database.CreateRecipeParams) (int64, error) {
					storedKey = arg.Image
					return 10, nil
				})
			expectContentsFailure(mockDB, tt.constraint, fkErr)

			_, err := Create(context.Background(), e, 7, CreateInput{
				Name:        "Soup",
				Image:       Image{Data: pngHeader, MimeType: "image/png", Suffix: ".png"},
				Text:        "Boil water.",
				CookingTime: 15,
				Ingredients: []IngredientAmount{{ID: 1, Amount: 2}},
				Tags:        []int64{5},
			})
			verr, ok := AsValidationError(err)
			if !ok || verr.Reason != tt.wantReason || verr.Field != tt.wantField {
				t.Fatalf("expected %s on %s, got %v", tt.wantReason, tt.wantField, err)
			}
			if imageExists(t, disk, storedKey) {
				t.Errorf("expected image %q to be removed", storedKey)
			}
		})

		t.Run(tt.name+" update", func(t *testing.T) {
			e, mockDB, _ := newTestEnv(t)
			stored := database.Recipe{ID: 3, AuthorID: 7, Name: "Soup", Image: "recipes/images/old.png"}
			mockDB.EXPECT().GetRecipe(gomock.Any(), int64(3)).Return(stored, nil)
			mockDB.EXPECT().GetRecipeForUpdate(gomock.Any(), int64(3)).Return(stored, nil)
			expectValidContents(mockDB, []int64{1}, []int64{5})
			mockDB.EXPECT().UpdateRecipe(gomock.Any(), gomock.Any()).Return(nil)
			mockDB.EXPECT().DeleteRecipeIngredients(gomock.Any(), int64(3)).Return(nil)
			mockDB.EXPECT().DeleteRecipeTags(gomock.Any(), int64(3)).Return(nil)
			expectContentsFailure(mockDB, tt.constraint, fkErr)

			err := Update(context.Background(), e, Actor{UserID: 7, Role: role.RoleUser}, 3, UpdateInput{
				Ingredients: []IngredientAmount{{ID: 1, Amount: 2}},
				Tags:        []int64{5},
			})
			verr, ok := AsValidationError(err)
			if !ok || verr.Reason != tt.wantReason || verr.Field != tt.wantField {
				t.Fatalf("expected %s on %s, got %v", tt.wantReason, tt.wantField, err)
			}
		})
	}
}

// expectContentsFailure makes the tag or ingredient insert fail with err,
// depending on which table constraint names.
func expectContentsFailure(mockDB *database.MockQuerier, constraint string, err error) {
	if constraint == database.ConstraintRecipeTagFK {
		mockDB.EXPECT().InsertRecipeTags(gomock.Any(), gomock.Any()).Return(err)
		return
	}
	mockDB.EXPECT().InsertRecipeTags(gomock.Any(), gomock.Any()).Return(nil)
	mockDB.EXPECT().InsertRecipeIngredients(gomock.Any(), gomock.Any()).Return(int64(0), err)
}

func TestUpdateAndDeletePermissions(t *testing.T) {
	tests := []struct {
		name    string
		actor   Actor
		getErr  error
		wantErr error
	}{
		{
			name:    "recipe missing",
			actor:   Actor{UserID: 7, Role: role.RoleUser},
			getErr:  pgx.ErrNoRows,
			wantErr: ErrNotFound,
		},
		{
			name:    "other user",
			actor:   Actor{UserID: 8, Role: role.RoleUser},
			wantErr: ErrNotOwned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" update", func(t *testing.T) {
			e, mockDB, _ := newTestEnv(t)
			mockDB.EXPECT().GetRecipe(gomock.Any(), int64(3)).
				Return(database.Recipe{ID: 3, AuthorID: 7}, tt.getErr)

			err := Update(context.Background(), e, tt.actor, 3, UpdateInput{})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
		t.Run(tt.name+" delete", func(t *testing.T) {
			e, mockDB, _ := newTestEnv(t)
			mockDB.EXPECT().GetRecipe(gomock.Any(), int64(3)).
				Return(database.Recipe{ID: 3, AuthorID: 7}, tt.getErr)

			err := Delete(context.Background(), e, tt.actor, 3)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDeleteRemovesImage(t *testing.T) {
	e, mockDB, disk := newTestEnv(t)
	const key = "recipes/images/soup.png"
	if err := disk.Save(context.Background(), key, "image/png", pngHeader); err != nil {
		t.Fatalf("seeding image: %v", err)
	}
	mockDB.EXPECT().GetRecipe(gomock.Any(), int64(3)).
		Return(database.Recipe{ID: 3, AuthorID: 7, Image: key}, nil)
	mockDB.EXPECT().DeleteRecipe(gomock.Any(), int64(3)).Return(int64(1), nil)

	if err := Delete(context.Background(), e, Actor{UserID: 7, Role: role.RoleUser}, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if imageExists(t, disk, key) {
		t.Error("expected image to be deleted")
	}
}
