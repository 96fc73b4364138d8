package recipe

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/filestore"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

func newTestEnv(t *testing.T) (*env.Env, *database.MockQuerier, *filestore.Disk) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockDB := database.NewMockQuerier(ctrl)
	disk := filestore.NewDisk(t.TempDir(), "/media", "http://localhost:8080")

	e := env.Null()
	e.Database = database.NewMockStore(mockDB)
	e.FileStore = disk
	return e, mockDB, disk
}

func imageExists(t *testing.T, disk *filestore.Disk, key string) bool {
	t.Helper()
	ok, err := disk.FileServer().Exists(key)
	if err != nil {
		t.Fatalf("checking %q: %v", key, err)
	}
	return ok
}

// expectValidContents sets up the lookups a passing Validate performs.
func expectValidContents(mockDB *database.MockQuerier, ingredientIDs, tagIDs []int64) {
	ingredients := make([]database.Ingredient, 0, len(ingredientIDs))
	for _, id := range ingredientIDs {
		ingredients = append(ingredients, database.Ingredient{ID: id, Name: "i", MeasurementUnit: "g"})
	}
	tags := make([]database.Tag, 0, len(tagIDs))
	for _, id := range tagIDs {
		tags = append(tags, database.Tag{ID: id, Name: "t", Color: "#FFFFFF"})
	}
	mockDB.EXPECT().ListIngredientsByIDs(gomock.Any(), ingredientIDs).Return(ingredients, nil)
	mockDB.EXPECT().ListTagsByIDs(gomock.Any(), tagIDs).Return(tags, nil)
	mockDB.EXPECT().RecipeNameTaken(gomock.Any(), gomock.Any()).Return(false, nil)
}
