package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farooqu/cooklang-store/internal/core/domain"
)

func record(path, title, category string, ingredients ...string) domain.IndexedRecipe {
	step := domain.Step{}
	for _, name := range ingredients {
		step.Ingredients = append(step.Ingredients, domain.Ingredient{Name: name})
	}
	return domain.IndexedRecipe{
		ID:       domain.RecipeID(path),
		Path:     path,
		Title:    title,
		Category: category,
		Parsed:   &domain.ParsedRecipe{Steps: []domain.Step{step}},
	}
}

func TestRecipeIndex_InsertGetRemove(t *testing.T) {
	ix := NewRecipeIndex()
	rec := record("recipes/tart.cook", "Tart", "")

	ix.Insert(rec.Path, rec)
	require.Equal(t, 1, ix.Len())

	got, ok := ix.Get(rec.Path)
	require.True(t, ok)
	assert.Equal(t, "Tart", got.Title)

	path, ok := ix.PathByID(rec.ID)
	require.True(t, ok)
	assert.Equal(t, rec.Path, path)

	removed, ok := ix.Remove(rec.Path)
	require.True(t, ok)
	assert.Equal(t, rec.ID, removed.ID)
	assert.Equal(t, 0, ix.Len())

	_, ok = ix.PathByID(rec.ID)
	assert.False(t, ok, "reverse mapping should be gone after remove")
}

func TestRecipeIndex_InsertReplacesExisting(t *testing.T) {
	ix := NewRecipeIndex()
	ix.Insert("recipes/tart.cook", record("recipes/tart.cook", "Tart", ""))
	ix.Insert("recipes/tart.cook", record("recipes/tart.cook", "Tarte Tatin", ""))

	require.Equal(t, 1, ix.Len())
	got, ok := ix.Get("recipes/tart.cook")
	require.True(t, ok)
	assert.Equal(t, "Tarte Tatin", got.Title)
}

func TestRecipeIndex_SearchByName(t *testing.T) {
	ix := NewRecipeIndex()
	ix.Insert("recipes/a.cook", record("recipes/a.cook", "Chocolate Cake", ""))
	ix.Insert("recipes/b.cook", record("recipes/b.cook", "Carrot Cake", ""))
	ix.Insert("recipes/c.cook", record("recipes/c.cook", "Beef Stew", ""))

	t.Run("case insensitive substring", func(t *testing.T) {
		assert.Len(t, ix.SearchByName("CAKE"), 2)
	})

	t.Run("no matches", func(t *testing.T) {
		assert.Empty(t, ix.SearchByName("pizza"))
	})

	t.Run("empty query matches all", func(t *testing.T) {
		assert.Len(t, ix.SearchByName(""), 3)
	})
}

func TestRecipeIndex_Categories(t *testing.T) {
	ix := NewRecipeIndex()
	ix.Insert("recipes/a.cook", record("recipes/a.cook", "A", ""))
	ix.Insert("recipes/desserts/b.cook", record("recipes/desserts/b.cook", "B", "desserts"))
	ix.Insert("recipes/desserts/c.cook", record("recipes/desserts/c.cook", "C", "desserts"))
	ix.Insert("recipes/mains/grill/d.cook", record("recipes/mains/grill/d.cook", "D", "mains/grill"))

	assert.Equal(t, []string{"desserts", "mains/grill"}, ix.Categories())
	assert.Len(t, ix.ByCategory("desserts"), 2)
	assert.Len(t, ix.ByCategory(""), 1)
}

func TestRecipeIndex_FilterByIngredient(t *testing.T) {
	ix := NewRecipeIndex()
	ix.Insert("recipes/a.cook", record("recipes/a.cook", "Cake", "", "flour", "dark chocolate"))
	ix.Insert("recipes/b.cook", record("recipes/b.cook", "Stew", "", "beef", "carrot"))

	matches := ix.FilterByIngredient("Chocolate")
	require.Len(t, matches, 1)
	assert.Equal(t, "Cake", matches[0].Title)

	assert.Empty(t, ix.FilterByIngredient("saffron"))
}

func TestRecipeIndex_Clear(t *testing.T) {
	ix := NewRecipeIndex()
	rec := record("recipes/a.cook", "A", "")
	ix.Insert(rec.Path, rec)

	ix.Clear()

	assert.Equal(t, 0, ix.Len())
	_, ok := ix.PathByID(rec.ID)
	assert.False(t, ok)
}
