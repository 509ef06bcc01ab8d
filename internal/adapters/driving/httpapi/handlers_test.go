package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farooqu/cooklang-store/internal/core/domain"
	"github.com/farooqu/cooklang-store/internal/core/ports/driving"
)

// stubService is a map-backed RecipeService for handler tests.
type stubService struct {
	recipes map[string]domain.Recipe // keyed by path
}

var _ driving.RecipeService = (*stubService)(nil)

func newStubService(recipes ...domain.Recipe) *stubService {
	s := &stubService{recipes: make(map[string]domain.Recipe)}
	for _, r := range recipes {
		s.recipes[r.Path] = r
	}
	return s
}

func testRecipe(title, category string) domain.Recipe {
	path := domain.RecipePath(domain.FilenameForTitle(title), category)
	return domain.Recipe{
		ID:       domain.RecipeID(path),
		Path:     path,
		Filename: domain.FilenameOf(path),
		Title:    title,
		Category: category,
		Content:  fmt.Sprintf("---\ntitle: %s\n---\nbody\n", title),
	}
}

func (s *stubService) Create(_ context.Context, content, category string) (*domain.Recipe, error) {
	title, err := domain.ExtractTitle(content)
	if err != nil {
		return nil, err
	}
	r := testRecipe(title, category)
	r.Content = content
	s.recipes[r.Path] = r
	return &r, nil
}

func (s *stubService) Read(_ context.Context, path string) (*domain.Recipe, error) {
	r, ok := s.recipes[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
	}
	return &r, nil
}

func (s *stubService) Update(_ context.Context, path string, upd driving.UpdateRecipe) (*domain.Recipe, error) {
	r, ok := s.recipes[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
	}
	if upd.Content != nil {
		title, err := domain.ExtractTitle(*upd.Content)
		if err != nil {
			return nil, err
		}
		r.Title = title
		r.Content = *upd.Content
	}
	s.recipes[path] = r
	return &r, nil
}

func (s *stubService) Delete(_ context.Context, path string) error {
	if _, ok := s.recipes[path]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, path)
	}
	delete(s.recipes, path)
	return nil
}

func (s *stubService) ListAll(context.Context) []domain.Recipe {
	out := make([]domain.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		out = append(out, r)
	}
	return out
}

func (s *stubService) SearchByName(_ context.Context, query string) []domain.Recipe {
	var out []domain.Recipe
	for _, r := range s.recipes {
		if strings.Contains(strings.ToLower(r.Title), strings.ToLower(query)) {
			out = append(out, r)
		}
	}
	return out
}

func (s *stubService) ListByCategory(_ context.Context, category string) []domain.Recipe {
	var out []domain.Recipe
	for _, r := range s.recipes {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

func (s *stubService) Categories(context.Context) []string {
	seen := make(map[string]struct{})
	for _, r := range s.recipes {
		if r.Category != "" {
			seen[r.Category] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	return out
}

func (s *stubService) FilterByIngredient(context.Context, string) []domain.Recipe { return nil }

func (s *stubService) ResolveID(_ context.Context, id string) (string, error) {
	for path, r := range s.recipes {
		if r.ID == id {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: id %s", domain.ErrNotFound, id)
}

func (s *stubService) Rebuild(context.Context) error { return nil }

func doRequest(t *testing.T, svc driving.RecipeService, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewServer("127.0.0.1:0", svc).Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, newStubService(), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, rec)["status"])
}

func TestStatus(t *testing.T) {
	svc := newStubService(testRecipe("Tart", "desserts"), testRecipe("Stew", "mains"))
	rec := doRequest(t, svc, http.MethodGet, "/api/v1/status", "")

	require.Equal(t, http.StatusOK, rec.Code)
	status := decode[statusResponse](t, rec)
	assert.Equal(t, 2, status.RecipeCount)
	assert.Equal(t, 2, status.Categories)
}

func TestCreateRecipe(t *testing.T) {
	t.Run("returns 201 with the recipe", func(t *testing.T) {
		body := `{"content": "---\ntitle: Tart\n---\nbody\n", "category": "desserts"}`
		rec := doRequest(t, newStubService(), http.MethodPost, "/api/v1/recipes", body)

		require.Equal(t, http.StatusCreated, rec.Code)
		detail := decode[recipeDetail](t, rec)
		assert.Equal(t, "Tart", detail.RecipeName)
		assert.Equal(t, "desserts", detail.Category)
		assert.NotEmpty(t, detail.RecipeID)
	})

	t.Run("invalid json is a 400", func(t *testing.T) {
		rec := doRequest(t, newStubService(), http.MethodPost, "/api/v1/recipes", "{not json")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "validation_error", decode[errorResponse](t, rec).Error)
	})

	t.Run("missing title is a 400", func(t *testing.T) {
		body := `{"content": "no frontmatter here"}`
		rec := doRequest(t, newStubService(), http.MethodPost, "/api/v1/recipes", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReadRecipe(t *testing.T) {
	tart := testRecipe("Tart", "desserts")
	svc := newStubService(tart)

	t.Run("found by external id", func(t *testing.T) {
		rec := doRequest(t, svc, http.MethodGet, "/api/v1/recipes/"+tart.ID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		detail := decode[recipeDetail](t, rec)
		assert.Equal(t, "Tart", detail.RecipeName)
		assert.Contains(t, detail.Content, "title: Tart")
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		rec := doRequest(t, svc, http.MethodGet, "/api/v1/recipes/ffffffffffff", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found", decode[errorResponse](t, rec).Error)
	})
}

func TestUpdateRecipe(t *testing.T) {
	tart := testRecipe("Tart", "")
	svc := newStubService(tart)

	body := `{"content": "---\ntitle: Better Tart\n---\nbody\n"}`
	rec := doRequest(t, svc, http.MethodPut, "/api/v1/recipes/"+tart.ID, body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Better Tart", decode[recipeDetail](t, rec).RecipeName)
}

func TestDeleteRecipe(t *testing.T) {
	tart := testRecipe("Tart", "")
	svc := newStubService(tart)

	rec := doRequest(t, svc, http.MethodDelete, "/api/v1/recipes/"+tart.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, svc, http.MethodDelete, "/api/v1/recipes/"+tart.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListRecipes(t *testing.T) {
	svc := newStubService(
		testRecipe("Apple Pie", ""),
		testRecipe("Beef Stew", ""),
		testRecipe("Carrot Cake", ""),
	)

	t.Run("sorted with defaults", func(t *testing.T) {
		rec := doRequest(t, svc, http.MethodGet, "/api/v1/recipes", "")
		require.Equal(t, http.StatusOK, rec.Code)
		list := decode[recipeList](t, rec)
		require.Len(t, list.Recipes, 3)
		assert.Equal(t, 3, list.Total)
		assert.Equal(t, "Apple Pie", list.Recipes[0].RecipeName)
		assert.Equal(t, defaultPageLimit, list.Limit)
	})

	t.Run("limit and offset page through", func(t *testing.T) {
		rec := doRequest(t, svc, http.MethodGet, "/api/v1/recipes?limit=1&offset=1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		list := decode[recipeList](t, rec)
		require.Len(t, list.Recipes, 1)
		assert.Equal(t, "Beef Stew", list.Recipes[0].RecipeName)
		assert.Equal(t, 3, list.Total)
	})

	t.Run("offset beyond the end is empty", func(t *testing.T) {
		rec := doRequest(t, svc, http.MethodGet, "/api/v1/recipes?offset=10", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decode[recipeList](t, rec).Recipes)
	})

	t.Run("limit is capped", func(t *testing.T) {
		rec := doRequest(t, svc, http.MethodGet, "/api/v1/recipes?limit=9999", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, maxPageLimit, decode[recipeList](t, rec).Limit)
	})

	t.Run("bad limit is a 400", func(t *testing.T) {
		rec := doRequest(t, svc, http.MethodGet, "/api/v1/recipes?limit=zero", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSearchRecipes(t *testing.T) {
	svc := newStubService(testRecipe("Apple Pie", ""), testRecipe("Beef Stew", ""))

	t.Run("matches by title", func(t *testing.T) {
		rec := doRequest(t, svc, http.MethodGet, "/api/v1/recipes/search?q=pie", "")
		require.Equal(t, http.StatusOK, rec.Code)
		list := decode[recipeList](t, rec)
		require.Len(t, list.Recipes, 1)
		assert.Equal(t, "Apple Pie", list.Recipes[0].RecipeName)
	})

	t.Run("missing query is a 400", func(t *testing.T) {
		rec := doRequest(t, svc, http.MethodGet, "/api/v1/recipes/search", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCategories(t *testing.T) {
	svc := newStubService(testRecipe("Tart", "desserts/french"), testRecipe("Stew", "mains"))

	t.Run("lists categories", func(t *testing.T) {
		rec := doRequest(t, svc, http.MethodGet, "/api/v1/categories", "")
		require.Equal(t, http.StatusOK, rec.Code)
		got := decode[map[string][]string](t, rec)
		assert.ElementsMatch(t, []string{"desserts/french", "mains"}, got["categories"])
	})

	t.Run("nested category path resolves", func(t *testing.T) {
		rec := doRequest(t, svc, http.MethodGet, "/api/v1/categories/desserts/french", "")
		require.Equal(t, http.StatusOK, rec.Code)
		list := decode[recipeList](t, rec)
		require.Len(t, list.Recipes, 1)
		assert.Equal(t, "Tart", list.Recipes[0].RecipeName)
	})

	t.Run("empty category result is an empty list", func(t *testing.T) {
		rec := doRequest(t, svc, http.MethodGet, "/api/v1/categories/nope", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decode[recipeList](t, rec).Recipes)
	})
}
