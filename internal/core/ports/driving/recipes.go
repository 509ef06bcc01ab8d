package driving

import (
	"context"

	"github.com/farooqu/cooklang-store/internal/core/domain"
)

// UpdateRecipe describes a partial update. Nil fields keep the current
// value; a non-nil empty Category moves the recipe to the root.
type UpdateRecipe struct {
	// Content replaces the full recipe text when set. Its frontmatter
	// title becomes the effective title.
	Content *string

	// Category replaces the category when set.
	Category *string
}

// RecipeService is the repository surface consumed by the HTTP and CLI
// adapters. All lookups are by canonical path; ResolveID maps an external
// id back to a path first.
type RecipeService interface {
	// Create validates content, derives a collision-free canonical path
	// from its title and the optional category, writes it durably, and
	// indexes it.
	Create(ctx context.Context, content, category string) (*domain.Recipe, error)

	// Read returns the recipe at path, with content re-read from storage.
	Read(ctx context.Context, path string) (*domain.Recipe, error)

	// Update applies a partial update, renaming the file when the
	// effective title or category changes its derived path.
	Update(ctx context.Context, path string, upd UpdateRecipe) (*domain.Recipe, error)

	// Delete removes the recipe at path from storage and the index.
	Delete(ctx context.Context, path string) error

	// ListAll returns every indexed recipe, content omitted.
	ListAll(ctx context.Context) []domain.Recipe

	// SearchByName returns recipes whose title contains query,
	// case-insensitively.
	SearchByName(ctx context.Context, query string) []domain.Recipe

	// ListByCategory returns recipes whose category matches exactly.
	ListByCategory(ctx context.Context, category string) []domain.Recipe

	// Categories returns the sorted distinct categories in the index.
	Categories(ctx context.Context) []string

	// FilterByIngredient returns recipes using an ingredient whose name
	// contains the query, case-insensitively.
	FilterByIngredient(ctx context.Context, ingredient string) []domain.Recipe

	// ResolveID maps an external recipe id to its canonical path.
	ResolveID(ctx context.Context, id string) (string, error)

	// Rebuild discards the index and replays durable storage into it.
	// Individually unreadable or unparseable files are logged and skipped.
	Rebuild(ctx context.Context) error
}
