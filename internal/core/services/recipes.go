package services

import (
	"context"
	"fmt"

	"github.com/farooqu/cooklang-store/internal/core/domain"
	"github.com/farooqu/cooklang-store/internal/core/ports/driven"
	"github.com/farooqu/cooklang-store/internal/core/ports/driving"
	"github.com/farooqu/cooklang-store/internal/logger"
)

// Ensure Recipes implements the interface.
var _ driving.RecipeService = (*Recipes)(nil)

// Recipes is the repository: it keeps the in-memory index consistent with
// the durable storage backend across all mutation paths. Storage and the
// index never touch each other directly; every transition runs through
// here.
//
// There is no transactional substrate. Within a rename the ordering is:
// write new path, delete old path, swap index entries. If the delete
// fails after the write succeeded, the old file remains on disk as an
// orphan invisible to the API until the next rebuild; the error is
// surfaced rather than retried.
type Recipes struct {
	storage driven.RecipeStorage
	parser  driven.RecipeParser
	index   *RecipeIndex
}

// NewRecipes builds a repository over storage and parser and performs the
// initial index rebuild from durable state.
func NewRecipes(storage driven.RecipeStorage, parser driven.RecipeParser) (*Recipes, error) {
	r := &Recipes{
		storage: storage,
		parser:  parser,
		index:   NewRecipeIndex(),
	}
	if err := r.Rebuild(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

// Create implements driving.RecipeService.
func (r *Recipes) Create(_ context.Context, content, category string) (*domain.Recipe, error) {
	fm, err := domain.ParseFrontmatter(content)
	if err != nil {
		return nil, err
	}
	title := fm.Title()
	if title == "" {
		return nil, domain.NewValidationError("frontmatter has no title", nil)
	}

	parsed, err := r.parser.Parse(content)
	if err != nil {
		return nil, err
	}

	cleaned, err := domain.CleanCategory(category)
	if err != nil {
		return nil, err
	}

	path, err := r.resolvePath(title, cleaned, "")
	if err != nil {
		return nil, err
	}

	if err := r.storage.Write(path, content); err != nil {
		return nil, err
	}

	rec := domain.IndexedRecipe{
		ID:          domain.RecipeID(path),
		Path:        path,
		Title:       title,
		Description: fm.Description(),
		Category:    cleaned,
		Parsed:      parsed,
	}
	r.index.Insert(path, rec)

	return recordToRecipe(rec, content), nil
}

// Read implements driving.RecipeService. The index answers existence; the
// raw text is always re-read from storage, so index/storage drift surfaces
// as a storage error here.
func (r *Recipes) Read(_ context.Context, path string) (*domain.Recipe, error) {
	rec, ok := r.index.Get(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
	}
	content, err := r.storage.Read(path)
	if err != nil {
		return nil, err
	}
	return recordToRecipe(rec, content), nil
}

// Update implements driving.RecipeService. A rename is needed when the
// filename derived from the effective title differs from the current
// filename, or the effective category differs from the current one; both
// cases run through the same path resolution and commit ordering.
func (r *Recipes) Update(_ context.Context, path string, upd driving.UpdateRecipe) (*domain.Recipe, error) {
	cur, ok := r.index.Get(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
	}

	title := cur.Title
	description := cur.Description
	parsed := cur.Parsed
	var content string

	if upd.Content != nil {
		content = *upd.Content
		fm, err := domain.ParseFrontmatter(content)
		if err != nil {
			return nil, err
		}
		if title = fm.Title(); title == "" {
			return nil, domain.NewValidationError("frontmatter has no title", nil)
		}
		description = fm.Description()
		if parsed, err = r.parser.Parse(content); err != nil {
			return nil, err
		}
	}

	category := cur.Category
	if upd.Category != nil {
		cleaned, err := domain.CleanCategory(*upd.Category)
		if err != nil {
			return nil, err
		}
		category = cleaned
	}

	target := path
	if domain.FilenameForTitle(title) != domain.FilenameOf(path) || category != cur.Category {
		resolved, err := r.resolvePath(title, category, path)
		if err != nil {
			return nil, err
		}
		target = resolved
	}

	// Without new content the current text is carried over unchanged.
	if upd.Content == nil {
		read, err := r.storage.Read(path)
		if err != nil {
			return nil, err
		}
		content = read
	}

	// Write the new path before deleting the old one so a concurrent
	// reader never observes the recipe as vanished mid-rename.
	if err := r.storage.Write(target, content); err != nil {
		return nil, err
	}
	if target != path {
		if err := r.storage.Delete(path); err != nil {
			return nil, err
		}
		r.index.Remove(path)
	}

	id := cur.ID
	if target != path {
		id = domain.RecipeID(target)
	}
	rec := domain.IndexedRecipe{
		ID:          id,
		Path:        target,
		Title:       title,
		Description: description,
		Category:    category,
		Parsed:      parsed,
	}
	r.index.Insert(target, rec)

	return recordToRecipe(rec, content), nil
}

// Delete implements driving.RecipeService.
func (r *Recipes) Delete(_ context.Context, path string) error {
	if _, ok := r.index.Get(path); !ok {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, path)
	}
	if err := r.storage.Delete(path); err != nil {
		return err
	}
	r.index.Remove(path)
	return nil
}

// ListAll implements driving.RecipeService.
func (r *Recipes) ListAll(_ context.Context) []domain.Recipe {
	return recordsToRecipes(r.index.All())
}

// SearchByName implements driving.RecipeService.
func (r *Recipes) SearchByName(_ context.Context, query string) []domain.Recipe {
	return recordsToRecipes(r.index.SearchByName(query))
}

// ListByCategory implements driving.RecipeService.
func (r *Recipes) ListByCategory(_ context.Context, category string) []domain.Recipe {
	return recordsToRecipes(r.index.ByCategory(category))
}

// Categories implements driving.RecipeService.
func (r *Recipes) Categories(_ context.Context) []string {
	return r.index.Categories()
}

// FilterByIngredient implements driving.RecipeService.
func (r *Recipes) FilterByIngredient(_ context.Context, ingredient string) []domain.Recipe {
	return recordsToRecipes(r.index.FilterByIngredient(ingredient))
}

// ResolveID implements driving.RecipeService.
func (r *Recipes) ResolveID(_ context.Context, id string) (string, error) {
	path, ok := r.index.PathByID(id)
	if !ok {
		return "", fmt.Errorf("%w: id %s", domain.ErrNotFound, id)
	}
	return path, nil
}

// Rebuild implements driving.RecipeService. Files that cannot be read or
// parsed are logged and skipped so one corrupt file never prevents the
// index from loading; they stay on disk but are invisible to the API.
func (r *Recipes) Rebuild(_ context.Context) error {
	r.index.Clear()

	paths, err := r.storage.Discover()
	if err != nil {
		return err
	}

	for _, path := range paths {
		content, err := r.storage.Read(path)
		if err != nil {
			logger.Warn("rebuild: skipping unreadable file %s: %v", path, err)
			continue
		}

		title := ""
		description := ""
		if fm, err := domain.ParseFrontmatter(content); err == nil {
			title = fm.Title()
			description = fm.Description()
		}
		if title == "" {
			// Best-effort recovery, not a validation gate.
			title = domain.TitleFromFilename(path)
		}

		parsed, err := r.parser.Parse(content)
		if err != nil {
			logger.Warn("rebuild: skipping unparseable file %s: %v", path, err)
			continue
		}

		r.index.Insert(path, domain.IndexedRecipe{
			ID:          domain.RecipeID(path),
			Path:        path,
			Title:       title,
			Description: description,
			Category:    domain.CategoryOf(path),
			Parsed:      parsed,
		})
	}

	logger.Debug("rebuild: indexed %d recipes", r.index.Len())
	return nil
}

// resolvePath derives the canonical path for title under category,
// appending -2, -3, ... before the extension until the path is free in the
// index. exclude names the caller's current path, which is never treated
// as a collision; it is empty on create.
func (r *Recipes) resolvePath(title, category, exclude string) (string, error) {
	slug := domain.Slugify(title)
	if slug == "" {
		return "", domain.NewValidationError(fmt.Sprintf("title %q produces an empty slug", title), nil)
	}

	candidate := domain.RecipePath(slug+domain.RecipeExt, category)
	for n := 2; ; n++ {
		_, taken := r.index.Get(candidate)
		if !taken || candidate == exclude {
			return candidate, nil
		}
		candidate = domain.RecipePath(fmt.Sprintf("%s-%d%s", slug, n, domain.RecipeExt), category)
	}
}

func recordToRecipe(rec domain.IndexedRecipe, content string) *domain.Recipe {
	return &domain.Recipe{
		ID:          rec.ID,
		Path:        rec.Path,
		Filename:    domain.FilenameOf(rec.Path),
		Title:       rec.Title,
		Description: rec.Description,
		Category:    rec.Category,
		Content:     content,
	}
}

func recordsToRecipes(recs []domain.IndexedRecipe) []domain.Recipe {
	out := make([]domain.Recipe, 0, len(recs))
	for _, rec := range recs {
		out = append(out, *recordToRecipe(rec, ""))
	}
	return out
}
