package services

import (
	"sort"
	"strings"
	"sync"

	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/farooqu/cooklang-store/internal/core/domain"
)

// RecipeIndex is the in-memory view of durable storage: a sharded
// concurrent map from canonical path to IndexedRecipe, plus a reverse map
// from external id to path. List and search operations scan the forward
// map without blocking unrelated point lookups.
//
// The index holds nothing that cannot be regenerated by re-scanning
// storage, except the cached parse results.
type RecipeIndex struct {
	recipes cmap.ConcurrentMap[string, domain.IndexedRecipe]

	// The reverse map sees exactly one mutation per forward-map mutation,
	// so a plain RWMutex-guarded map suffices.
	mu       sync.RWMutex
	idToPath map[string]string
}

// NewRecipeIndex creates an empty index.
func NewRecipeIndex() *RecipeIndex {
	return &RecipeIndex{
		recipes:  cmap.New[domain.IndexedRecipe](),
		idToPath: make(map[string]string),
	}
}

// Insert stores rec under path, overwriting any existing record, and
// repoints the reverse id mapping at this path.
func (ix *RecipeIndex) Insert(path string, rec domain.IndexedRecipe) {
	ix.recipes.Set(path, rec)
	ix.mu.Lock()
	ix.idToPath[rec.ID] = path
	ix.mu.Unlock()
}

// Get returns the record at path.
func (ix *RecipeIndex) Get(path string) (domain.IndexedRecipe, bool) {
	return ix.recipes.Get(path)
}

// PathByID returns the canonical path for an external id.
func (ix *RecipeIndex) PathByID(id string) (string, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	path, ok := ix.idToPath[id]
	return path, ok
}

// Remove deletes the record at path from both mappings and returns what
// was removed.
func (ix *RecipeIndex) Remove(path string) (domain.IndexedRecipe, bool) {
	rec, ok := ix.recipes.Pop(path)
	if !ok {
		return domain.IndexedRecipe{}, false
	}
	ix.mu.Lock()
	delete(ix.idToPath, rec.ID)
	ix.mu.Unlock()
	return rec, true
}

// All returns a snapshot copy of every record.
func (ix *RecipeIndex) All() []domain.IndexedRecipe {
	out := make([]domain.IndexedRecipe, 0, ix.recipes.Count())
	for t := range ix.recipes.IterBuffered() {
		out = append(out, t.Val)
	}
	return out
}

// SearchByName returns records whose title contains query,
// case-insensitively.
func (ix *RecipeIndex) SearchByName(query string) []domain.IndexedRecipe {
	q := strings.ToLower(query)
	var out []domain.IndexedRecipe
	for t := range ix.recipes.IterBuffered() {
		if strings.Contains(strings.ToLower(t.Val.Title), q) {
			out = append(out, t.Val)
		}
	}
	return out
}

// ByCategory returns records whose category matches exactly.
func (ix *RecipeIndex) ByCategory(category string) []domain.IndexedRecipe {
	var out []domain.IndexedRecipe
	for t := range ix.recipes.IterBuffered() {
		if t.Val.Category == category {
			out = append(out, t.Val)
		}
	}
	return out
}

// Categories returns the sorted distinct non-empty categories.
func (ix *RecipeIndex) Categories() []string {
	seen := make(map[string]struct{})
	for t := range ix.recipes.IterBuffered() {
		if t.Val.Category != "" {
			seen[t.Val.Category] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// FilterByIngredient returns records using an ingredient whose name
// contains query, case-insensitively.
func (ix *RecipeIndex) FilterByIngredient(query string) []domain.IndexedRecipe {
	q := strings.ToLower(query)
	var out []domain.IndexedRecipe
	for t := range ix.recipes.IterBuffered() {
		if t.Val.Parsed == nil {
			continue
		}
		for _, ing := range t.Val.Parsed.Ingredients() {
			if strings.Contains(strings.ToLower(ing.Name), q) {
				out = append(out, t.Val)
				break
			}
		}
	}
	return out
}

// Len returns the number of indexed recipes.
func (ix *RecipeIndex) Len() int {
	return ix.recipes.Count()
}

// Clear empties both mappings. Used before a full rebuild.
func (ix *RecipeIndex) Clear() {
	ix.recipes.Clear()
	ix.mu.Lock()
	ix.idToPath = make(map[string]string)
	ix.mu.Unlock()
}
