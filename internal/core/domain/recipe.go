package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// RecipeIDLength is the number of hex characters in an external recipe id.
const RecipeIDLength = 12

// Recipe is the full representation returned to callers. Content is empty
// in listing results.
type Recipe struct {
	// ID is the external identifier, derived from Path. It changes when
	// the recipe is renamed or moved.
	ID string

	// Path is the canonical storage path, e.g. "recipes/desserts/cake.cook".
	Path string

	// Filename is the file name component of Path.
	Filename string

	// Title is the recipe title from the frontmatter block.
	Title string

	// Description is the optional frontmatter description.
	Description string

	// Category is derived from the path segments between the recipes root
	// and the filename; empty means a root-level recipe.
	Category string

	// Content is the raw Cooklang source, frontmatter included.
	Content string
}

// IndexedRecipe is the cached form held by the in-memory index. It carries
// the expensive-to-recompute parse result but never the raw content; reads
// always go back to storage for the text.
type IndexedRecipe struct {
	ID          string
	Path        string
	Title       string
	Description string
	Category    string
	Parsed      *ParsedRecipe
}

// ParsedRecipe is the structured form produced by the Cooklang parser.
type ParsedRecipe struct {
	Metadata map[string]string
	Steps    []Step
}

// Step is a single preparation step.
type Step struct {
	Directions  string
	Ingredients []Ingredient
	Cookware    []string
	Timers      []Timer
}

// Ingredient is a named ingredient with its optional quantity.
type Ingredient struct {
	Name     string
	Quantity string
	Unit     string
}

// Timer is a named or anonymous timer within a step.
type Timer struct {
	Name     string
	Duration string
	Unit     string
}

// Ingredients returns every ingredient across all steps, in step order.
func (p *ParsedRecipe) Ingredients() []Ingredient {
	var out []Ingredient
	for _, s := range p.Steps {
		out = append(out, s.Ingredients...)
	}
	return out
}

// RecipeID derives the external id for a canonical path: the first
// RecipeIDLength hex characters of its SHA-256. The id is stable only as
// long as the path is stable.
func RecipeID(path string) string {
	sum := sha256.Sum256([]byte(path))
	return hex.EncodeToString(sum[:])[:RecipeIDLength]
}
