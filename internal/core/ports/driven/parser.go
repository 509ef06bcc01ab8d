package driven

import "github.com/farooqu/cooklang-store/internal/core/domain"

// RecipeParser turns raw recipe text into its structured form. The
// repository treats it as an opaque validation gate: parse failure rejects
// a mutation, parse success yields the structure cached by the index.
type RecipeParser interface {
	// Parse parses the Cooklang body of content. The frontmatter block, if
	// present, is not part of the grammar and is skipped.
	Parse(content string) (*domain.ParsedRecipe, error)
}
