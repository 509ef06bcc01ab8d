// Package domain defines the core business entities for cooklang-store.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Recipe: A recipe as exposed to callers, including content
//   - IndexedRecipe: The cached, parsed form held by the in-memory index
//   - ParsedRecipe: The structured result of Cooklang parsing
//   - Frontmatter: The metadata block at the top of a recipe file
//
// It also holds the title/path utilities: slug derivation, canonical path
// composition, and category extraction. The category of a recipe is never
// stored; it is always derived from the path segments between the recipes
// root and the filename.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
