// Package services implements the core application logic.
//
// Recipes is the repository: it orchestrates the storage backend, the
// Cooklang parser, and the in-memory RecipeIndex, keeping durable files
// and the index consistent across create, update (with possible rename),
// delete, and startup rebuild. Watcher optionally triggers rebuilds when
// the recipe tree changes on disk outside the API.
//
// # Import Rules
//
//   - Can Import: domain, ports, logger
//   - Cannot Import: Any adapter package
package services
