// Package storage selects the recipe storage backend from configuration.
package storage

import (
	"github.com/farooqu/cooklang-store/internal/adapters/driven/storage/disk"
	"github.com/farooqu/cooklang-store/internal/adapters/driven/storage/gitfs"
	"github.com/farooqu/cooklang-store/internal/core/ports/driven"
)

// BackendGit selects the git-versioned backend; any other value falls
// back to plain filesystem storage.
const BackendGit = "git"

// New returns the storage backend named by backend, rooted at dataDir.
// The author name is only used by the versioned backend for its commits.
func New(backend, dataDir, author string) (driven.RecipeStorage, error) {
	if backend == BackendGit {
		return gitfs.New(dataDir, author)
	}
	return disk.New(dataDir)
}
