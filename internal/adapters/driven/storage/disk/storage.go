// Package disk stores recipe files directly on the filesystem with no
// version history.
package disk

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/farooqu/cooklang-store/internal/core/domain"
	"github.com/farooqu/cooklang-store/internal/core/ports/driven"
)

var _ driven.RecipeStorage = (*Storage)(nil)

// Storage keeps recipes as plain files under a root directory. Paths
// handed to it are slash-separated and relative to that root.
type Storage struct {
	root string
}

// New creates the root directory if needed and returns a Storage over it.
func New(root string) (*Storage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, domain.NewStorageError("init", root, err)
	}
	return &Storage{root: root}, nil
}

// Root returns the backing directory.
func (s *Storage) Root() string { return s.root }

// Abs resolves a relative recipe path to an absolute one, refusing paths
// that would escape the root.
func (s *Storage) Abs(relPath string) (string, error) {
	abs, err := securejoin.SecureJoin(s.root, filepath.FromSlash(relPath))
	if err != nil {
		return "", domain.NewStorageError("resolve", relPath, err)
	}
	return abs, nil
}

// Write implements driven.RecipeStorage.
func (s *Storage) Write(relPath, content string) error {
	abs, err := s.Abs(relPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return domain.NewStorageError("write", relPath, err)
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		return domain.NewStorageError("write", relPath, err)
	}
	return nil
}

// Read implements driven.RecipeStorage.
func (s *Storage) Read(relPath string) (string, error) {
	abs, err := s.Abs(relPath)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return "", domain.NewStorageError("read", relPath, domain.ErrNotFound)
	}
	if err != nil {
		return "", domain.NewStorageError("read", relPath, err)
	}
	return string(data), nil
}

// Delete implements driven.RecipeStorage. Deleting a missing file is not
// an error.
func (s *Storage) Delete(relPath string) error {
	abs, err := s.Abs(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return domain.NewStorageError("delete", relPath, err)
	}
	return nil
}

// Discover implements driven.RecipeStorage. It returns the sorted
// relative paths of every recipe file under the root, skipping anything
// under .git.
func (s *Storage) Discover() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), domain.RecipeExt) {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, domain.NewStorageError("discover", s.root, err)
	}
	sort.Strings(paths)
	return paths, nil
}
