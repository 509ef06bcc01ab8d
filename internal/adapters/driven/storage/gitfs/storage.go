// Package gitfs stores recipe files in a git repository, committing every
// mutation so the recipe tree carries its full history.
package gitfs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/farooqu/cooklang-store/internal/adapters/driven/storage/disk"
	"github.com/farooqu/cooklang-store/internal/core/domain"
	"github.com/farooqu/cooklang-store/internal/core/ports/driven"
)

var _ driven.RecipeStorage = (*Storage)(nil)

// commitEmail is the fixed author email on generated commits; the author
// name comes from configuration.
const commitEmail = "recipes@localhost"

// Storage writes files through a plain disk layer and records each write
// and delete as a git commit. A single mutex serializes mutations since
// go-git worktree operations are not safe for concurrent use.
type Storage struct {
	files  *disk.Storage
	repo   *git.Repository
	author string

	mu sync.Mutex
}

// New opens the git repository at root, initializing one if none exists,
// and returns a Storage committing as author.
func New(root, author string) (*Storage, error) {
	files, err := disk.New(root)
	if err != nil {
		return nil, err
	}

	repo, err := git.PlainOpen(root)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		repo, err = git.PlainInit(root, false)
	}
	if err != nil {
		return nil, domain.NewVersionControlError("open", err)
	}

	if author == "" {
		author = "Recipe Store"
	}

	return &Storage{files: files, repo: repo, author: author}, nil
}

// Root returns the backing directory.
func (s *Storage) Root() string { return s.files.Root() }

// Write implements driven.RecipeStorage. The file is written and the
// change committed as "Update recipe: <path>".
func (s *Storage) Write(relPath, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.files.Write(relPath, content); err != nil {
		return err
	}

	wt, err := s.repo.Worktree()
	if err != nil {
		return domain.NewVersionControlError("worktree", err)
	}
	if _, err := wt.Add(relPath); err != nil {
		return domain.NewVersionControlError("add", err)
	}
	return s.commit(wt, fmt.Sprintf("Update recipe: %s", relPath))
}

// Read implements driven.RecipeStorage.
func (s *Storage) Read(relPath string) (string, error) {
	return s.files.Read(relPath)
}

// Delete implements driven.RecipeStorage. A missing file is a no-op with
// no commit; otherwise the removal is committed as
// "Delete recipe: <path>".
func (s *Storage) Delete(relPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	abs, err := s.files.Abs(relPath)
	if err != nil {
		return err
	}
	if _, err := os.Stat(abs); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	wt, err := s.repo.Worktree()
	if err != nil {
		return domain.NewVersionControlError("worktree", err)
	}
	// Remove stages the deletion and unlinks the file in one step.
	if _, err := wt.Remove(relPath); err != nil {
		return domain.NewVersionControlError("remove", err)
	}
	return s.commit(wt, fmt.Sprintf("Delete recipe: %s", relPath))
}

// Discover implements driven.RecipeStorage.
func (s *Storage) Discover() ([]string, error) {
	return s.files.Discover()
}

func (s *Storage) commit(wt *git.Worktree, msg string) error {
	_, err := wt.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{
			Name:  s.author,
			Email: commitEmail,
			When:  time.Now(),
		},
		// Writing identical content again must still succeed.
		AllowEmptyCommits: true,
	})
	if err != nil {
		return domain.NewVersionControlError("commit", err)
	}
	return nil
}
