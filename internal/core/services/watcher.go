package services

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/farooqu/cooklang-store/internal/core/ports/driving"
	"github.com/farooqu/cooklang-store/internal/logger"
)

// defaultDebounce batches the event bursts editors and git produce into a
// single rebuild.
const defaultDebounce = 500 * time.Millisecond

// Watcher rebuilds the index whenever the recipe tree changes on disk,
// picking up edits made outside the API. Events under .git are ignored so
// the versioned backend's own commits do not trigger rebuild loops.
type Watcher struct {
	root     string
	svc      driving.RecipeService
	debounce time.Duration
}

// NewWatcher watches the directory tree rooted at root and triggers
// svc.Rebuild after changes settle.
func NewWatcher(root string, svc driving.RecipeService) *Watcher {
	return &Watcher{
		root:     root,
		svc:      svc,
		debounce: defaultDebounce,
	}
}

// Run blocks until ctx is cancelled, rebuilding the index after each
// debounced burst of filesystem events.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := w.addTree(fw, w.root); err != nil {
		return err
	}

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if isGitPath(event.Name) {
				continue
			}
			// New directories must be watched as they appear;
			// fsnotify does not recurse on its own.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(fw, event.Name); err != nil {
						logger.Warn("watch: cannot watch %s: %v", event.Name, err)
					}
				}
			}
			logger.Debug("watch: %s %s", event.Op, event.Name)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch: %v", err)

		case <-fire:
			timer = nil
			fire = nil
			if err := w.svc.Rebuild(ctx); err != nil {
				logger.Warn("watch: rebuild failed: %v", err)
			}
		}
	}
}

func (w *Watcher) addTree(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if isGitPath(path) {
			return filepath.SkipDir
		}
		return fw.Add(path)
	})
}

func isGitPath(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == ".git" {
			return true
		}
	}
	return false
}
