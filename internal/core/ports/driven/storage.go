package driven

// RecipeStorage abstracts the durable file store behind the repository.
// Both backends satisfy the same contract; the repository never knows which
// one it holds. Paths are relative, slash-separated, and always carry the
// recipe extension.
//
// No cancellation or retry semantics are defined: operations either
// complete or fail, and a failed write/delete is surfaced immediately
// rather than retried.
type RecipeStorage interface {
	// Write creates any missing parent directories and writes content at
	// relPath, replacing any existing file.
	Write(relPath, content string) error

	// Read returns the file content at relPath. A missing file yields an
	// error wrapping domain.ErrNotFound.
	Read(relPath string) (string, error)

	// Delete removes the file at relPath if present. Deleting an absent
	// file succeeds silently.
	Delete(relPath string) error

	// Discover recursively finds every recipe file under the root and
	// returns their relative paths. Order is unspecified; callers must not
	// depend on it.
	Discover() ([]string, error)
}
