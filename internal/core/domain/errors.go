package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates the addressed recipe path or id is not in the index.
	ErrNotFound = errors.New("recipe not found")

	// ErrValidation indicates malformed content: a missing or broken
	// frontmatter block, a missing title, or a body the parser rejects.
	// Validation always fails before any durable mutation is attempted.
	ErrValidation = errors.New("validation failed")
)

// ValidationError carries a human message for a content validation failure.
// It unwraps to ErrValidation so callers can match with errors.Is.
type ValidationError struct {
	Msg   string
	Cause error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation failed: %s: %v", e.Msg, e.Cause)
	}
	return fmt.Sprintf("validation failed: %s", e.Msg)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError constructs a *ValidationError with a human message.
func NewValidationError(msg string, cause error) error {
	return &ValidationError{Msg: msg, Cause: cause}
}

// StorageError wraps a filesystem read/write/delete failure from a storage
// backend. Op names the storage operation, Path the relative recipe path.
type StorageError struct {
	Op    string
	Path  string
	Cause error
}

func (e *StorageError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Cause)
	}
	return fmt.Sprintf("storage %s: %v", e.Op, e.Cause)
}

func (e *StorageError) Unwrap() error { return e.Cause }

// NewStorageError constructs a *StorageError for an operation on a path.
func NewStorageError(op, path string, cause error) error {
	return &StorageError{Op: op, Path: path, Cause: cause}
}

// VersionControlError wraps a repository open/init/commit failure in the
// versioned storage backend.
type VersionControlError struct {
	Op    string
	Cause error
}

func (e *VersionControlError) Error() string {
	return fmt.Sprintf("git %s: %v", e.Op, e.Cause)
}

func (e *VersionControlError) Unwrap() error { return e.Cause }

// NewVersionControlError constructs a *VersionControlError.
func NewVersionControlError(op string, cause error) error {
	return &VersionControlError{Op: op, Cause: cause}
}

// IsValidation reports whether err is (or wraps) a validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFound reports whether err is (or wraps) a not-found condition.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
