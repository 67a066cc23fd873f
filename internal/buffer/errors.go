package buffer

import (
	"errors"
	"fmt"
)

// Buffer errors.
var (
	// ErrNoPath indicates a save was requested for a document without a path.
	ErrNoPath = errors.New("document has no path")

	// ErrNotFound indicates a search found no match.
	ErrNotFound = errors.New("text not found")

	// ErrEmptyQuery indicates a search or replace with an empty needle.
	ErrEmptyQuery = errors.New("empty search text")
)

// FileError reports a failed load or save.
type FileError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
