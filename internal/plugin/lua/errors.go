package lua

import (
	"errors"
	"fmt"
)

// Errors for Lua state operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when a script runs too long.
	ErrExecutionTimeout = errors.New("lua execution timeout")
)

// DefinitionError reports an invalid language table in a plugin file.
type DefinitionError struct {
	File    string
	Name    string
	Message string
}

func (e *DefinitionError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: language %q: %s", e.File, e.Name, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}
