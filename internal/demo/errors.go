package demo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDemo is returned by Lookup for names not in the registry.
var ErrUnknownDemo = errors.New("unknown demo")

// ErrDuplicateDemo is returned by NewRegistry when two demos share a name.
var ErrDuplicateDemo = errors.New("duplicate demo")

// RunError represents a failure inside a single demo.
type RunError struct {
	Demo string // Name of the demo that failed
	Err  error  // Underlying error
}

// Error implements the error interface for RunError.
func (e *RunError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("demo %s failed", e.Demo))
	if e.Err != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Err))
	}
	return sb.String()
}

// Unwrap returns the underlying error for error wrapping support.
func (e *RunError) Unwrap() error {
	return e.Err
}

// IsRunError reports whether err contains a RunError.
func IsRunError(err error) bool {
	var re *RunError
	return errors.As(err, &re)
}
