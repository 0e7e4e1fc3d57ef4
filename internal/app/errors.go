package app

import (
	"errors"
	"fmt"
)

// ErrTargetConflict is returned when two inputs of a directory run would be
// written to the same output file.
var ErrTargetConflict = errors.New("conflicting output targets")

// LoadError reports a feature model that could not be loaded. Nothing is
// translated or written for Path.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// WriteError reports a program that was translated but could not be written.
// The program text is still available through App.Programs.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
