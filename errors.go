package fileclass

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrInvalidName   = errors.New("invalid name")
	ErrInvalidConfig = errors.New("invalid config")
	ErrNotSupported  = errors.New("operation not supported")
)

// PathError records an error and the operation and file path that caused it
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *PathError) Unwrap() error {
	return e.Err
}

// IsInvalidName reports whether an error was caused by a rejected filename
func IsInvalidName(err error) bool {
	return errors.Is(err, ErrInvalidName)
}
