package fileclass

import (
	"context"
	"io"
)

// FileWriter is the write side of a storage backend.
type FileWriter interface {
	// Write writes content from reader to path.
	Write(ctx context.Context, path string, r io.Reader) error

	// Delete removes a file.
	Delete(ctx context.Context, path string) error
}

// CanCopy indicates the backend supports native copy operations.
type CanCopy interface {
	Copy(ctx context.Context, src, dst string) error
}

// CanMove indicates the backend supports native move/rename operations.
type CanMove interface {
	Move(ctx context.Context, src, dst string) error
}
