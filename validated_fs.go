package fileclass

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/gobeaver/fileclass/filevalidator"
)

// GuardedFileSystem wraps a FileWriter and refuses any write whose final
// path element fails validation. Content is passed through untouched.
type GuardedFileSystem struct {
	fs        FileWriter
	validator filevalidator.Validator
}

// NewGuardedFileSystem creates a FileWriter that validates names before writing
func NewGuardedFileSystem(fs FileWriter, validator filevalidator.Validator) *GuardedFileSystem {
	return &GuardedFileSystem{
		fs:        fs,
		validator: validator,
	}
}

// Write implements FileWriter with name validation
func (g *GuardedFileSystem) Write(ctx context.Context, p string, content io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := g.check("write", p); err != nil {
		return err
	}
	return g.fs.Write(ctx, p, content)
}

// Delete implements FileWriter. Existing files are removable whatever their name.
func (g *GuardedFileSystem) Delete(ctx context.Context, p string) error {
	return g.fs.Delete(ctx, p)
}

// Copy validates dst and delegates to the backend's native copy
func (g *GuardedFileSystem) Copy(ctx context.Context, src, dst string) error {
	copier, ok := g.fs.(CanCopy)
	if !ok {
		return &PathError{Op: "copy", Path: src, Err: ErrNotSupported}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := g.check("copy", dst); err != nil {
		return err
	}
	return copier.Copy(ctx, src, dst)
}

// Move validates dst and delegates to the backend's native move
func (g *GuardedFileSystem) Move(ctx context.Context, src, dst string) error {
	mover, ok := g.fs.(CanMove)
	if !ok {
		return &PathError{Op: "move", Path: src, Err: ErrNotSupported}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := g.check("move", dst); err != nil {
		return err
	}
	return mover.Move(ctx, src, dst)
}

// Unwrap returns the underlying FileWriter
func (g *GuardedFileSystem) Unwrap() FileWriter {
	return g.fs
}

func (g *GuardedFileSystem) check(op, p string) error {
	base := path.Base(p)
	if base == "." || base == "/" {
		return &PathError{Op: op, Path: p, Err: fmt.Errorf("%w: no file name", ErrInvalidName)}
	}
	if err := g.validator.Validate(base); err != nil {
		return &PathError{Op: op, Path: p, Err: fmt.Errorf("%w: %w", ErrInvalidName, err)}
	}
	return nil
}
