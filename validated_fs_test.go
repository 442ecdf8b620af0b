package fileclass

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/gobeaver/fileclass/filevalidator"
)

// memWriter is a map-backed FileWriter without copy or move support.
type memWriter struct {
	mu    sync.Mutex
	files map[string]string
}

func newMemWriter() *memWriter {
	return &memWriter{files: make(map[string]string)}
}

func (m *memWriter) Write(_ context.Context, p string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[p] = string(data)
	return nil
}

func (m *memWriter) Delete(_ context.Context, p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, p)
	return nil
}

func (m *memWriter) has(p string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[p]
	return ok
}

// nativeWriter adds copy and move to memWriter.
type nativeWriter struct {
	*memWriter
}

func (n nativeWriter) Copy(_ context.Context, src, dst string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.files[dst] = n.files[src]
	return nil
}

func (n nativeWriter) Move(_ context.Context, src, dst string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.files[dst] = n.files[src]
	delete(n.files, src)
	return nil
}

func TestGuardedFileSystem_Write(t *testing.T) {
	ctx := context.Background()
	backend := newMemWriter()
	g := NewGuardedFileSystem(backend, filevalidator.NewDefault())

	tests := []struct {
		path    string
		wantErr bool
		errType filevalidator.ValidationErrorType
	}{
		{path: "uploads/photo.jpg"},
		{path: "uploads/2024/report.pdf"},
		{path: "uploads/setup.exe", wantErr: true, errType: filevalidator.ErrorTypeType},
		{path: "uploads/script.sh", wantErr: true, errType: filevalidator.ErrorTypeExtension},
		{path: "uploads/bad:name.txt", wantErr: true, errType: filevalidator.ErrorTypeFileName},
		{path: "uploads/README", wantErr: true, errType: filevalidator.ErrorTypeExtension},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := g.Write(ctx, tt.path, strings.NewReader("content"))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Write(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr {
				if !backend.has(tt.path) {
					t.Errorf("Write(%q) did not reach the backend", tt.path)
				}
				return
			}

			if backend.has(tt.path) {
				t.Errorf("rejected write %q reached the backend", tt.path)
			}
			if !IsInvalidName(err) {
				t.Errorf("Write(%q) error = %v, want ErrInvalidName", tt.path, err)
			}
			var pathErr *PathError
			if !errors.As(err, &pathErr) || pathErr.Op != "write" || pathErr.Path != tt.path {
				t.Errorf("Write(%q) error = %#v, want *PathError for write", tt.path, err)
			}
			if !filevalidator.IsErrorOfType(err, tt.errType) {
				t.Errorf("Write(%q) error type = %s, want %s", tt.path, filevalidator.GetErrorType(err), tt.errType)
			}
		})
	}
}

func TestGuardedFileSystem_WriteWithoutName(t *testing.T) {
	g := NewGuardedFileSystem(newMemWriter(), filevalidator.NewDefault())

	for _, p := range []string{"", "/"} {
		err := g.Write(context.Background(), p, strings.NewReader("x"))
		if !IsInvalidName(err) {
			t.Errorf("Write(%q) error = %v, want ErrInvalidName", p, err)
		}
	}
}

func TestGuardedFileSystem_CanceledContext(t *testing.T) {
	backend := newMemWriter()
	g := NewGuardedFileSystem(backend, filevalidator.NewDefault())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := g.Write(ctx, "photo.jpg", strings.NewReader("x"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Write() error = %v, want context.Canceled", err)
	}
	if backend.has("photo.jpg") {
		t.Error("write with canceled context reached the backend")
	}
}

func TestGuardedFileSystem_CopyMoveCanceledContext(t *testing.T) {
	backend := nativeWriter{newMemWriter()}
	backend.files["a.jpg"] = "img"
	g := NewGuardedFileSystem(backend, filevalidator.NewDefault())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := g.Copy(ctx, "a.jpg", "b.jpg"); !errors.Is(err, context.Canceled) {
		t.Errorf("Copy() error = %v, want context.Canceled", err)
	}
	if err := g.Move(ctx, "a.jpg", "c.jpg"); !errors.Is(err, context.Canceled) {
		t.Errorf("Move() error = %v, want context.Canceled", err)
	}
	if backend.has("b.jpg") || backend.has("c.jpg") || !backend.has("a.jpg") {
		t.Error("operations with a canceled context reached the backend")
	}
}

func TestGuardedFileSystem_Delete(t *testing.T) {
	ctx := context.Background()
	backend := newMemWriter()
	backend.files["legacy/old$name.exe"] = "x"
	g := NewGuardedFileSystem(backend, filevalidator.NewDefault())

	if err := g.Delete(ctx, "legacy/old$name.exe"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if backend.has("legacy/old$name.exe") {
		t.Error("Delete() did not remove the file")
	}
}

func TestGuardedFileSystem_CopyMove(t *testing.T) {
	ctx := context.Background()

	t.Run("unsupported backend", func(t *testing.T) {
		g := NewGuardedFileSystem(newMemWriter(), filevalidator.NewDefault())
		if err := g.Copy(ctx, "a.jpg", "b.jpg"); !errors.Is(err, ErrNotSupported) {
			t.Errorf("Copy() error = %v, want ErrNotSupported", err)
		}
		if err := g.Move(ctx, "a.jpg", "b.jpg"); !errors.Is(err, ErrNotSupported) {
			t.Errorf("Move() error = %v, want ErrNotSupported", err)
		}
	})

	t.Run("native backend", func(t *testing.T) {
		backend := nativeWriter{newMemWriter()}
		backend.files["a.jpg"] = "img"
		g := NewGuardedFileSystem(backend, filevalidator.NewDefault())

		if err := g.Copy(ctx, "a.jpg", "b.jpg"); err != nil {
			t.Fatalf("Copy() error = %v", err)
		}
		if !backend.has("b.jpg") {
			t.Error("Copy() did not create b.jpg")
		}

		if err := g.Move(ctx, "b.jpg", "c.bat"); !IsInvalidName(err) {
			t.Errorf("Move() to c.bat error = %v, want ErrInvalidName", err)
		}
		if !backend.has("b.jpg") || backend.has("c.bat") {
			t.Error("rejected move changed the backend")
		}

		if err := g.Move(ctx, "b.jpg", "c.png"); err != nil {
			t.Fatalf("Move() error = %v", err)
		}
		if backend.has("b.jpg") || !backend.has("c.png") {
			t.Error("Move() did not rename b.jpg to c.png")
		}
	})
}

func TestService_Guard(t *testing.T) {
	cfg := defaultConfig()
	cfg.AllowedKinds = "image"
	svc, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	backend := newMemWriter()
	g := svc.Guard(backend)
	if g.Unwrap() != FileWriter(backend) {
		t.Error("Unwrap() should return the wrapped backend")
	}

	if err := g.Write(context.Background(), "avatars/me.png", strings.NewReader("x")); err != nil {
		t.Errorf("Write(me.png) error = %v", err)
	}
	if err := g.Write(context.Background(), "avatars/me.txt", strings.NewReader("x")); !IsInvalidName(err) {
		t.Errorf("Write(me.txt) error = %v, want ErrInvalidName", err)
	}
}
