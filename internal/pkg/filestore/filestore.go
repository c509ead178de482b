package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Store writes generated documents into a local directory. It is the
// print-to-file collaborator of the report façade.
type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// EnsureWritable is the precondition check run before any document is
// generated: the directory must exist (created if needed) and accept a
// probe write.
func (s *Store) EnsureWritable() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create documents dir: %w", err)
	}

	probe := filepath.Join(s.dir, ".write_probe")
	if err := os.WriteFile(probe, []byte{}, 0o644); err != nil {
		return fmt.Errorf("documents dir not writable: %w", err)
	}
	_ = os.Remove(probe)
	return nil
}

// Print persists one rendered document and returns its absolute path.
func (s *Store) Print(ctx context.Context, name string, html string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}
