package snapshot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"acm_e_letras/internal/usecase/interfaces"
)

// FileStore keeps the snapshot as a single JSON file on disk. Writes go
// through a temp file plus rename so a crash mid-write never leaves a
// truncated snapshot behind.
type FileStore struct {
	path string
}

var _ interfaces.ISnapshotStore = (*FileStore)(nil)

func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Load(_ context.Context) ([]byte, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return raw, nil
}

func (s *FileStore) Save(_ context.Context, raw []byte) error {
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Watch is unsupported for the file backend; a single local process is its
// own only writer.
func (s *FileStore) Watch(_ context.Context) (<-chan []byte, error) {
	return nil, nil
}
