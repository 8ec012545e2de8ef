package snapshot

import (
	"context"
	"sync"

	"acm_e_letras/internal/usecase/interfaces"
)

// MemoryStore holds the snapshot in process memory. Used by tests and
// ephemeral runs.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

var _ interfaces.ISnapshotStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, nil
	}
	return append([]byte(nil), s.data...), nil
}

func (s *MemoryStore) Save(_ context.Context, raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), raw...)
	return nil
}

func (s *MemoryStore) Watch(_ context.Context) (<-chan []byte, error) {
	return nil, nil
}

// Snapshot returns the current contents, for test assertions.
func (s *MemoryStore) Snapshot() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.data...)
}
