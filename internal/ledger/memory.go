package ledger

import (
	"bytes"
	"context"
	"sync"
)

// MemoryStore is a process-local Backend. Its contents do not survive a restart.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return clone(value), true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = clone(value)
	return nil
}

// Commit checks reads and applies every write under a single lock.
func (s *MemoryStore) Commit(_ context.Context, reads []Read, writes []Write) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range reads {
		current, ok := s.data[r.Key]
		if ok != r.Found || !bytes.Equal(current, r.Value) {
			return ErrConflict
		}
	}
	for _, w := range writes {
		s.data[w.Key] = clone(w.Value)
	}
	return nil
}

// Len returns the number of keys held.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
