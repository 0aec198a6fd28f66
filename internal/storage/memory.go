package storage

import (
	"context"
	"sync"
)

// MemorySink is an in-process Sink used in tests and as a last-resort
// fallback when no database is configured.
type MemorySink struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemorySink constructs an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{blobs: make(map[string][]byte)}
}

// Save stores a copy of the blob.
func (s *MemorySink) Save(_ context.Context, key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cpy := make([]byte, len(blob))
	copy(cpy, blob)
	s.blobs[key] = cpy
	return nil
}

// Load returns a copy of the stored blob.
func (s *MemorySink) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.blobs[key]
	if !ok {
		return nil, false, nil
	}
	cpy := make([]byte, len(blob))
	copy(cpy, blob)
	return cpy, true, nil
}

// Delete removes the blob; missing keys are a no-op.
func (s *MemorySink) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)
	return nil
}

// Len reports how many blobs are held, for test assertions.
func (s *MemorySink) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}
