package docstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/keyescrow/internal/common"
)

// MemoryStore keeps encoded documents in process memory. Documents are
// copied on Put and Get, so callers never share state through it.
type MemoryStore struct {
	mu    sync.RWMutex
	codec Codec
	docs  map[string][]byte
}

func NewMemoryStore(codec Codec) *MemoryStore {
	if codec == nil {
		codec = JSON
	}
	return &MemoryStore{codec: codec, docs: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, table, id string, out any) error {
	s.mu.RLock()
	data, ok := s.docs[Key(table, id)]
	s.mu.RUnlock()

	if !ok {
		return common.ErrorNotFound
	}
	if err := s.codec.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode error: %w", err)
	}
	return nil
}

func (s *MemoryStore) Put(ctx context.Context, table, id string, doc any) error {
	data, err := s.codec.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode error: %w", err)
	}

	s.mu.Lock()
	s.docs[Key(table, id)] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, table, id string) error {
	s.mu.Lock()
	delete(s.docs, Key(table, id))
	s.mu.Unlock()
	return nil
}

// Len returns the number of stored documents.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

func (s *MemoryStore) Close() error { return nil }
