package testutil

import (
	"context"
	"errors"
	"sync"
)

// ErrStoreUnavailable is returned by FailingStore for every call
var ErrStoreUnavailable = errors.New("store unavailable")

// MemoryStore is an in-process KVStore that counts writes
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
	Puts   int
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Put(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.Puts++
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.values, key)
	}
	return nil
}

// Has reports whether key is stored
func (s *MemoryStore) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.values[key]
	return ok
}

// FailingStore fails every operation
type FailingStore struct{}

func (FailingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, ErrStoreUnavailable
}

func (FailingStore) Put(context.Context, string, string) error {
	return ErrStoreUnavailable
}

func (FailingStore) Delete(context.Context, ...string) error {
	return ErrStoreUnavailable
}
