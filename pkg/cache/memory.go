package cache

import (
	"context"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemoryStore is an in-process Store bounded by size and entry TTL.
type MemoryStore struct {
	entries *expirable.LRU[string, string]
}

// NewMemory creates a MemoryStore holding at most size entries for ttl each.
func NewMemory(cfg Config) *MemoryStore {
	cfg.setDefaults()
	return &MemoryStore{
		entries: expirable.NewLRU[string, string](cfg.Size, nil, cfg.TTL),
	}
}

func (s *MemoryStore) Get(_ context.Context, ns Namespace, key string) (string, bool, error) {
	v, ok := s.entries.Get(compositeKey(ns, key))
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, ns Namespace, key, value string) error {
	s.entries.Add(compositeKey(ns, key), value)
	return nil
}

// Len returns the number of live entries.
func (s *MemoryStore) Len() int {
	return s.entries.Len()
}
