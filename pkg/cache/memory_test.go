package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore_GetSet(t *testing.T) {
	ctx := context.Background()
	s := NewMemory(Config{Size: 10, TTL: time.Minute})

	if _, ok, _ := s.Get(ctx, NamespaceIntent, "k"); ok {
		t.Fatal("expected miss on empty store")
	}

	if err := s.Set(ctx, NamespaceIntent, "k", `{"function_call": {"name": "continue_chat"}}`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, ok, err := s.Get(ctx, NamespaceIntent, "k")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if v != `{"function_call": {"name": "continue_chat"}}` {
		t.Errorf("unexpected value %q", v)
	}
}

func TestMemoryStore_NamespacesAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewMemory(Config{})

	_ = s.Set(ctx, NamespaceIntent, "k", "intent")
	if _, ok, _ := s.Get(ctx, Namespace("other"), "k"); ok {
		t.Error("value leaked across namespaces")
	}
}

func TestMemoryStore_Eviction(t *testing.T) {
	ctx := context.Background()
	s := NewMemory(Config{Size: 2, TTL: time.Minute})

	_ = s.Set(ctx, NamespaceIntent, "a", "1")
	_ = s.Set(ctx, NamespaceIntent, "b", "2")
	_ = s.Set(ctx, NamespaceIntent, "c", "3")

	if s.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", s.Len())
	}
	if _, ok, _ := s.Get(ctx, NamespaceIntent, "a"); ok {
		t.Error("oldest entry should have been evicted")
	}
}

func TestNew_UnknownBackend(t *testing.T) {
	if _, err := New(Config{Backend: "memcached"}, RedisOptions{}); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestNew_DefaultsToMemory(t *testing.T) {
	s, err := New(Config{}, RedisOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.(*MemoryStore); !ok {
		t.Errorf("expected *MemoryStore, got %T", s)
	}
}
