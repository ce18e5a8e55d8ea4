package usecase

import (
	"context"
	"sync"
	"sync/atomic"

	"voice-intent/internal/model"
	"voice-intent/pkg/cache"
)

// mockLLM returns a fixed output and records the prompts it saw.
type mockLLM struct {
	mu         sync.Mutex
	output     string
	err        error
	calls      int
	lastSystem string
	lastUser   string
	// onCall runs inside Complete, e.g. to cancel the caller's context.
	onCall func()
}

func (m *mockLLM) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.mu.Lock()
	m.calls++
	m.lastSystem = systemPrompt
	m.lastUser = userPrompt
	onCall := m.onCall
	m.mu.Unlock()

	if onCall != nil {
		onCall()
	}
	return m.output, m.err
}

func (m *mockLLM) Label() string { return "mock/test-model" }

func (m *mockLLM) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockSession is an in-memory intent.Session.
type mockSession struct {
	deviceID   string
	hasHandler bool
	functions  []model.FunctionDescriptor
	remote     []model.FunctionDescriptor
	remoteErr  error

	functionsCalls atomic.Int32

	mu       sync.Mutex
	dialogue []model.DialogueTurn
}

func (s *mockSession) DeviceID() string         { return s.deviceID }
func (s *mockSession) HasFunctionHandler() bool { return s.hasHandler }

func (s *mockSession) Functions() []model.FunctionDescriptor {
	s.functionsCalls.Add(1)
	return s.functions
}

func (s *mockSession) RemoteTools(ctx context.Context) ([]model.FunctionDescriptor, error) {
	return s.remote, s.remoteErr
}

func (s *mockSession) PruneDialogue(roles ...model.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()

	drop := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		drop[r] = true
	}
	kept := s.dialogue[:0:0]
	for _, t := range s.dialogue {
		if !drop[t.Role] {
			kept = append(kept, t)
		}
	}
	s.dialogue = kept
}

func (s *mockSession) turns() []model.DialogueTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.DialogueTurn(nil), s.dialogue...)
}

// countingStore wraps a Store and counts calls.
type countingStore struct {
	cache.Store
	gets atomic.Int32
	sets atomic.Int32
}

func (c *countingStore) Get(ctx context.Context, ns cache.Namespace, key string) (string, bool, error) {
	c.gets.Add(1)
	return c.Store.Get(ctx, ns, key)
}

func (c *countingStore) Set(ctx context.Context, ns cache.Namespace, key, value string) error {
	c.sets.Add(1)
	return c.Store.Set(ctx, ns, key, value)
}

type staticMusic []string

func (m staticMusic) Names() []string { return m }

func newStore() *countingStore {
	return &countingStore{Store: cache.NewMemory(cache.Config{Size: 100})}
}

func exitFunction() model.FunctionDescriptor {
	return model.FunctionDescriptor{
		Name:        "handle_exit_intent",
		Description: "Called when the user wants to end the conversation",
		Parameters: []model.Parameter{
			{Name: "say_goodbye", Type: "string", Description: "Goodbye message"},
		},
		Required: []string{"say_goodbye"},
	}
}

func newSession(deviceID string) *mockSession {
	return &mockSession{
		deviceID:   deviceID,
		hasHandler: true,
		functions:  []model.FunctionDescriptor{exitFunction()},
	}
}
