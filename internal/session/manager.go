package session

import (
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"voice-intent/internal/function"
)

const (
	DefaultMaxSessions = 1000
	DefaultTTL         = 30 * time.Minute

	defaultAssistantName = "Xiaozhi"
	defaultPrompt        = "You are {{assistant_name}}, a friendly voice assistant. Keep answers short and conversational."
)

// Config controls how sessions are created and kept.
type Config struct {
	MaxSessions   int
	TTL           time.Duration
	Prompt        string
	AssistantName string
}

// Manager keeps one Connection per device, evicting idle ones.
type Manager struct {
	registry *function.Registry
	tools    ToolSource
	prompt   string

	mu    sync.Mutex
	conns *expirable.LRU[string, *Connection]
}

// NewManager creates a Manager. Every connection it creates shares registry and tools.
func NewManager(cfg Config, registry *function.Registry, tools ToolSource) *Manager {
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Prompt == "" {
		cfg.Prompt = defaultPrompt
	}
	if cfg.AssistantName == "" {
		cfg.AssistantName = defaultAssistantName
	}

	return &Manager{
		registry: registry,
		tools:    tools,
		prompt:   strings.ReplaceAll(cfg.Prompt, "{{assistant_name}}", cfg.AssistantName),
		conns:    expirable.NewLRU[string, *Connection](cfg.MaxSessions, nil, cfg.TTL),
	}
}

// GetOrCreate returns the device's connection, creating it on first use.
func (m *Manager) GetOrCreate(deviceID string) (*Connection, error) {
	if deviceID == "" {
		return nil, ErrEmptyDeviceID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.conns.Get(deviceID); ok {
		return c, nil
	}

	c := NewConnection(deviceID, m.registry, m.tools, m.prompt)
	m.conns.Add(deviceID, c)
	return c, nil
}

// Get returns an existing connection.
func (m *Manager) Get(deviceID string) (*Connection, bool) {
	return m.conns.Get(deviceID)
}

// Remove forgets a device's connection.
func (m *Manager) Remove(deviceID string) {
	m.conns.Remove(deviceID)
}

// Len returns the number of live connections.
func (m *Manager) Len() int {
	return m.conns.Len()
}
