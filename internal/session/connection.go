package session

import (
	"context"
	"slices"
	"sync"

	"voice-intent/internal/function"
	"voice-intent/internal/model"
)

// Connection is the state kept for one device between turns.
type Connection struct {
	deviceID string
	registry *function.Registry
	tools    ToolSource

	mu             sync.Mutex
	dialogue       []model.DialogueTurn
	systemPrompt   string
	closeAfterChat bool
}

// NewConnection creates a connection. A nil registry disables function
// dispatch; tools may be nil.
func NewConnection(deviceID string, registry *function.Registry, tools ToolSource, systemPrompt string) *Connection {
	return &Connection{
		deviceID:     deviceID,
		registry:     registry,
		tools:        tools,
		systemPrompt: systemPrompt,
	}
}

func (c *Connection) DeviceID() string { return c.deviceID }

// Registry returns the function registry, nil when dispatch is disabled.
func (c *Connection) Registry() *function.Registry { return c.registry }

func (c *Connection) HasFunctionHandler() bool { return c.registry != nil }

func (c *Connection) Functions() []model.FunctionDescriptor {
	if c.registry == nil {
		return nil
	}
	return c.registry.Functions()
}

func (c *Connection) RemoteTools(ctx context.Context) ([]model.FunctionDescriptor, error) {
	if c.tools == nil {
		return nil, nil
	}
	return c.tools.ListTools(ctx)
}

// Append adds turns to the end of the dialogue.
func (c *Connection) Append(turns ...model.DialogueTurn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialogue = append(c.dialogue, turns...)
}

// Dialogue returns a snapshot of the dialogue.
func (c *Connection) Dialogue() []model.DialogueTurn {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.dialogue)
}

// PruneDialogue drops every turn whose role is in roles, keeping order.
func (c *Connection) PruneDialogue(roles ...model.Role) {
	if len(roles) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialogue = slices.DeleteFunc(c.dialogue, func(t model.DialogueTurn) bool {
		return slices.Contains(roles, t.Role)
	})
}

func (c *Connection) SystemPrompt() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.systemPrompt
}

func (c *Connection) ChangeSystemPrompt(prompt string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.systemPrompt = prompt
}

func (c *Connection) SetCloseAfterChat(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeAfterChat = v
}

func (c *Connection) CloseAfterChat() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closeAfterChat
}
