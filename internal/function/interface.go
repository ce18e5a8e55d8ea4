package function

import (
	"context"

	"voice-intent/internal/model"
)

// Handler is a function the intent classifier may choose.
type Handler interface {
	// Descriptor is the catalog entry shown to the model.
	Descriptor() model.FunctionDescriptor

	// Execute runs the function for conn. args have already been validated
	// against the descriptor's schema.
	Execute(ctx context.Context, conn Conn, args map[string]any) (model.ActionResult, error)
}

// Conn is the part of a device connection that handlers may change.
type Conn interface {
	DeviceID() string
	SetCloseAfterChat(v bool)
	ChangeSystemPrompt(prompt string)
}

// Catalog lists playable songs.
type Catalog interface {
	Names() []string
}
