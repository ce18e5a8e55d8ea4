package session

import (
	"context"

	"voice-intent/internal/model"
)

// ToolSource lists functions served outside this process.
type ToolSource interface {
	ListTools(ctx context.Context) ([]model.FunctionDescriptor, error)
}
