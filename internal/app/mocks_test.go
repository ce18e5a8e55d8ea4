package app

import (
	"context"

	"voice-intent/internal/model"
)

type bareSession struct{}

func (bareSession) DeviceID() string                      { return "dev-1" }
func (bareSession) HasFunctionHandler() bool              { return false }
func (bareSession) Functions() []model.FunctionDescriptor { return nil }
func (bareSession) RemoteTools(ctx context.Context) ([]model.FunctionDescriptor, error) {
	return nil, nil
}
func (bareSession) PruneDialogue(roles ...model.Role) {}
