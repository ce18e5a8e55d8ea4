package usecase

import (
	"context"

	"voice-intent/internal/assistant"
	"voice-intent/internal/model"
)

// Functions lists local functions followed by remote tools. A failing remote
// source is logged and skipped.
func (uc *implUseCase) Functions(ctx context.Context, deviceID string) ([]model.FunctionDescriptor, error) {
	conn, err := uc.sessions.GetOrCreate(deviceID)
	if err != nil {
		return nil, assistant.ErrEmptyDeviceID
	}

	functions := conn.Functions()
	remote, err := conn.RemoteTools(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "%s: remote tools unavailable: %v", LogPrefixFunctions, err)
		return functions, nil
	}

	return append(functions, remote...), nil
}
