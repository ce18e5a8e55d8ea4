package assistant

import (
	"context"

	"voice-intent/internal/intent"
	"voice-intent/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Detect classifies an utterance for a device without acting on it.
	Detect(ctx context.Context, input DetectInput) (intent.DetectOutput, error)

	// HandleTurn classifies an utterance and carries out the decision.
	HandleTurn(ctx context.Context, input TurnInput) (TurnOutput, error)

	// Functions lists the catalog the classifier chooses from for a device.
	Functions(ctx context.Context, deviceID string) ([]model.FunctionDescriptor, error)
}
