package intent

import (
	"context"

	"voice-intent/internal/model"
)

// UseCase defines the business logic interface for intent recognition.
type UseCase interface {
	// Detect classifies the utterance into a context answer, continue chat or function call.
	Detect(ctx context.Context, sess Session, input DetectInput) (DetectOutput, error)

	// Answer replies to a result_for_context utterance from the given context block.
	Answer(ctx context.Context, input AnswerInput) (string, error)
}

// LLM is a single-shot completion backend.
type LLM interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Label() string
}

// Session is the per-device state the classifier reads and, on continue chat, prunes.
type Session interface {
	DeviceID() string
	// HasFunctionHandler reports whether function calls can be dispatched at all.
	HasFunctionHandler() bool
	Functions() []model.FunctionDescriptor
	RemoteTools(ctx context.Context) ([]model.FunctionDescriptor, error)
	PruneDialogue(roles ...model.Role)
}

// MusicSource provides the current music catalog names.
type MusicSource interface {
	Names() []string
}
