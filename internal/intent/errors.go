package intent

import "errors"

// Domain-specific errors for the intent package.
var (
	ErrLLMNotConfigured = errors.New("intent: LLM provider not set")
	ErrEmptyText        = errors.New("intent: text is empty")
)
