package gemini

import (
	"errors"
	"time"
)

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-2.5-flash"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

var (
	ErrMissingAPIKey = errors.New("gemini: APIKey is required")
	ErrEmptyResponse = errors.New("gemini: empty response")
)
