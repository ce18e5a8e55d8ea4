package qwen

import (
	"errors"
	"time"
)

const (
	// DefaultModel is the default Qwen model
	DefaultModel = "qwen-plus"

	// DefaultBaseURL is the default Qwen API endpoint
	DefaultBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	chatCompletionsPath = "/chat/completions"
)

// ErrEmptyResponse is returned when the endpoint answers without choices.
var ErrEmptyResponse = errors.New("qwen: empty response")
