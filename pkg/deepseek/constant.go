package deepseek

import (
	"errors"
	"time"
)

const (
	DefaultBaseURL = "https://api.deepseek.com/v1"
	DefaultModel   = "deepseek-chat"
	DefaultTimeout = 60 * time.Second

	chatCompletionsPath = "/chat/completions"
)

var (
	ErrMissingAPIKey = errors.New("deepseek: API key is required")
	ErrEmptyResponse = errors.New("deepseek: empty response")
)
