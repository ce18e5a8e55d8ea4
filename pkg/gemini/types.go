package gemini

import (
	"net/http"

	"google.golang.org/genai"
)

// Config holds Gemini client configuration
type Config struct {
	APIKey string
	Model  string
	// BaseURL overrides the Gemini API endpoint, mainly for tests and proxies.
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// geminiImpl is the internal implementation of IGemini
type geminiImpl struct {
	client *genai.Client
	model  string
}

// Request is a plain-text generation request.
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Message is one conversation turn. Role "assistant" is mapped to Gemini's "model".
type Message struct {
	Role    string
	Content string
}

// Response carries the concatenated candidate text.
type Response struct {
	Text  string
	Usage Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
