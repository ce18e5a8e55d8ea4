package llmprovider

import "context"

// Provider is one LLM backend in the fallback chain.
type Provider interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	// Name is the configured provider name, e.g. "qwen".
	Name() string
	Model() string
}

// Request is backend-neutral. The intent classifier sends one user message
// carrying the whole transcript.
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
}

type Message struct {
	Role    string // user | assistant
	Content string
}

// Response carries the raw model text; JSON extraction happens in the caller.
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
