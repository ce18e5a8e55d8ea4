package llmprovider

import (
	"context"

	"voice-intent/pkg/deepseek"
	"voice-intent/pkg/gemini"
	"voice-intent/pkg/qwen"
)

// GeminiAdapter fronts pkg/gemini.
type GeminiAdapter struct {
	client gemini.IGemini
}

func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]gemini.Message, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = gemini.Message{Role: m.Role, Content: m.Content}
	}

	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		System:      req.SystemInstruction,
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, classify(err)
	}

	return newResponse(ProviderGemini, a.client.Model(), resp.Text, resp.Usage.InputTokens, resp.Usage.OutputTokens), nil
}

func (a *GeminiAdapter) Name() string  { return ProviderGemini }
func (a *GeminiAdapter) Model() string { return a.client.Model() }

// QwenAdapter fronts pkg/qwen. The same client serves generic OpenAI-compatible
// endpoints, which are reported under ProviderOpenAI.
type QwenAdapter struct {
	client qwen.IQwen
	name   string
}

func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client, name: ProviderQwen}
}

func NewOpenAIAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client, name: ProviderOpenAI}
}

func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]qwen.Message, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = qwen.Message{Role: m.Role, Content: m.Content}
	}

	resp, err := a.client.GenerateContent(ctx, &qwen.Request{
		System:      req.SystemInstruction,
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, classify(err)
	}

	model := resp.Model
	if model == "" {
		model = a.client.Model()
	}
	return newResponse(a.name, model, resp.Text, resp.Usage.InputTokens, resp.Usage.OutputTokens), nil
}

func (a *QwenAdapter) Name() string  { return a.name }
func (a *QwenAdapter) Model() string { return a.client.Model() }

// DeepSeekAdapter fronts pkg/deepseek.
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]deepseek.Message, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = deepseek.Message{Role: m.Role, Content: m.Content}
	}

	resp, err := a.client.GenerateContent(ctx, &deepseek.Request{
		System:      req.SystemInstruction,
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, classify(err)
	}

	model := resp.Model
	if model == "" {
		model = a.client.Model()
	}
	return newResponse(ProviderDeepSeek, model, resp.Text(), resp.Usage.PromptTokens, resp.Usage.CompletionTokens), nil
}

func (a *DeepSeekAdapter) Name() string  { return ProviderDeepSeek }
func (a *DeepSeekAdapter) Model() string { return a.client.Model() }

func newResponse(provider, model, text string, in, out int) *Response {
	return &Response{
		Text:         text,
		ProviderName: provider,
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  in,
			OutputTokens: out,
			TotalTokens:  in + out,
		},
	}
}
