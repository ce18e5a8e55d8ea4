package llmprovider

import (
	"context"
	"errors"
	"testing"

	"voice-intent/pkg/deepseek"
	"voice-intent/pkg/gemini"
	"voice-intent/pkg/qwen"
)

type stubQwen struct {
	req  *qwen.Request
	resp *qwen.Response
	err  error
}

func (s *stubQwen) GenerateContent(_ context.Context, req *qwen.Request) (*qwen.Response, error) {
	s.req = req
	return s.resp, s.err
}
func (s *stubQwen) Model() string { return "qwen-plus" }

type stubDeepSeek struct {
	req  *deepseek.Request
	resp *deepseek.Response
	err  error
}

func (s *stubDeepSeek) GenerateContent(_ context.Context, req *deepseek.Request) (*deepseek.Response, error) {
	s.req = req
	return s.resp, s.err
}
func (s *stubDeepSeek) Model() string { return "deepseek-chat" }

type stubGemini struct {
	req  *gemini.Request
	resp *gemini.Response
	err  error
}

func (s *stubGemini) GenerateContent(_ context.Context, req *gemini.Request) (*gemini.Response, error) {
	s.req = req
	return s.resp, s.err
}
func (s *stubGemini) Model() string { return "gemini-2.5-flash" }

func TestAdapters_MapRequestAndResponse(t *testing.T) {
	q := &stubQwen{resp: &qwen.Response{Text: "q", Usage: qwen.Usage{InputTokens: 3, OutputTokens: 2}}}
	d := &stubDeepSeek{resp: &deepseek.Response{
		Model:   "deepseek-chat-0324",
		Choices: []deepseek.Choice{{Message: deepseek.Message{Role: "assistant", Content: "d"}}},
		Usage:   deepseek.Usage{PromptTokens: 4, CompletionTokens: 1},
	}}
	g := &stubGemini{resp: &gemini.Response{Text: "g", Usage: gemini.Usage{InputTokens: 5, OutputTokens: 5}}}

	tests := []struct {
		name      string
		provider  Provider
		wantText  string
		wantName  string
		wantModel string
		wantTotal int
		system    func() string
	}{
		{"qwen", NewQwenAdapter(q), "q", ProviderQwen, "qwen-plus", 5, func() string { return q.req.System }},
		{"openai", NewOpenAIAdapter(q), "q", ProviderOpenAI, "qwen-plus", 5, func() string { return q.req.System }},
		{"deepseek", NewDeepSeekAdapter(d), "d", ProviderDeepSeek, "deepseek-chat-0324", 5, func() string { return d.req.System }},
		{"gemini", NewGeminiAdapter(g), "g", ProviderGemini, "gemini-2.5-flash", 10, func() string { return g.req.System }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := tt.provider.GenerateContent(context.Background(), classifyRequest())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.Text != tt.wantText || resp.ProviderName != tt.wantName || resp.ModelName != tt.wantModel {
				t.Errorf("unexpected response %+v", resp)
			}
			if resp.Usage.TotalTokens != tt.wantTotal {
				t.Errorf("expected %d total tokens, got %d", tt.wantTotal, resp.Usage.TotalTokens)
			}
			if tt.system() != "classify" {
				t.Errorf("system instruction not forwarded: %q", tt.system())
			}
			if tt.provider.Name() != tt.wantName {
				t.Errorf("Name() = %s", tt.provider.Name())
			}
		})
	}
}

func TestAdapters_ClassifyClientErrors(t *testing.T) {
	q := &stubQwen{err: &qwen.APIError{StatusCode: 429, Message: "slow down"}}
	d := &stubDeepSeek{err: &deepseek.APIError{StatusCode: 401, Message: "bad key"}}

	_, err := NewQwenAdapter(q).GenerateContent(context.Background(), classifyRequest())
	if !errors.Is(err, ErrProviderRateLimited) {
		t.Errorf("expected rate limited, got %v", err)
	}

	_, err = NewDeepSeekAdapter(d).GenerateContent(context.Background(), classifyRequest())
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("expected invalid request, got %v", err)
	}
	var apiErr *deepseek.APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "bad key" {
		t.Errorf("expected wrapped deepseek error, got %v", err)
	}
}
