package gemini

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), Config{})
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestToRole(t *testing.T) {
	tests := map[string]genai.Role{
		"user":      genai.RoleUser,
		"assistant": genai.RoleModel,
		"model":     genai.RoleModel,
		"tool":      genai.RoleUser,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			if got := toRole(in); got != want {
				t.Errorf("toRole(%q) = %q, want %q", in, got, want)
			}
		})
	}
}

func TestBuildConfig(t *testing.T) {
	cfg := buildConfig(&Request{System: "be strict", Temperature: 0.2, MaxTokens: 128})

	if cfg.SystemInstruction == nil || cfg.SystemInstruction.Parts[0].Text != "be strict" {
		t.Errorf("system instruction not set: %+v", cfg.SystemInstruction)
	}
	if cfg.Temperature == nil || *cfg.Temperature != float32(0.2) {
		t.Errorf("temperature not set")
	}
	if cfg.MaxOutputTokens != 128 {
		t.Errorf("expected 128 max tokens, got %d", cfg.MaxOutputTokens)
	}

	empty := buildConfig(&Request{})
	if empty.SystemInstruction != nil || empty.Temperature != nil {
		t.Errorf("expected zero config, got %+v", empty)
	}
}

func TestGenerateContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-2.5-flash:generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "{\"function_call\": {\"name\": \"continue_chat\"}}"}]}}],
			"usageMetadata": {"promptTokenCount": 40, "candidatesTokenCount": 9, "totalTokenCount": 49}
		}`))
	}))
	defer srv.Close()

	client, err := New(context.Background(), Config{APIKey: "test-key", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &Request{
		System:   "system",
		Messages: []Message{{Role: "user", Content: "current dialogue:\nUser: hello"}},
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if resp.Text != `{"function_call": {"name": "continue_chat"}}` {
		t.Errorf("unexpected text %q", resp.Text)
	}
	if resp.Usage.TotalTokens != 49 {
		t.Errorf("expected 49 tokens, got %d", resp.Usage.TotalTokens)
	}
}
