package qwen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error without API key")
	}
}

func TestGenerateContent(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			t.Errorf("missing bearer token")
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "cmpl-1",
			"model": "qwen-plus",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"function_call\": {\"name\": \"continue_chat\"}}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 120, "completion_tokens": 12, "total_tokens": 132}
		}`))
	}))
	defer srv.Close()

	client, err := New(Config{APIKey: "sk-test", BaseURL: srv.URL + "/"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &Request{
		System:      "system prompt",
		Messages:    []Message{{Role: "user", Content: "current dialogue:\nUser: hi"}},
		Temperature: 0.1,
		MaxTokens:   256,
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}

	if resp.Text != `{"function_call": {"name": "continue_chat"}}` {
		t.Errorf("unexpected text %q", resp.Text)
	}
	if resp.Usage.TotalTokens != 132 {
		t.Errorf("expected 132 total tokens, got %d", resp.Usage.TotalTokens)
	}

	if got.Model != DefaultModel {
		t.Errorf("expected default model, got %s", got.Model)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Messages[1].Role != "user" {
		t.Errorf("unexpected messages: %+v", got.Messages)
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "rate limited", "code": "429"}}`))
	}))
	defer srv.Close()

	client, _ := New(Config{APIKey: "sk-test", BaseURL: srv.URL})
	_, err := client.GenerateContent(context.Background(), &Request{})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.HTTPStatus() != http.StatusTooManyRequests || apiErr.Message != "rate limited" {
		t.Errorf("unexpected api error %+v", apiErr)
	}
}

func TestGenerateContent_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	client, _ := New(Config{APIKey: "sk-test", BaseURL: srv.URL})
	_, err := client.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("expected ErrEmptyResponse, got %v", err)
	}
}
