package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GenerateContent sends a generation request through the genai SDK
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, m := range req.Messages {
		contents = append(contents, genai.NewContentFromText(m.Content, toRole(m.Role)))
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, buildConfig(req))
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, ErrEmptyResponse
	}

	out := &Response{Text: text}
	if u := resp.UsageMetadata; u != nil {
		out.Usage = Usage{
			InputTokens:  int(u.PromptTokenCount),
			OutputTokens: int(u.CandidatesTokenCount),
			TotalTokens:  int(u.TotalTokenCount),
		}
	}
	return out, nil
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}

func buildConfig(req *Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.Temperature > 0 {
		cfg.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	return cfg
}

func toRole(role string) genai.Role {
	switch role {
	case "assistant", "model":
		return genai.RoleModel
	default:
		return genai.RoleUser
	}
}
