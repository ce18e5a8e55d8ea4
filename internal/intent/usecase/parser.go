package usecase

import (
	"encoding/json"
	"strings"

	"voice-intent/internal/intent"
)

// ParseResult is either a parsed intent with its exact JSON text or the fallback.
type ParseResult struct {
	Result   string
	Intent   intent.Intent
	Fallback bool
}

type wireResponse struct {
	FunctionCall *struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	} `json:"function_call"`
}

// ParseResponse extracts the JSON object from raw model output. The returned
// Result is the extracted text byte for byte; anything unusable yields the
// continue_chat fallback instead of an error.
func ParseResponse(raw string) ParseResult {
	candidate := extractJSON(strings.TrimSpace(raw))

	in, ok := decode(candidate)
	if !ok {
		return ParseResult{
			Result:   intent.ContinueChatResult,
			Intent:   intent.ContinueChat(),
			Fallback: true,
		}
	}

	return ParseResult{Result: candidate, Intent: in}
}

// Decode turns a stored result string into its tagged form. Undecodable input
// decodes as continue chat.
func Decode(result string) intent.Intent {
	return ParseResponse(result).Intent
}

// extractJSON returns the span from the first '{' to the last '}', or s when
// there is none.
func extractJSON(s string) string {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end < start {
		return s
	}
	return s[start : end+1]
}

func decode(candidate string) (intent.Intent, bool) {
	var w wireResponse
	if err := json.Unmarshal([]byte(candidate), &w); err != nil {
		return intent.Intent{}, false
	}
	if w.FunctionCall == nil || w.FunctionCall.Name == "" {
		return intent.Intent{}, false
	}
	return intent.NewIntent(w.FunctionCall.Name, decodeArguments(w.FunctionCall.Arguments)), true
}

// decodeArguments accepts an object or an object encoded as a JSON string.
func decodeArguments(raw json.RawMessage) map[string]any {
	if len(raw) == 0 {
		return nil
	}

	var args map[string]any
	if err := json.Unmarshal(raw, &args); err == nil {
		return args
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if err := json.Unmarshal([]byte(s), &args); err == nil {
			return args
		}
	}
	return nil
}
