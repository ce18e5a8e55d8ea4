package intent

import "voice-intent/internal/model"

// Kind is the decoded category of a classification.
type Kind int

const (
	KindContinueChat Kind = iota
	KindContextAnswer
	KindFunctionCall
)

func (k Kind) String() string {
	switch k {
	case KindContextAnswer:
		return "context_answer"
	case KindFunctionCall:
		return "function_call"
	default:
		return "continue_chat"
	}
}

// Reserved function names the model uses for the two non-call categories.
const (
	FunctionResultForContext = "result_for_context"
	FunctionContinueChat     = "continue_chat"
)

// ContinueChatResult is returned whenever nothing better can be decided.
const ContinueChatResult = `{"function_call": {"name": "continue_chat"}}`

// Intent is the tagged form of a classification result.
type Intent struct {
	Kind      Kind
	Name      string
	Arguments map[string]any
}

// NewIntent derives the Kind from name. A nil args becomes an empty map.
func NewIntent(name string, args map[string]any) Intent {
	if args == nil {
		args = map[string]any{}
	}

	kind := KindFunctionCall
	switch name {
	case FunctionResultForContext:
		kind = KindContextAnswer
	case FunctionContinueChat:
		kind = KindContinueChat
	}

	return Intent{Kind: kind, Name: name, Arguments: args}
}

// ContinueChat is the intent behind ContinueChatResult.
func ContinueChat() Intent {
	return NewIntent(FunctionContinueChat, nil)
}

// SmartHomeContext lists Home Assistant devices, one "location,name,entity_id" line each.
type SmartHomeContext struct {
	Devices []string
}

// DetectInput is the input of a single classification.
type DetectInput struct {
	History   []model.DialogueTurn
	Text      string
	SmartHome *SmartHomeContext // optional
}

// DetectOutput carries the canonical JSON text and its decoded form.
type DetectOutput struct {
	Result string
	Intent Intent
	Cached bool
}

// AnswerInput asks the LLM to reply to Text from ambient context alone.
type AnswerInput struct {
	Context string
	Text    string
}
