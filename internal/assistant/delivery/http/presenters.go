package http

import (
	"voice-intent/internal/assistant"
	"voice-intent/internal/intent"
	"voice-intent/internal/model"
)

// --- Request DTOs ---

type turnReq struct {
	Role    string `json:"role"    binding:"required"`
	Content string `json:"content"`
}

type detectReq struct {
	DeviceID         string    `json:"device_id"          binding:"required"`
	Text             string    `json:"text"               binding:"required"`
	History          []turnReq `json:"history"`
	SmartHomeDevices []string  `json:"smart_home_devices"`
}

func (r detectReq) validate() error {
	for _, t := range r.History {
		if !model.Role(t.Role).IsValid() {
			return errInvalidRole
		}
	}
	return nil
}

func (r detectReq) toInput() assistant.DetectInput {
	var history []model.DialogueTurn
	if r.History != nil {
		history = make([]model.DialogueTurn, len(r.History))
		for i, t := range r.History {
			history[i] = model.DialogueTurn{Role: model.Role(t.Role), Content: t.Content}
		}
	}
	return assistant.DetectInput{
		DeviceID:         r.DeviceID,
		Text:             r.Text,
		History:          history,
		SmartHomeDevices: r.SmartHomeDevices,
	}
}

// ---

type handleReq struct {
	DeviceID string `json:"device_id" binding:"required"`
	Text     string `json:"text"      binding:"required"`
}

func (r handleReq) validate() error { return nil }

func (r handleReq) toInput() assistant.TurnInput {
	return assistant.TurnInput{DeviceID: r.DeviceID, Text: r.Text}
}

// ---

type functionsReq struct {
	DeviceID string `form:"device_id" binding:"required"`
}

func (r functionsReq) validate() error { return nil }

// --- Response DTOs ---

type intentResp struct {
	Result    string         `json:"result"`
	Cached    bool           `json:"cached"`
	Kind      string         `json:"kind"`
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

func newIntentResp(out intent.DetectOutput) intentResp {
	return intentResp{
		Result:    out.Result,
		Cached:    out.Cached,
		Kind:      out.Intent.Kind.String(),
		Name:      out.Intent.Name,
		Arguments: out.Intent.Arguments,
	}
}

func (h *handler) newDetectResp(out intent.DetectOutput) intentResp {
	return newIntentResp(out)
}

type handleResp struct {
	Intent         intentResp `json:"intent"`
	Action         string     `json:"action"`
	Result         string     `json:"result"`
	Response       string     `json:"response"`
	CloseAfterChat bool       `json:"close_after_chat"`
}

func (h *handler) newHandleResp(out assistant.TurnOutput) handleResp {
	return handleResp{
		Intent: newIntentResp(intent.DetectOutput{
			Result: out.Result,
			Intent: out.Intent,
			Cached: out.Cached,
		}),
		Action:         string(out.Action.Action),
		Result:         out.Action.Result,
		Response:       out.Action.Response,
		CloseAfterChat: out.CloseAfterChat,
	}
}

type parameterResp struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

type functionResp struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []parameterResp `json:"parameters"`
	Required    []string        `json:"required"`
}

type functionsResp struct {
	Functions []functionResp `json:"functions"`
}

func (h *handler) newFunctionsResp(descs []model.FunctionDescriptor) functionsResp {
	out := make([]functionResp, len(descs))
	for i, d := range descs {
		params := make([]parameterResp, len(d.Parameters))
		for j, p := range d.Parameters {
			params[j] = parameterResp{Name: p.Name, Type: p.Type, Description: p.Description}
		}
		required := d.Required
		if required == nil {
			required = []string{}
		}
		out[i] = functionResp{
			Name:        d.Name,
			Description: d.Description,
			Parameters:  params,
			Required:    required,
		}
	}
	return functionsResp{Functions: out}
}
