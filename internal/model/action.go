package model

// Action tells the caller what to do with the result of a dispatched function.
type Action string

const (
	// ActionNone means the handler did its work and nothing needs to be said.
	ActionNone Action = "none"
	// ActionResponse means Response should be spoken to the user as is.
	ActionResponse Action = "response"
	// ActionReqLLM means Result should be handed back to the chat LLM.
	ActionReqLLM Action = "req_llm"
	// ActionNotFound means no handler is registered under the requested name.
	ActionNotFound Action = "not_found"
	// ActionError means the handler failed or its arguments were invalid.
	ActionError Action = "error"
	// ActionRemote means the call names a remote tool; the client connected to
	// the tool endpoint executes it.
	ActionRemote Action = "remote"
)

// ActionResult is what a function handler returns after executing a call.
type ActionResult struct {
	Action   Action `json:"action"`
	Result   string `json:"result"`
	Response string `json:"response"`
}
