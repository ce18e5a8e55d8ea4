package function

import (
	"context"

	"voice-intent/internal/model"
	pkgLog "voice-intent/pkg/log"
)

type exitHandler struct {
	l pkgLog.Logger
}

// NewExit ends the conversation after the goodbye has been spoken.
func NewExit(l pkgLog.Logger) Handler {
	return &exitHandler{l: l}
}

func (h *exitHandler) Descriptor() model.FunctionDescriptor {
	return model.FunctionDescriptor{
		Name:        NameExit,
		Description: "Called when the user wants to end the conversation or needs to log out of the system",
		Parameters: []model.Parameter{
			{Name: "say_goodbye", Type: "string", Description: "A friendly farewell to end a conversation with the user"},
		},
	}
}

func (h *exitHandler) Execute(ctx context.Context, conn Conn, args map[string]any) (model.ActionResult, error) {
	goodbye, _ := args["say_goodbye"].(string)
	if goodbye == "" {
		goodbye = defaultGoodbye
	}

	conn.SetCloseAfterChat(true)
	h.l.Infof(ctx, "function.exit: exit intent processed: %s", goodbye)

	return model.ActionResult{
		Action:   model.ActionResponse,
		Result:   "Exit intent has been processed",
		Response: goodbye,
	}, nil
}
