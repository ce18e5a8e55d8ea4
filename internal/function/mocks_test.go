package function_test

import (
	"context"

	"voice-intent/internal/function"
	"voice-intent/internal/model"
)

type mockConn struct {
	closeAfterChat bool
	prompt         string
}

func (c *mockConn) DeviceID() string                 { return "dev-1" }
func (c *mockConn) SetCloseAfterChat(v bool)         { c.closeAfterChat = v }
func (c *mockConn) ChangeSystemPrompt(prompt string) { c.prompt = prompt }

type staticCatalog []string

func (c staticCatalog) Names() []string { return c }

type mockHandler struct {
	desc   model.FunctionDescriptor
	calls  int
	result model.ActionResult
	err    error
}

func (h *mockHandler) Descriptor() model.FunctionDescriptor { return h.desc }

func (h *mockHandler) Execute(ctx context.Context, conn function.Conn, args map[string]any) (model.ActionResult, error) {
	h.calls++
	return h.result, h.err
}
