package session

import (
	"context"

	"voice-intent/internal/model"
	"voice-intent/pkg/mcp"
)

// MCPTools exposes an MCP client as a ToolSource.
type MCPTools struct {
	client *mcp.Client
}

func NewMCPTools(client *mcp.Client) *MCPTools {
	return &MCPTools{client: client}
}

func (t *MCPTools) ListTools(ctx context.Context) ([]model.FunctionDescriptor, error) {
	tools, err := t.client.ListTools(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.FunctionDescriptor, 0, len(tools))
	for _, tool := range tools {
		params := make([]model.Parameter, 0, len(tool.Params))
		for _, p := range tool.Params {
			params = append(params, model.Parameter{Name: p.Name, Type: p.Type, Description: p.Description})
		}
		out = append(out, model.FunctionDescriptor{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  params,
			Required:    tool.Required,
		})
	}
	return out, nil
}
