package mcp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Config lists the MCP servers to query.
type Config struct {
	Endpoints  []string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Param is one tool argument. Params are sorted by name.
type Param struct {
	Name        string
	Type        string
	Description string
}

// Tool is a remote tool as advertised by tools/list.
type Tool struct {
	Endpoint    string
	Name        string
	Description string
	Params      []Param
	Required    []string
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      string          `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("code %d: %s", e.Code, e.Message)
}

type toolsListResult struct {
	Tools []toolSchema `json:"tools"`
}

type toolSchema struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema inputSchema `json:"inputSchema"`
}

type inputSchema struct {
	Properties map[string]property `json:"properties"`
	Required   []string            `json:"required"`
}

type property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}
