package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Client lists tools from MCP servers over HTTP JSON-RPC.
type Client struct {
	endpoints []string
	http      *http.Client
}

// New creates a Client.
func New(cfg Config) (*Client, error) {
	if len(cfg.Endpoints) == 0 {
		return nil, ErrNoEndpoints
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{endpoints: cfg.Endpoints, http: hc}, nil
}

// ListTools queries every endpoint concurrently. Tools come back in endpoint
// order; any failing endpoint fails the whole call.
func (c *Client) ListTools(ctx context.Context) ([]Tool, error) {
	perEndpoint := make([][]Tool, len(c.endpoints))

	g, gctx := errgroup.WithContext(ctx)
	for i, endpoint := range c.endpoints {
		g.Go(func() error {
			tools, err := c.listTools(gctx, endpoint)
			if err != nil {
				return fmt.Errorf("mcp.ListTools %s: %w", endpoint, err)
			}
			perEndpoint[i] = tools
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Tool
	for _, tools := range perEndpoint {
		out = append(out, tools...)
	}
	return out, nil
}

func (c *Client) listTools(ctx context.Context, endpoint string) ([]Tool, error) {
	raw, err := c.call(ctx, endpoint, methodToolsList, nil)
	if err != nil {
		return nil, err
	}

	var result toolsListResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode tools: %w", err)
	}

	tools := make([]Tool, 0, len(result.Tools))
	for _, ts := range result.Tools {
		if ts.Name == "" {
			continue
		}
		tools = append(tools, toTool(endpoint, ts))
	}
	return tools, nil
}

func toTool(endpoint string, ts toolSchema) Tool {
	names := make([]string, 0, len(ts.InputSchema.Properties))
	for name := range ts.InputSchema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	params := make([]Param, 0, len(names))
	for _, name := range names {
		p := ts.InputSchema.Properties[name]
		params = append(params, Param{Name: name, Type: p.Type, Description: p.Description})
	}

	return Tool{
		Endpoint:    endpoint,
		Name:        ts.Name,
		Description: ts.Description,
		Params:      params,
		Required:    ts.InputSchema.Required,
	}
}

func (c *Client) call(ctx context.Context, endpoint, method string, params any) (json.RawMessage, error) {
	id := uuid.NewString()
	body, err := json.Marshal(rpcRequest{JSONRPC: jsonRPCVersion, ID: id, Method: method, Params: params})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(respBody, &rpcResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if rpcResp.Error != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRPC, method, rpcResp.Error)
	}
	if rpcResp.ID != id {
		return nil, fmt.Errorf("%w: response id %q does not match request %q", ErrRPC, rpcResp.ID, id)
	}

	return rpcResp.Result, nil
}
