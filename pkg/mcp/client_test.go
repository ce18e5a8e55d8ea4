package mcp_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-intent/pkg/mcp"
)

type rpcReq struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
}

func newServer(t *testing.T, tools []map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
		if req.Method == "tools/list" {
			resp["result"] = map[string]any{"tools": tools}
		} else {
			resp["error"] = map[string]any{"code": -32601, "message": "Method not found"}
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNew_RequiresEndpoints(t *testing.T) {
	_, err := mcp.New(mcp.Config{})
	assert.ErrorIs(t, err, mcp.ErrNoEndpoints)
}

func TestListTools(t *testing.T) {
	weather := newServer(t, []map[string]any{
		{
			"name":        "get_weather",
			"description": "Weather forecast",
			"inputSchema": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"location": map[string]any{"type": "string", "description": "City"},
					"days":     map[string]any{"type": "integer"},
				},
				"required": []string{"location"},
			},
		},
	})
	calc := newServer(t, []map[string]any{
		{"name": "add", "description": "Adds", "inputSchema": map[string]any{"type": "object"}},
		{"name": "", "description": "ignored"},
	})

	c, err := mcp.New(mcp.Config{Endpoints: []string{weather.URL, calc.URL}})
	require.NoError(t, err)

	tools, err := c.ListTools(context.Background())
	require.NoError(t, err)
	require.Len(t, tools, 2)

	assert.Equal(t, "get_weather", tools[0].Name)
	assert.Equal(t, weather.URL, tools[0].Endpoint)
	assert.Equal(t, []mcp.Param{
		{Name: "days", Type: "integer"},
		{Name: "location", Type: "string", Description: "City"},
	}, tools[0].Params)
	assert.Equal(t, []string{"location"}, tools[0].Required)

	assert.Equal(t, "add", tools[1].Name)
	assert.Empty(t, tools[1].Params)
}

func TestListTools_EndpointFailure(t *testing.T) {
	ok := newServer(t, []map[string]any{{"name": "add"}})
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer broken.Close()

	c, err := mcp.New(mcp.Config{Endpoints: []string{ok.URL, broken.URL}})
	require.NoError(t, err)

	_, err = c.ListTools(context.Background())
	assert.Error(t, err)
}

func TestListTools_RPCError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcReq
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"error":   map[string]any{"code": -32603, "message": "internal"},
		})
	}))
	defer srv.Close()

	c, err := mcp.New(mcp.Config{Endpoints: []string{srv.URL}})
	require.NoError(t, err)

	_, err = c.ListTools(context.Background())
	assert.ErrorIs(t, err, mcp.ErrRPC)
}

func TestListTools_MismatchedID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      "someone-else",
			"result":  map[string]any{"tools": []any{}},
		})
	}))
	defer srv.Close()

	c, err := mcp.New(mcp.Config{Endpoints: []string{srv.URL}})
	require.NoError(t, err)

	_, err = c.ListTools(context.Background())
	assert.ErrorIs(t, err, mcp.ErrRPC)
}
