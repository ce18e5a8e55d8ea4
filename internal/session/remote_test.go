package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-intent/internal/session"
	"voice-intent/pkg/mcp"
)

func TestMCPTools_ListTools(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID string `json:"id"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result": map[string]any{"tools": []map[string]any{{
				"name":        "lookup_order",
				"description": "Find an order",
				"inputSchema": map[string]any{
					"properties": map[string]any{"order_id": map[string]any{"type": "string"}},
					"required":   []string{"order_id"},
				},
			}}},
		})
	}))
	defer srv.Close()

	client, err := mcp.New(mcp.Config{Endpoints: []string{srv.URL}})
	require.NoError(t, err)

	c := session.NewConnection("dev-1", nil, session.NewMCPTools(client), "")
	tools, err := c.RemoteTools(context.Background())
	require.NoError(t, err)
	require.Len(t, tools, 1)

	assert.Equal(t, "lookup_order", tools[0].Name)
	assert.Equal(t, "order_id", tools[0].Parameters[0].Name)
	assert.Equal(t, []string{"order_id"}, tools[0].Required)
}
