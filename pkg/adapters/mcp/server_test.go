package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/proofview"
	"github.com/aretw0/proofview/internal/testutils"
	"github.com/aretw0/proofview/pkg/adapters/memory"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	v, err := proofview.New("", proofview.WithLoader(memory.NewLoader(testutils.FiveStateCycle(t))))
	require.NoError(t, err)
	return NewServer(v, nil)
}

func TestTools_Navigation(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	req := mcp.CallToolRequest{}

	resp, err := s.handleRender(ctx, req, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Cursor)
	assert.Equal(t, []string{"Turn: Other", "State 1 / 5"}, resp.Status)
	assert.Contains(t, resp.Mermaid, "graph LR")

	resp, err = s.handlePrevious(ctx, req, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Cursor)

	resp, err = s.handleNext(ctx, req, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Cursor)
	assert.Equal(t, "Turn: Prover", resp.Status[0])

	resp, err = s.handleSeek(ctx, req, map[string]interface{}{"index": float64(3)})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Cursor)
	assert.Equal(t, 3, resp.Scene.Cursor)

	resp, err = s.handleSeek(ctx, req, map[string]interface{}{"index": float64(-7)})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Cursor)
}

func TestSeek_InvalidIndex(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	for _, args := range []map[string]interface{}{
		{},
		{"index": "two"},
		{"index": 1.5},
	} {
		_, err := s.handleSeek(ctx, mcp.CallToolRequest{}, args)
		assert.Error(t, err, "args %v", args)
	}
}

func TestResource_Trace(t *testing.T) {
	s := newTestServer(t)

	contents, err := s.readTrace(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, TraceURI, text.URI)

	var res TraceResource
	require.NoError(t, json.Unmarshal([]byte(text.Text), &res))
	assert.Equal(t, "cycle", res.Name)
	assert.Equal(t, 4, res.Nodes)
	assert.Len(t, res.Edges, 4)
	assert.Equal(t, 5, res.States)
}
