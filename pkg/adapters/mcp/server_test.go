package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okarin/deskpilot"
	"github.com/okarin/deskpilot/internal/logging"
	"github.com/okarin/deskpilot/pkg/domain"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	engine, err := deskpilot.New(
		deskpilot.WithForceSimulation(true),
		deskpilot.WithLogger(logging.NewNop()),
	)
	require.NoError(t, err)
	return NewServer(engine, "test")
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	content, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return content.Text
}

func TestExecuteTaskTool(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleExecuteTask(context.Background(),
		callRequest("execute_task", map[string]any{"task": "click at 500, 300"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	var result domain.ActionResult
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &result))
	assert.Equal(t, domain.StatusSuccess, result.Status)
	assert.Equal(t, domain.KindClick, result.Kind)
	assert.True(t, result.Simulated)
}

func TestExecuteTaskToolUnrecognized(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleExecuteTask(context.Background(),
		callRequest("execute_task", map[string]any{"task": "frobnicate the widget"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, textOf(t, res), "frobnicate the widget")
}

func TestExecuteTaskToolMissingArgument(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleExecuteTask(context.Background(),
		callRequest("execute_task", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestReadScreenTool(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleReadScreen(context.Background(), callRequest("read_screen", nil))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, textOf(t, res), "would read")
}
