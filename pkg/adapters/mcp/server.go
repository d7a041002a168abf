// Package mcp exposes the deskpilot engine as an MCP server so agent hosts
// can drive the desktop through tool calls.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/okarin/deskpilot/pkg/domain"
)

// Engine defines the interface the MCP adapter needs from the engine.
type Engine interface {
	Dispatch(ctx context.Context, task string) domain.ActionResult
	ReadScreenText(ctx context.Context) (string, error)
	Simulated() bool
}

// Server wraps the engine and exposes it as an MCP server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates the MCP server and registers its tools.
func NewServer(engine Engine, version string) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("deskpilot", version),
	}
	s.registerTools()
	return s
}

// ServeStdio runs the server over stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	executeTool := mcp.NewTool("execute_task",
		mcp.WithDescription("Execute a desktop control task given as a short literal command. "+
			"Supported shapes: 'click at <x>, <y>', 'move to <x>, <y>', 'type <text>', "+
			"'press <key+key>', 'open <app>', 'read screen'."),
		mcp.WithString("task", mcp.Required(), mcp.Description("The task string to execute")),
	)
	s.mcpServer.AddTool(executeTool, s.handleExecuteTask)

	readTool := mcp.NewTool("read_screen",
		mcp.WithDescription("Capture the screen and return its text content via OCR."),
	)
	s.mcpServer.AddTool(readTool, s.handleReadScreen)
}

type executeTaskArgs struct {
	Task string `mapstructure:"task"`
}

func (s *Server) handleExecuteTask(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args executeTaskArgs
	if err := mapstructure.Decode(req.GetArguments(), &args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if args.Task == "" {
		return mcp.NewToolResultError("missing task argument"), nil
	}

	res := s.engine.Dispatch(ctx, args.Task)
	payload, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	if res.Status == domain.StatusFailure {
		return mcp.NewToolResultError(string(payload)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

func (s *Server) handleReadScreen(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := s.engine.ReadScreenText(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}
