// Package server exposes the Reddit operation set as MCP tools.
package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/reddit-mcp/reddit-mcp-server/internal/tools"
)

// Name is the server name announced to MCP clients.
const Name = "reddit"

// Version is set at build time via ldflags.
var Version = "dev"

// New creates the MCP server with every Reddit tool registered.
func New(svc *tools.Service) *server.MCPServer {
	s := server.NewMCPServer(
		Name,
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	registered := Tools(svc)
	s.AddTools(registered...)
	logrus.Infof("Registered %d Reddit tools", len(registered))

	return s
}

const instructions = `Tools for reading and acting on Reddit as the configured account.
Every tool returns JSON. Failures are reported as {"error": "..."}; tools that
return lists report failures as a one-element list [{"error": "..."}].`

// operation adapts one tools.Service method to MCP arguments.
type operation func(ctx context.Context, args arguments) tools.Result

// handler encodes the operation result as JSON text content. Operation
// failures are part of the content, not protocol errors.
func handler(op operation) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := op(ctx, arguments{req: req})

		text, err := result.JSON()
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(text), nil
	}
}

// arguments reads tool arguments, falling back to defaults for anything
// missing or of the wrong type.
type arguments struct {
	req mcp.CallToolRequest
}

func (a arguments) String(name, def string) string {
	return a.req.GetString(name, def)
}

func (a arguments) Int(name string, def int) int {
	return a.req.GetInt(name, def)
}

func (a arguments) Bool(name string, def bool) bool {
	return a.req.GetBool(name, def)
}

// OptionalInt returns nil when the argument is absent or null.
func (a arguments) OptionalInt(name string) *int {
	if v, ok := a.req.GetArguments()[name]; !ok || v == nil {
		return nil
	}
	n := a.req.GetInt(name, 0)
	return &n
}
