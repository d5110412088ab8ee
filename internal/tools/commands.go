package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/quillmoor/scout/internal/format"
	"github.com/quillmoor/scout/internal/workspace"
)

// CommandsTool handles the get_commands MCP tool.
type CommandsTool struct {
	store *workspace.Store
}

// NewCommandsTool creates a CommandsTool with its dependencies.
func NewCommandsTool(store *workspace.Store) *CommandsTool {
	return &CommandsTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *CommandsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_commands",
		mcp.WithDescription(
			"Returns executable commands for a project (build, test, lint, run, dev, etc.)",
		),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("The project name"),
		),
		mcp.WithString("command_type",
			mcp.Description("Optional specific command type: 'build', 'test', 'lint', 'run', 'dev'"),
		),
	)
}

// Handle processes the get_commands tool call. Command types are exact
// keys, not fuzzy-matched; a project's commands map is small enough that
// the error message can list nothing and stay useful.
func (t *CommandsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, errRes := requireProject(t.store, req)
	if errRes != nil {
		return errRes, nil
	}

	cmdType := req.GetString("command_type", "")
	if cmdType == "" {
		return mcp.NewToolResultText(format.Commands(p.Config.Commands)), nil
	}

	cmd, ok := p.Config.Commands[cmdType]
	if !ok {
		return mcp.NewToolResultError(
			fmt.Sprintf("Command '%s' not found for project '%s'", cmdType, p.Name),
		), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s: %s", cmdType, cmd)), nil
}
