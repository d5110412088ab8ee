package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/quillmoor/scout/internal/format"
	"github.com/quillmoor/scout/internal/workspace"
)

// ArchitectureTool handles the get_architecture MCP tool.
type ArchitectureTool struct {
	store *workspace.Store
}

// NewArchitectureTool creates an ArchitectureTool with its dependencies.
func NewArchitectureTool(store *workspace.Store) *ArchitectureTool {
	return &ArchitectureTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *ArchitectureTool) Definition() mcp.Tool {
	return mcp.NewTool("get_architecture",
		mcp.WithDescription(
			"Returns architectural info for a specific concept/area of a project, "+
				"including relevant files and a summary.",
		),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("The project name"),
		),
		mcp.WithString("concept",
			mcp.Required(),
			mcp.Description("The architectural concept to look up (e.g., 'authentication', 'routing', 'database')"),
		),
	)
}

// Handle processes the get_architecture tool call.
func (t *ArchitectureTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, errRes := requireProject(t.store, req)
	if errRes != nil {
		return errRes, nil
	}

	query := req.GetString("concept", "")
	if query == "" {
		return mcp.NewToolResultError("'concept' is required"), nil
	}

	name, concept, err := p.Concept(query)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(format.Concept(p.Root, name, concept)), nil
}
