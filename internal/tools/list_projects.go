package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/quillmoor/scout/internal/workspace"
)

// ListProjectsTool handles the list_projects MCP tool.
type ListProjectsTool struct {
	store *workspace.Store
}

// NewListProjectsTool creates a ListProjectsTool with its dependencies.
func NewListProjectsTool(store *workspace.Store) *ListProjectsTool {
	return &ListProjectsTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *ListProjectsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_projects",
		mcp.WithDescription(
			"Lists all projects with their descriptions. "+
				"Use this to discover what projects exist in the workspace.",
		),
	)
}

// Handle processes the list_projects tool call.
func (t *ListProjectsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projects := t.store.Projects()
	if len(projects) == 0 {
		return mcp.NewToolResultText(
			"No projects found. Make sure .scout/project.toml files exist in your workspace.",
		), nil
	}

	var b strings.Builder
	for _, p := range projects {
		fmt.Fprintf(&b, "- **%s** (%s): %s\n  Path: %s\n",
			p.Name,
			languageOrUnknown(p.Config.Project.Language),
			p.Config.Project.Description,
			p.Root,
		)
	}
	return mcp.NewToolResultText(b.String()), nil
}
