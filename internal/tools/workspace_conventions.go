package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/quillmoor/scout/internal/format"
	"github.com/quillmoor/scout/internal/workspace"
)

// WorkspaceConventionsTool handles the get_workspace_conventions MCP tool.
type WorkspaceConventionsTool struct {
	store *workspace.Store
}

// NewWorkspaceConventionsTool creates a WorkspaceConventionsTool with its dependencies.
func NewWorkspaceConventionsTool(store *workspace.Store) *WorkspaceConventionsTool {
	return &WorkspaceConventionsTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *WorkspaceConventionsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_workspace_conventions",
		mcp.WithDescription(
			"Returns workspace-level conventions and gotchas that apply across all projects in the workspace.",
		),
		mcp.WithString("category",
			mcp.Description("Optional: 'conventions' or 'gotchas' to filter results"),
			mcp.Enum("conventions", "gotchas"),
		),
	)
}

// Handle processes the get_workspace_conventions tool call.
func (t *WorkspaceConventionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ws := t.store.Workspace()
	if ws == nil {
		return mcp.NewToolResultError(
			"No workspace.toml found. Create .scout/workspace.toml at the workspace root " +
				"to define workspace-level conventions.",
		), nil
	}

	if len(ws.Conventions) == 0 && len(ws.Gotchas) == 0 {
		return mcp.NewToolResultText("Workspace config exists but no conventions or gotchas defined."), nil
	}

	wsName := ws.Workspace.Name
	if wsName == "" {
		wsName = "Workspace"
	}

	switch category := req.GetString("category", ""); category {
	case "conventions":
		if len(ws.Conventions) == 0 {
			return mcp.NewToolResultText("No workspace conventions defined."), nil
		}
		return mcp.NewToolResultText(format.NamedSections(wsName+" Conventions", ws.Conventions)), nil
	case "gotchas":
		if len(ws.Gotchas) == 0 {
			return mcp.NewToolResultText("No workspace gotchas defined."), nil
		}
		return mcp.NewToolResultText(format.NamedSections(wsName+" Gotchas", ws.Gotchas)), nil
	case "":
		var out string
		if len(ws.Conventions) > 0 {
			out += format.NamedSections(wsName+" Conventions", ws.Conventions)
		}
		if len(ws.Gotchas) > 0 {
			out += format.NamedSections(wsName+" Gotchas", ws.Gotchas)
		}
		return mcp.NewToolResultText(out), nil
	default:
		return mcp.NewToolResultError(
			fmt.Sprintf("Unknown category '%s'. Use 'conventions' or 'gotchas'.", category),
		), nil
	}
}
