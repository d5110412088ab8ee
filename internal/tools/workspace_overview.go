package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/quillmoor/scout/internal/workspace"
)

// WorkspaceOverviewTool handles the get_workspace_overview MCP tool.
type WorkspaceOverviewTool struct {
	store *workspace.Store
}

// NewWorkspaceOverviewTool creates a WorkspaceOverviewTool with its dependencies.
func NewWorkspaceOverviewTool(store *workspace.Store) *WorkspaceOverviewTool {
	return &WorkspaceOverviewTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *WorkspaceOverviewTool) Definition() mcp.Tool {
	return mcp.NewTool("get_workspace_overview",
		mcp.WithDescription(
			"Returns a high-level overview of the entire workspace: workspace info, "+
				"all projects with descriptions, and their dependency relationships. "+
				"Call this first to understand the workspace structure.",
		),
	)
}

// Handle processes the get_workspace_overview tool call.
func (t *WorkspaceOverviewTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ws := t.store.Workspace()

	var b strings.Builder
	if ws != nil && ws.Workspace.Name != "" {
		fmt.Fprintf(&b, "# %s\n\n", ws.Workspace.Name)
	} else {
		b.WriteString("# Workspace Overview\n\n")
	}
	if ws != nil && ws.Workspace.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", ws.Workspace.Description)
	}
	fmt.Fprintf(&b, "**Root:** %s\n\n", t.store.Root())

	projects := t.store.Projects()
	if len(projects) == 0 {
		b.WriteString("No projects found.\n")
		return mcp.NewToolResultText(b.String()), nil
	}

	b.WriteString("## Projects\n\n")
	for _, p := range projects {
		fmt.Fprintf(&b, "- **%s** (%s): %s\n",
			p.Name, languageOrUnknown(p.Config.Project.Language), p.Config.Project.Description)
	}

	b.WriteString("\n## Dependencies\n\n")
	hasDeps := false
	for _, p := range projects {
		related := p.Config.RelatedProjects
		if len(related.Upstream) == 0 && len(related.Downstream) == 0 {
			continue
		}
		hasDeps = true
		fmt.Fprintf(&b, "**%s**:\n", p.Name)
		if len(related.Upstream) > 0 {
			fmt.Fprintf(&b, "  ← depends on: %s\n", strings.Join(related.Upstream, ", "))
		}
		if len(related.Downstream) > 0 {
			fmt.Fprintf(&b, "  → used by: %s\n", strings.Join(related.Downstream, ", "))
		}
	}
	if !hasDeps {
		b.WriteString("No cross-project dependencies defined.\n")
	}

	if ws != nil {
		b.WriteString("\n*Use get_workspace_conventions() for workspace-wide coding standards.*")
	}
	return mcp.NewToolResultText(b.String()), nil
}
