package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/quillmoor/scout/internal/workspace"
)

// ReloadTool handles the reload_workspace MCP tool, the only operation
// with a write side effect.
type ReloadTool struct {
	store *workspace.Store
}

// NewReloadTool creates a ReloadTool with its dependencies.
func NewReloadTool(store *workspace.Store) *ReloadTool {
	return &ReloadTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *ReloadTool) Definition() mcp.Tool {
	return mcp.NewTool("reload_workspace",
		mcp.WithDescription(
			"Reloads workspace and project metadata from disk. "+
				"Use this after editing .scout files to pick up changes without restarting the server.",
		),
	)
}

// Handle processes the reload_workspace tool call. On failure the store
// keeps serving the previous snapshot.
func (t *ReloadTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := t.store.Reload(); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to reload workspace: %v", err)), nil
	}
	return mcp.NewToolResultText("Workspace and projects reloaded from disk."), nil
}
