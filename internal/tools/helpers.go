// Package tools implements the MCP tool catalog exposed by the scout
// server. Each tool is a small struct holding its dependencies, with a
// Definition for registration and a Handle invoked per call.
//
// Validation and lookup failures come back as tool error results, never
// as Go errors thrown across the transport.
package tools

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/quillmoor/scout/internal/workspace"
)

// requireProject validates the mandatory 'project' argument and resolves
// it through the store's tiered matcher. The second return value is a
// ready-made error result when validation or lookup fails.
func requireProject(store *workspace.Store, req mcp.CallToolRequest) (*workspace.Project, *mcp.CallToolResult) {
	name := req.GetString("project", "")
	if name == "" {
		return nil, mcp.NewToolResultError("'project' is required")
	}

	project, err := store.Project(name)
	if err != nil {
		return nil, mcp.NewToolResultError(err.Error())
	}
	return project, nil
}

// languageOrUnknown renders a project language for listings.
func languageOrUnknown(lang string) string {
	if lang == "" {
		return "unknown"
	}
	return lang
}
