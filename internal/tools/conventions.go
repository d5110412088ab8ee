package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/quillmoor/scout/internal/format"
	"github.com/quillmoor/scout/internal/workspace"
)

// ConventionsTool handles the get_conventions MCP tool.
type ConventionsTool struct {
	store *workspace.Store
}

// NewConventionsTool creates a ConventionsTool with its dependencies.
func NewConventionsTool(store *workspace.Store) *ConventionsTool {
	return &ConventionsTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *ConventionsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_conventions",
		mcp.WithDescription(
			"Returns project-specific coding conventions and gotchas. Conventions are "+
				"architectural patterns and standards; gotchas are common mistakes to avoid.",
		),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("The project name"),
		),
		mcp.WithString("category",
			mcp.Description("Optional: 'conventions' or 'gotchas' to filter results"),
			mcp.Enum("conventions", "gotchas"),
		),
	)
}

// Handle processes the get_conventions tool call.
func (t *ConventionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, errRes := requireProject(t.store, req)
	if errRes != nil {
		return errRes, nil
	}

	conventions := p.Conventions.Conventions
	gotchas := p.Conventions.Gotchas

	if len(conventions) == 0 && len(gotchas) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No conventions found for '%s'. Create .scout/conventions.toml "+
				"to add project-specific conventions and gotchas.",
			p.Name,
		)), nil
	}

	switch category := req.GetString("category", ""); category {
	case "conventions":
		if len(conventions) == 0 {
			return mcp.NewToolResultText("No conventions defined."), nil
		}
		return mcp.NewToolResultText(
			format.NamedSections(fmt.Sprintf("Conventions for '%s'", p.Name), conventions),
		), nil
	case "gotchas":
		if len(gotchas) == 0 {
			return mcp.NewToolResultText("No gotchas defined."), nil
		}
		return mcp.NewToolResultText(
			format.NamedSections(fmt.Sprintf("Gotchas for '%s'", p.Name), gotchas),
		), nil
	case "":
		var out string
		if len(conventions) > 0 {
			out += format.NamedSections(fmt.Sprintf("Conventions for '%s'", p.Name), conventions)
		}
		if len(gotchas) > 0 {
			out += format.NamedSections(fmt.Sprintf("Gotchas for '%s'", p.Name), gotchas)
		}
		return mcp.NewToolResultText(out), nil
	default:
		return mcp.NewToolResultError(
			fmt.Sprintf("Unknown category '%s'. Use 'conventions' or 'gotchas'.", category),
		), nil
	}
}
