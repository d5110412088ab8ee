package tools

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/quillmoor/scout/internal/workspace"
)

// RelatedFilesTool handles the get_related_files MCP tool.
// It searches concept names and summaries and aggregates the files of
// every matching concept.
type RelatedFilesTool struct {
	store *workspace.Store
}

// NewRelatedFilesTool creates a RelatedFilesTool with its dependencies.
func NewRelatedFilesTool(store *workspace.Store) *RelatedFilesTool {
	return &RelatedFilesTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *RelatedFilesTool) Definition() mcp.Tool {
	return mcp.NewTool("get_related_files",
		mcp.WithDescription(
			"Finds files related to a concept or feature by searching through all defined concepts.",
		),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("The project name"),
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query to match against concept names and summaries"),
		),
	)
}

// Handle processes the get_related_files tool call.
func (t *RelatedFilesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, errRes := requireProject(t.store, req)
	if errRes != nil {
		return errRes, nil
	}

	query := req.GetString("query", "")
	if query == "" {
		return mcp.NewToolResultError("'query' is required"), nil
	}

	queryLower := strings.ToLower(query)
	var matched []string
	for name, concept := range p.Config.Concepts {
		if strings.Contains(strings.ToLower(name), queryLower) ||
			strings.Contains(strings.ToLower(concept.Summary), queryLower) {
			matched = append(matched, name)
		}
	}
	if len(matched) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("No concepts matching '%s' found", query)), nil
	}
	sort.Strings(matched)

	var b strings.Builder
	fmt.Fprintf(&b, "Files related to '%s':\n\n", query)
	for _, name := range matched {
		concept := p.Config.Concepts[name]
		fmt.Fprintf(&b, "## %s\n%s\n\nFiles:\n", name, concept.Summary)
		for _, file := range concept.Files {
			fmt.Fprintf(&b, "- %s\n", filepath.Join(p.Root, file))
		}
		b.WriteString("\n")
	}
	return mcp.NewToolResultText(b.String()), nil
}
