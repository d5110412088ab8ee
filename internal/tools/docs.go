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

// DocsTool handles the get_docs MCP tool.
type DocsTool struct {
	store *workspace.Store
}

// NewDocsTool creates a DocsTool with its dependencies.
func NewDocsTool(store *workspace.Store) *DocsTool {
	return &DocsTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *DocsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_docs",
		mcp.WithDescription(
			"Returns a documentation index for a project, listing available docs with summaries. "+
				"Optionally retrieves the path to a specific doc.",
		),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("The project name"),
		),
		mcp.WithString("topic",
			mcp.Description("Optional: specific doc topic to get the path for"),
		),
	)
}

// Handle processes the get_docs tool call. Doc topics are exact keys
// into the index.
func (t *DocsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, errRes := requireProject(t.store, req)
	if errRes != nil {
		return errRes, nil
	}

	if len(p.Docs.Docs) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No documentation index found for '%s'. Create .scout/docs.toml to index project documentation.",
			p.Name,
		)), nil
	}

	topics := make([]string, 0, len(p.Docs.Docs))
	for name := range p.Docs.Docs {
		topics = append(topics, name)
	}
	sort.Strings(topics)

	topic := req.GetString("topic", "")
	if topic == "" {
		var b strings.Builder
		fmt.Fprintf(&b, "# Documentation for '%s'\n\n", p.Name)
		for _, name := range topics {
			fmt.Fprintf(&b, "- **%s**: %s\n", name, p.Docs.Docs[name].Summary)
		}
		b.WriteString("\nUse get_docs(project, topic) to get the path to a specific doc.")
		return mcp.NewToolResultText(b.String()), nil
	}

	doc, ok := p.Docs.Docs[topic]
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf(
			"Doc '%s' not found. Available: %s", topic, strings.Join(topics, ", "),
		)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf(
		"## %s\n**Summary:** %s\n**Path:** %s",
		topic, doc.Summary, filepath.Join(p.Root, doc.Path),
	)), nil
}
