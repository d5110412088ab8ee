// Package format renders already-resolved metadata as markdown strings for
// tool responses. Map keys are emitted in sorted order so responses are
// deterministic.
package format

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/quillmoor/scout/internal/config"
)

// Commands renders a command map as a bullet list.
func Commands(commands map[string]string) string {
	if len(commands) == 0 {
		return "No commands defined."
	}
	var sb strings.Builder
	for _, name := range sortedKeys(commands) {
		fmt.Fprintf(&sb, "- **%s**: `%s`\n", name, commands[name])
	}
	return sb.String()
}

// EntryPoints renders an entry-point map as a bullet list.
func EntryPoints(entryPoints map[string]string) string {
	if len(entryPoints) == 0 {
		return "No entry points defined."
	}
	var sb strings.Builder
	for _, name := range sortedKeys(entryPoints) {
		fmt.Fprintf(&sb, "- **%s**: %s\n", name, entryPoints[name])
	}
	return sb.String()
}

// Dependencies renders internal and external dependency lists.
func Dependencies(deps config.Dependencies) string {
	var sb strings.Builder
	if len(deps.Internal) > 0 {
		sb.WriteString("**Internal dependencies:**\n")
		for _, dep := range deps.Internal {
			fmt.Fprintf(&sb, "- %s\n", dep)
		}
	}
	if len(deps.External) > 0 {
		sb.WriteString("**External dependencies:**\n")
		for _, dep := range deps.External {
			fmt.Fprintf(&sb, "- %s\n", dep)
		}
	}
	if sb.Len() == 0 {
		return "No dependencies defined."
	}
	return sb.String()
}

// RelatedProjects renders the upstream/downstream relationship lists.
func RelatedProjects(related config.RelatedProjects) string {
	var sb strings.Builder
	if len(related.Upstream) > 0 {
		sb.WriteString("**Upstream (this project depends on):**\n")
		for _, name := range related.Upstream {
			fmt.Fprintf(&sb, "- %s\n", name)
		}
	}
	if len(related.Downstream) > 0 {
		sb.WriteString("**Downstream (depends on this project):**\n")
		for _, name := range related.Downstream {
			fmt.Fprintf(&sb, "- %s\n", name)
		}
	}
	if sb.Len() == 0 {
		return "No related projects defined."
	}
	return sb.String()
}

// API renders the optional API surface description.
func API(api *config.APIInfo) string {
	if api == nil {
		return "No API information defined."
	}
	var sb strings.Builder
	if api.OpenAPI != "" {
		fmt.Fprintf(&sb, "**OpenAPI spec:** %s\n", api.OpenAPI)
	}
	if api.BaseURL != "" {
		fmt.Fprintf(&sb, "**Base URL:** %s\n", api.BaseURL)
	}
	if len(api.Endpoints) > 0 {
		sb.WriteString("**Endpoints:**\n")
		for _, endpoint := range api.Endpoints {
			fmt.Fprintf(&sb, "- %s\n", endpoint)
		}
	}
	if sb.Len() == 0 {
		return "API section defined but empty."
	}
	return sb.String()
}

// Concept renders one concept with its file list resolved against the
// project root, so callers always receive absolute paths.
func Concept(projectRoot, name string, concept config.Concept) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n%s\n\n**Files:**\n", name, concept.Summary)
	for _, file := range concept.Files {
		fmt.Fprintf(&sb, "- %s\n", filepath.Join(projectRoot, file))
	}
	return sb.String()
}

// NamedSections renders a name → text map as H2 sections under a title.
func NamedSections(title string, entries map[string]string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", title)
	for _, name := range sortedKeys(entries) {
		fmt.Fprintf(&sb, "## %s\n%s\n\n", name, entries[name])
	}
	return sb.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
