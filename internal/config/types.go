// Package config defines the declarative on-disk records scout consumes
// and the loaders that parse them.
//
// Each project carries a .scout directory with a project.toml record plus
// optional conventions.toml and docs.toml files. The workspace root may
// carry a .scout/workspace.toml shared across all projects.
package config

// MetaDirName is the per-project metadata directory. A directory containing
// MetaDirName/ProjectFile is treated as a project root during discovery.
const (
	MetaDirName     = ".scout"
	ProjectFile     = "project.toml"
	WorkspaceFile   = "workspace.toml"
	ConventionsFile = "conventions.toml"
	DocsFile        = "docs.toml"
	GlobalFile      = "config.toml"
)

// ProjectConfig is a single project's declarative record.
type ProjectConfig struct {
	Project         ProjectInfo       `toml:"project"`
	Commands        map[string]string `toml:"commands"`
	EntryPoints     map[string]string `toml:"entry_points"`
	Dependencies    Dependencies      `toml:"dependencies"`
	RelatedProjects RelatedProjects   `toml:"related_projects"`
	API             *APIInfo          `toml:"api"`
	Concepts        map[string]Concept `toml:"concepts"`
}

// ProjectInfo carries project identity fields.
type ProjectInfo struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Language    string `toml:"language"`
	Version     string `toml:"version"`
	Repository  string `toml:"repository"`
}

// Dependencies splits dependencies into workspace-internal project names
// and external package names.
type Dependencies struct {
	Internal []string `toml:"internal"`
	External []string `toml:"external"`
}

// RelatedProjects describes the project's position in the workspace
// dependency graph.
type RelatedProjects struct {
	Upstream   []string `toml:"upstream"`
	Downstream []string `toml:"downstream"`
}

// APIInfo is the optional API surface description.
type APIInfo struct {
	OpenAPI   string   `toml:"openapi"`
	BaseURL   string   `toml:"base_url"`
	Endpoints []string `toml:"endpoints"`
}

// Concept maps a named architectural area to files and a one-line summary.
// File paths are relative to the project root.
type Concept struct {
	Files   []string `toml:"files"`
	Summary string   `toml:"summary"`
}

// Conventions holds project- or workspace-scoped conventions and gotchas.
type Conventions struct {
	Conventions map[string]string `toml:"conventions"`
	Gotchas     map[string]string `toml:"gotchas"`
}

// Docs is a project's documentation index.
type Docs struct {
	Docs map[string]DocEntry `toml:"docs"`
}

// DocEntry points at one document. Path is relative to the project root.
type DocEntry struct {
	Path    string `toml:"path"`
	Summary string `toml:"summary"`
}

// WorkspaceConfig is the root-level workspace record.
type WorkspaceConfig struct {
	Workspace   WorkspaceInfo     `toml:"workspace"`
	Conventions map[string]string `toml:"conventions"`
	Gotchas     map[string]string `toml:"gotchas"`
}

// WorkspaceInfo carries workspace identity fields.
type WorkspaceInfo struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

// GlobalConfig is the user-wide record at ~/.scout/config.toml. It is
// created with defaults on first run and currently only reserves the
// [scout] table for future settings.
type GlobalConfig struct {
	Scout GlobalSettings `toml:"scout"`
}

// GlobalSettings holds user-wide server settings.
type GlobalSettings struct {
	DefaultRoot string `toml:"default_root"`
}
