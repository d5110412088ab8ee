package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/quillmoor/scout/internal/logging"
)

// LoadProject reads and parses <projectRoot>/.scout/project.toml.
//
// A missing record is an error: the directory is not a project. A record
// that exists but fails to parse is degraded to the zero value so the
// project still appears in discovery, keyed by its directory name.
func LoadProject(projectRoot string) (ProjectConfig, error) {
	path := filepath.Join(projectRoot, MetaDirName, ProjectFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return ProjectConfig{}, fmt.Errorf("reading project record: %w", err)
	}

	var cfg ProjectConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		logging.Warn("malformed project record, using empty defaults", "path", path, "err", err)
		return ProjectConfig{}, nil
	}
	return cfg, nil
}

// LoadConventions reads <projectRoot>/.scout/conventions.toml. Missing and
// malformed files both yield the empty default; malformed files are logged.
func LoadConventions(projectRoot string) Conventions {
	return decodeOptional[Conventions](filepath.Join(projectRoot, MetaDirName, ConventionsFile))
}

// LoadDocs reads <projectRoot>/.scout/docs.toml with the same tolerance as
// LoadConventions.
func LoadDocs(projectRoot string) Docs {
	return decodeOptional[Docs](filepath.Join(projectRoot, MetaDirName, DocsFile))
}

// LoadWorkspace reads <root>/.scout/workspace.toml. Returns nil when the
// file is absent or unparsable; only parse failures are logged.
func LoadWorkspace(root string) *WorkspaceConfig {
	path := filepath.Join(root, MetaDirName, WorkspaceFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var ws WorkspaceConfig
	if err := toml.Unmarshal(data, &ws); err != nil {
		logging.Warn("malformed workspace record, ignoring", "path", path, "err", err)
		return nil
	}
	return &ws
}

// LoadGlobal reads the user-wide config at <home>/.scout/config.toml,
// creating a default file when none exists. Failures are logged and
// reported as nil; they never prevent the server from starting.
func LoadGlobal(home string) *GlobalConfig {
	if home == "" {
		return nil
	}

	dir := filepath.Join(home, MetaDirName)
	path := filepath.Join(dir, GlobalFile)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logging.Warn("cannot create global config directory", "path", dir, "err", err)
			return nil
		}
		defaults := "# User-wide configuration for the scout MCP server.\n\n[scout]\n"
		if err := os.WriteFile(path, []byte(defaults), 0o644); err != nil {
			logging.Warn("cannot write default global config", "path", path, "err", err)
			return nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logging.Warn("cannot read global config", "path", path, "err", err)
		return nil
	}

	var cfg GlobalConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		logging.Warn("malformed global config, ignoring", "path", path, "err", err)
		return nil
	}
	return &cfg
}

// decodeOptional parses a TOML file when it exists; a missing file is
// silent, a malformed one is logged. Either way the zero value comes back
// on failure, never a partially decoded record.
func decodeOptional[T any](path string) T {
	var zero T

	data, err := os.ReadFile(path)
	if err != nil {
		return zero
	}

	var parsed T
	if err := toml.Unmarshal(data, &parsed); err != nil {
		logging.Warn("malformed metadata file, using empty defaults", "path", path, "err", err)
		return zero
	}
	return parsed
}
