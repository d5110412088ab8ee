// Package workspace discovers projects under a root directory and caches
// the result as an immutable snapshot behind a reloadable store.
package workspace

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/quillmoor/scout/internal/config"
	"github.com/quillmoor/scout/internal/logging"
	"github.com/quillmoor/scout/internal/skills"
)

// DefaultExclude prunes conventional build and dependency directories from
// the discovery walk. It bounds walk cost, not correctness.
var DefaultExclude = []string{
	"node_modules", ".git", "vendor", "target", "build", "dist",
	".next", ".cache", "__pycache__", ".idea", ".vscode",
}

// Project bundles everything cached for one discovered project.
type Project struct {
	Name        string
	Root        string
	Config      config.ProjectConfig
	Skills      map[string]skills.Skill
	Conventions config.Conventions
	Docs        config.Docs
}

// Snapshot is one complete discovery result. Snapshots are immutable after
// construction; a reload builds a fresh one and swaps it in whole.
type Snapshot struct {
	Root      string
	Workspace *config.WorkspaceConfig
	Projects  map[string]*Project
}

// Discoverer walks a root directory tree for project records.
type Discoverer struct {
	Root    string
	Exclude []string
	Skills  *skills.Resolver
}

// NewDiscoverer returns a Discoverer with the default exclusion set and a
// home-rooted skill resolver.
func NewDiscoverer(root string) *Discoverer {
	return &Discoverer{
		Root:    root,
		Exclude: DefaultExclude,
		Skills:  skills.NewResolver(),
	}
}

// Discover walks the tree once and returns the complete snapshot. The
// global skill set is resolved once per pass and merged into every
// project's scope. Individual project failures exclude only that project;
// an unreadable root fails the whole pass so a reload can be rejected.
func (d *Discoverer) Discover() (*Snapshot, error) {
	if _, err := os.Stat(d.Root); err != nil {
		return nil, fmt.Errorf("workspace root: %w", err)
	}

	globalSkills := d.Skills.DiscoverGlobal()
	projects := map[string]*Project{}

	err := filepath.WalkDir(d.Root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			logging.Debug("skipping unreadable path", "path", path, "err", err)
			return nil
		}
		if !entry.IsDir() {
			return nil
		}
		if slices.Contains(d.Exclude, entry.Name()) {
			return filepath.SkipDir
		}
		if entry.Name() != config.MetaDirName {
			return nil
		}

		// Found a .scout directory; its parent is a project root when a
		// project record exists inside. Nothing below the metadata
		// directory needs walking.
		projectRoot := filepath.Dir(path)
		if p := d.loadProject(projectRoot, globalSkills); p != nil {
			if prev, dup := projects[p.Name]; dup {
				logging.Warn("duplicate project name, later discovery wins",
					"name", p.Name, "kept", p.Root, "discarded", prev.Root)
			}
			projects[p.Name] = p
		}
		return filepath.SkipDir
	})
	if err != nil {
		return nil, fmt.Errorf("walking workspace: %w", err)
	}

	return &Snapshot{
		Root:      d.Root,
		Workspace: config.LoadWorkspace(d.Root),
		Projects:  projects,
	}, nil
}

// loadProject assembles one ProjectBundle, or nil when the directory holds
// no project record.
func (d *Discoverer) loadProject(projectRoot string, globalSkills map[string]skills.Skill) *Project {
	cfg, err := config.LoadProject(projectRoot)
	if err != nil {
		// The workspace root legitimately carries only workspace.toml.
		if projectRoot == d.Root {
			logging.Debug("no project record at workspace root", "root", projectRoot)
		} else {
			logging.Warn("project excluded, missing project record", "root", projectRoot, "err", err)
		}
		return nil
	}

	name := cfg.Project.Name
	if name == "" {
		name = filepath.Base(projectRoot)
	}

	return &Project{
		Name:        name,
		Root:        projectRoot,
		Config:      cfg,
		Skills:      skills.Merge(globalSkills, d.Skills.DiscoverProject(projectRoot)),
		Conventions: config.LoadConventions(projectRoot),
		Docs:        config.LoadDocs(projectRoot),
	}
}
