// Package skills discovers and merges skill resources.
//
// A skill is a named markdown resource an agent can retrieve on demand.
// Two layouts exist: flat skills are single .md files under a skills
// directory, and structured skills are directories marked by a SKILL.md
// file, optionally accompanied by companion resource subdirectories.
// Skills come from two scopes, project-local and user-wide ("global");
// project-local always wins when names collide.
package skills

import (
	"io/fs"
	"path/filepath"
	"sort"
)

// Kind distinguishes the two on-disk skill layouts.
type Kind string

const (
	KindFlat       Kind = "flat"
	KindStructured Kind = "structured"
)

// Origin records which scope a skill was discovered in. It decides merge
// precedence and shows up in listings as provenance.
type Origin string

const (
	OriginProject Origin = "project"
	OriginGlobal  Origin = "global"
)

// MarkerFile identifies a structured skill directory.
const MarkerFile = "SKILL.md"

// companionDirs is the fixed allow-list of companion resource
// subdirectories a structured skill may carry.
var companionDirs = []string{"scripts", "references", "docs", "assets", "examples", "templates"}

// Skill is one discovered skill. Skills are value records rebuilt in full
// on every discovery pass; nothing mutates them in place.
type Skill struct {
	Name        string
	Kind        Kind
	Origin      Origin
	Body        string
	Description string
	Tags        []string

	// Dir is the directory holding the skill's companion subdirectories.
	// Empty for flat skills, which never have companions.
	Dir string
}

// frontmatter is the optional YAML header of a skill file.
type frontmatter struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
}

// Companions lists the skill's companion files as slash-separated paths
// relative to the skill directory, e.g. "scripts/run.sh". Only the
// allow-listed category directories are considered; within a category the
// walk is recursive. The result is lexicographically sorted so output is
// deterministic. Flat skills return nil.
func (s Skill) Companions() []string {
	if s.Kind != KindStructured || s.Dir == "" {
		return nil
	}

	var files []string
	for _, category := range companionDirs {
		dir := filepath.Join(s.Dir, category)
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(s.Dir, path)
			if err != nil {
				return nil
			}
			files = append(files, filepath.ToSlash(rel))
			return nil
		})
	}

	sort.Strings(files)
	return files
}
