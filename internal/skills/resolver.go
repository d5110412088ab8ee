package skills

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	fm "github.com/adrg/frontmatter"
	"github.com/adrg/xdg"

	"github.com/quillmoor/scout/internal/config"
	"github.com/quillmoor/scout/internal/logging"
)

// structuredDirs are the two subtree conventions searched for structured
// skills, under both the project root and the user's home directory.
var structuredDirs = []string{
	filepath.Join(".claude", "skills"),
	filepath.Join(".codex", "skills"),
}

// Resolver discovers skills for the global and project scopes.
//
// Within one scope flat skills are collected first and structured skills
// after, so a structured skill overwrites a flat one of the same name.
// Across scopes Merge applies: the project scope always wins.
type Resolver struct {
	// Home is the user directory holding the global skill trees. Set in
	// tests; defaults to the XDG home resolution.
	Home string
}

// NewResolver returns a Resolver rooted at the current user's home.
func NewResolver() *Resolver {
	return &Resolver{Home: xdg.Home}
}

// DiscoverGlobal builds the user-wide skill set: flat skills from
// <home>/.scout/skills plus structured skills from <home>/.claude/skills
// and <home>/.codex/skills. A missing home or missing trees degrade to an
// empty set, never an error.
func (r *Resolver) DiscoverGlobal() map[string]Skill {
	set := map[string]Skill{}
	if r.Home == "" {
		return set
	}
	r.discoverScope(set, r.Home, filepath.Join(r.Home, config.MetaDirName, "skills"), OriginGlobal)
	return set
}

// DiscoverProject builds the project-local skill set for one project root.
func (r *Resolver) DiscoverProject(projectRoot string) map[string]Skill {
	set := map[string]Skill{}
	r.discoverScope(set, projectRoot, filepath.Join(projectRoot, config.MetaDirName, "skills"), OriginProject)
	return set
}

// Merge overlays the project set onto the global set. Entries whose name
// appears in both scopes resolve to the project entry, whatever the source
// kind on either side.
func Merge(global, project map[string]Skill) map[string]Skill {
	merged := make(map[string]Skill, len(global)+len(project))
	for name, s := range global {
		merged[name] = s
	}
	for name, s := range project {
		merged[name] = s
	}
	return merged
}

// discoverScope fills set with one scope's skills: the flat directory
// first, then each structured root in order, later sources overwriting
// earlier ones on a name collision.
func (r *Resolver) discoverScope(set map[string]Skill, scopeRoot, flatDir string, origin Origin) {
	r.collectFlat(set, flatDir, origin)
	for _, sub := range structuredDirs {
		r.collectStructured(set, filepath.Join(scopeRoot, sub), origin)
	}
}

// collectFlat reads every *.md file directly under dir as a flat skill
// named after the file stem. Unreadable files are logged and skipped;
// a missing directory is silent.
func (r *Resolver) collectFlat(set map[string]Skill, dir string, origin Origin) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".md") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		matter, body, ok := parseSkillFile(path)
		if !ok {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		set[name] = Skill{
			Name:        name,
			Kind:        KindFlat,
			Origin:      origin,
			Body:        body,
			Description: matter.Description,
			Tags:        matter.Tags,
		}
	}
}

// collectStructured walks root recursively looking for SKILL.md marker
// files. The skill name comes from the frontmatter name field, falling
// back to the containing directory's name.
func (r *Resolver) collectStructured(set map[string]Skill, root string, origin Origin) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || !strings.EqualFold(d.Name(), MarkerFile) {
			return nil
		}

		matter, body, ok := parseSkillFile(path)
		if !ok {
			return nil
		}

		dir := filepath.Dir(path)
		name := matter.Name
		if name == "" {
			name = filepath.Base(dir)
		}
		if name == "" {
			return nil
		}

		set[name] = Skill{
			Name:        name,
			Kind:        KindStructured,
			Origin:      origin,
			Body:        body,
			Description: matter.Description,
			Tags:        matter.Tags,
			Dir:         dir,
		}
		return nil
	})
}

// parseSkillFile reads one skill file and splits the optional YAML
// frontmatter from the body. An unreadable file is skipped with a log
// line; a file whose frontmatter fails to parse keeps its full content
// as the body.
func parseSkillFile(path string) (frontmatter, string, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		logging.Warn("unreadable skill file, skipping", "path", path, "err", err)
		return frontmatter{}, "", false
	}

	var matter frontmatter
	body, err := fm.Parse(bytes.NewReader(content), &matter)
	if err != nil {
		logging.Warn("malformed skill frontmatter, treating file as plain body", "path", path, "err", err)
		return frontmatter{}, string(content), true
	}
	return matter, string(body), true
}
