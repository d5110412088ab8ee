package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// writeFlatSkill drops a flat skill under <scope>/.scout/skills.
func writeFlatSkill(t *testing.T, scope, name, content string) {
	t.Helper()
	writeFile(t, filepath.Join(scope, ".scout", "skills", name+".md"), content)
}

// writeStructuredSkill drops a SKILL.md under <scope>/<tree>/skills/<dir>.
func writeStructuredSkill(t *testing.T, scope, tree, dir, content string) string {
	t.Helper()
	skillDir := filepath.Join(scope, tree, "skills", dir)
	writeFile(t, filepath.Join(skillDir, MarkerFile), content)
	return skillDir
}

func TestDiscoverProject_Flat(t *testing.T) {
	root := t.TempDir()
	writeFlatSkill(t, root, "review", "---\ndescription: Code review checklist\ntags: [quality]\n---\nCheck the tests first.")

	r := &Resolver{}
	set := r.DiscoverProject(root)

	require.Contains(t, set, "review")
	sk := set["review"]
	assert.Equal(t, KindFlat, sk.Kind)
	assert.Equal(t, OriginProject, sk.Origin)
	assert.Equal(t, "Code review checklist", sk.Description)
	assert.Equal(t, []string{"quality"}, sk.Tags)
	assert.Contains(t, sk.Body, "Check the tests first.")
	assert.Empty(t, sk.Dir)
}

func TestDiscoverProject_FlatWithoutFrontmatter(t *testing.T) {
	root := t.TempDir()
	writeFlatSkill(t, root, "deploy", "Just run the deploy script.")

	r := &Resolver{}
	set := r.DiscoverProject(root)

	require.Contains(t, set, "deploy")
	assert.Contains(t, set["deploy"].Body, "deploy script")
	assert.Empty(t, set["deploy"].Description)
}

func TestDiscoverProject_StructuredNameFromFrontmatter(t *testing.T) {
	root := t.TempDir()
	writeStructuredSkill(t, root, ".claude", "some-dir",
		"---\nname: add-endpoint\ndescription: Add a REST endpoint\n---\nSteps here.")

	r := &Resolver{}
	set := r.DiscoverProject(root)

	require.Contains(t, set, "add-endpoint")
	sk := set["add-endpoint"]
	assert.Equal(t, KindStructured, sk.Kind)
	assert.NotEmpty(t, sk.Dir)
}

func TestDiscoverProject_StructuredNameFallsBackToDir(t *testing.T) {
	root := t.TempDir()
	writeStructuredSkill(t, root, ".claude", "debug-auth", "No frontmatter at all.")

	r := &Resolver{}
	set := r.DiscoverProject(root)

	require.Contains(t, set, "debug-auth")
	assert.Equal(t, KindStructured, set["debug-auth"].Kind)
}

func TestDiscoverProject_StructuredOverwritesFlat(t *testing.T) {
	root := t.TempDir()
	writeFlatSkill(t, root, "review", "flat body")
	writeStructuredSkill(t, root, ".claude", "review", "structured body")

	r := &Resolver{}
	set := r.DiscoverProject(root)

	require.Contains(t, set, "review")
	assert.Equal(t, KindStructured, set["review"].Kind)
	assert.Contains(t, set["review"].Body, "structured body")
}

func TestDiscoverProject_LaterStructuredRootWins(t *testing.T) {
	root := t.TempDir()
	writeStructuredSkill(t, root, ".claude", "review", "claude body")
	writeStructuredSkill(t, root, ".codex", "review", "codex body")

	r := &Resolver{}
	set := r.DiscoverProject(root)

	assert.Contains(t, set["review"].Body, "codex body")
}

func TestDiscoverGlobal_MissingHomeDegrades(t *testing.T) {
	r := &Resolver{Home: filepath.Join(t.TempDir(), "does-not-exist")}
	assert.Empty(t, r.DiscoverGlobal())
}

func TestDiscoverGlobal_Origin(t *testing.T) {
	home := t.TempDir()
	writeFlatSkill(t, home, "commit-style", "Use imperative mood.")

	r := &Resolver{Home: home}
	set := r.DiscoverGlobal()

	require.Contains(t, set, "commit-style")
	assert.Equal(t, OriginGlobal, set["commit-style"].Origin)
}

func TestMerge_ProjectWins(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	writeFlatSkill(t, home, "review", "global body")
	writeFlatSkill(t, project, "review", "project body")

	r := &Resolver{Home: home}
	merged := Merge(r.DiscoverGlobal(), r.DiscoverProject(project))

	require.Contains(t, merged, "review")
	assert.Equal(t, OriginProject, merged["review"].Origin)
	assert.Contains(t, merged["review"].Body, "project body")
}

func TestMerge_GlobalOnlyVisible(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	writeFlatSkill(t, home, "commit-style", "global body")
	writeFlatSkill(t, project, "review", "project body")

	r := &Resolver{Home: home}
	merged := Merge(r.DiscoverGlobal(), r.DiscoverProject(project))

	assert.Contains(t, merged, "commit-style")
	assert.Contains(t, merged, "review")
}

func TestMerge_ProjectStructuredBeatsGlobalFlat(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	writeFlatSkill(t, home, "review", "global flat")
	writeStructuredSkill(t, project, ".codex", "review", "project structured")

	r := &Resolver{Home: home}
	merged := Merge(r.DiscoverGlobal(), r.DiscoverProject(project))

	assert.Equal(t, KindStructured, merged["review"].Kind)
	assert.Equal(t, OriginProject, merged["review"].Origin)
}

func TestParseSkillFile_MalformedFrontmatterKeepsContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.md")
	content := "---\nname: [unclosed\n---\nbody text"
	writeFile(t, path, content)

	matter, body, ok := parseSkillFile(path)
	require.True(t, ok)
	assert.Empty(t, matter.Name)
	assert.Equal(t, content, body)
}

func TestCollectFlat_IgnoresNonMarkdown(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".scout", "skills", "notes.txt"), "not a skill")
	writeFlatSkill(t, root, "real", "a skill")

	r := &Resolver{}
	set := r.DiscoverProject(root)

	assert.Len(t, set, 1)
	assert.Contains(t, set, "real")
}
