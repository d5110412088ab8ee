package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillmoor/scout/internal/skills"
)

// newTestDiscoverer returns a discoverer whose skill resolver is rooted
// at an empty temp home, so the developer's real global skills never
// leak into tests.
func newTestDiscoverer(t *testing.T, root string) *Discoverer {
	t.Helper()
	d := NewDiscoverer(root)
	d.Skills = &skills.Resolver{Home: t.TempDir()}
	return d
}

// writeProject drops a minimal project record under <root>/<dir>.
func writeProject(t *testing.T, root, dir, name string) string {
	t.Helper()
	projectRoot := filepath.Join(root, dir)
	metaDir := filepath.Join(projectRoot, ".scout")
	require.NoError(t, os.MkdirAll(metaDir, 0o755))

	record := fmt.Sprintf("[project]\nname = %q\ndescription = \"test project\"\nlanguage = \"go\"\n", name)
	require.NoError(t, os.WriteFile(filepath.Join(metaDir, "project.toml"), []byte(record), 0o644))
	return projectRoot
}

func TestDiscover_FindsProjects(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, "my-app", "my-app")
	writeProject(t, root, filepath.Join("libs", "my-lib"), "my-lib")

	snap, err := newTestDiscoverer(t, root).Discover()
	require.NoError(t, err)

	assert.Len(t, snap.Projects, 2)
	assert.Contains(t, snap.Projects, "my-app")
	assert.Contains(t, snap.Projects, "my-lib")
	assert.Equal(t, filepath.Join(root, "my-app"), snap.Projects["my-app"].Root)
}

func TestDiscover_NameFallsBackToDirectory(t *testing.T) {
	root := t.TempDir()
	metaDir := filepath.Join(root, "unnamed", ".scout")
	require.NoError(t, os.MkdirAll(metaDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(metaDir, "project.toml"),
		[]byte("[project]\ndescription = \"no name field\"\n"), 0o644))

	snap, err := newTestDiscoverer(t, root).Discover()
	require.NoError(t, err)
	assert.Contains(t, snap.Projects, "unnamed")
}

func TestDiscover_MalformedRecordStillDiscovered(t *testing.T) {
	root := t.TempDir()
	metaDir := filepath.Join(root, "broken", ".scout")
	require.NoError(t, os.MkdirAll(metaDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(metaDir, "project.toml"),
		[]byte("[project\nnot toml"), 0o644))

	snap, err := newTestDiscoverer(t, root).Discover()
	require.NoError(t, err)

	require.Contains(t, snap.Projects, "broken")
	assert.Empty(t, snap.Projects["broken"].Config.Project.Description)
}

func TestDiscover_SkipsExcludedDirs(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, "real", "real")
	writeProject(t, root, filepath.Join("node_modules", "dep"), "dep")
	writeProject(t, root, filepath.Join("real", "vendor", "pkg"), "pkg")

	snap, err := newTestDiscoverer(t, root).Discover()
	require.NoError(t, err)

	assert.Len(t, snap.Projects, 1)
	assert.Contains(t, snap.Projects, "real")
}

func TestDiscover_DirWithoutRecordIgnored(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "plain", "src"), 0o755))
	writeProject(t, root, "real", "real")

	snap, err := newTestDiscoverer(t, root).Discover()
	require.NoError(t, err)
	assert.Len(t, snap.Projects, 1)
}

func TestDiscover_DuplicateNamesKeepOne(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, "first", "shared-name")
	writeProject(t, root, "second", "shared-name")

	snap, err := newTestDiscoverer(t, root).Discover()
	require.NoError(t, err)

	assert.Len(t, snap.Projects, 1)
	assert.Contains(t, snap.Projects, "shared-name")
}

func TestDiscover_LoadsWorkspaceRecord(t *testing.T) {
	root := t.TempDir()
	metaDir := filepath.Join(root, ".scout")
	require.NoError(t, os.MkdirAll(metaDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(metaDir, "workspace.toml"),
		[]byte("[workspace]\nname = \"acme\"\n"), 0o644))
	writeProject(t, root, "my-app", "my-app")

	snap, err := newTestDiscoverer(t, root).Discover()
	require.NoError(t, err)

	require.NotNil(t, snap.Workspace)
	assert.Equal(t, "acme", snap.Workspace.Workspace.Name)
}

func TestDiscover_WorkspaceRootWithoutRecordTolerated(t *testing.T) {
	root := t.TempDir()
	// Root carries only a workspace.toml, no project record.
	metaDir := filepath.Join(root, ".scout")
	require.NoError(t, os.MkdirAll(metaDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(metaDir, "workspace.toml"),
		[]byte("[workspace]\nname = \"acme\"\n"), 0o644))

	snap, err := newTestDiscoverer(t, root).Discover()
	require.NoError(t, err)
	assert.Empty(t, snap.Projects)
}

func TestDiscover_UnreadableRootFails(t *testing.T) {
	d := newTestDiscoverer(t, filepath.Join(t.TempDir(), "gone"))
	_, err := d.Discover()
	require.Error(t, err)
}

func TestDiscover_MergesGlobalSkills(t *testing.T) {
	root := t.TempDir()
	projectRoot := writeProject(t, root, "my-app", "my-app")

	home := t.TempDir()
	globalSkills := filepath.Join(home, ".scout", "skills")
	require.NoError(t, os.MkdirAll(globalSkills, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(globalSkills, "review.md"), []byte("global body"), 0o644))

	projectSkills := filepath.Join(projectRoot, ".scout", "skills")
	require.NoError(t, os.MkdirAll(projectSkills, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(projectSkills, "review.md"), []byte("project body"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(projectSkills, "deploy.md"), []byte("deploy body"), 0o644))

	d := NewDiscoverer(root)
	d.Skills = &skills.Resolver{Home: home}
	snap, err := d.Discover()
	require.NoError(t, err)

	p := snap.Projects["my-app"]
	require.NotNil(t, p)
	assert.Len(t, p.Skills, 2)
	assert.Equal(t, skills.OriginProject, p.Skills["review"].Origin)
	assert.Contains(t, p.Skills["review"].Body, "project body")
}
