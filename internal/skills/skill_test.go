package skills

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompanions_SortedListing(t *testing.T) {
	root := t.TempDir()
	dir := writeStructuredSkill(t, root, ".claude", "migrate", "body")
	writeFile(t, filepath.Join(dir, "scripts", "run.sh"), "#!/bin/sh")
	writeFile(t, filepath.Join(dir, "scripts", "check.sh"), "#!/bin/sh")
	writeFile(t, filepath.Join(dir, "references", "schema.sql"), "create table t ();")

	sk := Skill{Name: "migrate", Kind: KindStructured, Dir: dir}
	assert.Equal(t, []string{
		"references/schema.sql",
		"scripts/check.sh",
		"scripts/run.sh",
	}, sk.Companions())
}

func TestCompanions_RecursiveWithinCategory(t *testing.T) {
	root := t.TempDir()
	dir := writeStructuredSkill(t, root, ".claude", "migrate", "body")
	writeFile(t, filepath.Join(dir, "examples", "go", "main.go"), "package main")

	sk := Skill{Name: "migrate", Kind: KindStructured, Dir: dir}
	assert.Equal(t, []string{"examples/go/main.go"}, sk.Companions())
}

func TestCompanions_IgnoresUnknownDirs(t *testing.T) {
	root := t.TempDir()
	dir := writeStructuredSkill(t, root, ".claude", "migrate", "body")
	writeFile(t, filepath.Join(dir, "secrets", "token.txt"), "nope")

	sk := Skill{Name: "migrate", Kind: KindStructured, Dir: dir}
	assert.Empty(t, sk.Companions())
}

func TestCompanions_FlatIsNil(t *testing.T) {
	sk := Skill{Name: "review", Kind: KindFlat}
	assert.Nil(t, sk.Companions())
}

func TestCompanions_NoneExist(t *testing.T) {
	root := t.TempDir()
	dir := writeStructuredSkill(t, root, ".claude", "bare", "body")

	sk := Skill{Name: "bare", Kind: KindStructured, Dir: dir}
	assert.Empty(t, sk.Companions())
}
