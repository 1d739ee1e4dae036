package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mvnmin/mvnmin/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindUp(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "a", "src", "main", "java")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "pom.xml"), []byte("<project/>"), 0o644))

	dir, ok := util.FindUp(nested, "pom.xml", root)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "a"), dir)

	_, ok = util.FindUp(filepath.Join(root), "pom.xml", root)
	assert.False(t, ok)
}

func TestIsExecutableFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	script := filepath.Join(dir, "mvnw")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"), 0o755))

	plain := filepath.Join(dir, "pom.xml")
	require.NoError(t, os.WriteFile(plain, []byte("<project/>"), 0o644))

	assert.True(t, util.IsExecutableFile(script))
	assert.False(t, util.IsExecutableFile(plain))
	assert.False(t, util.IsExecutableFile(dir))
	assert.False(t, util.IsExecutableFile(filepath.Join(dir, "missing")))
	assert.True(t, util.FileExists(plain))
}
