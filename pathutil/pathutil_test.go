package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonical_ResolvesRelativeSegments(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "a.h")
	require.NoError(t, os.WriteFile(file, []byte("// a\n"), 0o644))

	dotted := filepath.Join(tmpDir, "sub", "..", "a.h")
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "sub"), 0o755))

	direct, err := Canonical(file)
	require.NoError(t, err)
	viaDots, err := Canonical(dotted)
	require.NoError(t, err)

	assert.Equal(t, direct, viaDots)
}

func TestCanonical_MissingPath(t *testing.T) {
	_, err := Canonical(filepath.Join(t.TempDir(), "missing.h"))
	assert.Error(t, err)
}

func TestIsFile(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "a.h")
	require.NoError(t, os.WriteFile(file, []byte(""), 0o644))

	assert.True(t, IsFile(file))
	assert.False(t, IsFile(tmpDir), "directories are not files")
	assert.False(t, IsFile(filepath.Join(tmpDir, "missing.h")))
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "/a/b/c.h", Display(filepath.Join("/a", "b", "c.h")))
}
