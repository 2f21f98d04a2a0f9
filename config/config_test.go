package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "incpath.yaml")
	content := `parse:
  - src
include:
  - include
search:
  - third_party
  - /opt/vendor
respect_gitignore: true
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, []string{"src"}, cfg.Parse)
	assert.Equal(t, []string{"include"}, cfg.Include)
	assert.Equal(t, []string{"third_party", "/opt/vendor"}, cfg.Search)
	assert.True(t, cfg.RespectGitignore)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "incpath.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("parse: [unclosed\n"), 0o644))

	_, err := Load(cfgPath)
	assert.Error(t, err)
}

func TestSettings_ResolvesRelativeToBaseDir(t *testing.T) {
	cfg := &Config{
		Parse:   []string{"src"},
		Include: []string{"/abs/include"},
		Search:  []string{"vendor"},
	}

	settings := cfg.Settings("/project")

	assert.Equal(t, []string{filepath.Join("/project", "src")}, settings.ParseDirs)
	assert.Equal(t, []string{"/abs/include"}, settings.IncludeDirs)
	assert.Equal(t, []string{filepath.Join("/project", "vendor")}, settings.SearchDirs)
}
