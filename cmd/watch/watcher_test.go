package watch

import (
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"

	"github.com/incpath/incpath/resolver"
)

func TestIsRelevantChange(t *testing.T) {
	assert.True(t, isRelevantChange(fsnotify.Event{Name: "/p/main.cpp", Op: fsnotify.Write}))
	assert.True(t, isRelevantChange(fsnotify.Event{Name: "/p/util.h", Op: fsnotify.Remove}))
	assert.False(t, isRelevantChange(fsnotify.Event{Name: "/p/notes.txt", Op: fsnotify.Write}))
	assert.False(t, isRelevantChange(fsnotify.Event{Name: "/p/main.cpp", Op: fsnotify.Chmod}))
}

func TestWatchRoots_DeduplicatesAndSkipsMissing(t *testing.T) {
	tmpDir := t.TempDir()
	missing := filepath.Join(tmpDir, "missing")

	roots := watchRoots(resolver.Settings{
		ParseDirs:   []string{tmpDir, missing},
		IncludeDirs: []string{tmpDir},
		SearchDirs:  []string{tmpDir},
	})

	assert.Equal(t, []string{tmpDir}, roots)
}
