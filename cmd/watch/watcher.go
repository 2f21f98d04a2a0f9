package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/incpath/incpath/discover"
	"github.com/incpath/incpath/resolver"
)

const debounceInterval = 300 * time.Millisecond

var skippedDirs = map[string]bool{
	".git":    true,
	".svn":    true,
	".idea":   true,
	".vscode": true,
	"build":   true,
}

// watchAndResolve watches every configured directory tree and invokes rebuild
// after each relevant change, debounced.
func watchAndResolve(ctx context.Context, settings resolver.Settings, rebuild func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range watchRoots(settings) {
		if err := addWatchDirs(watcher, dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !isRelevantChange(event) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceInterval, rebuild)

			if event.Has(fsnotify.Create) {
				addIfDirectory(watcher, event.Name)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watcher error: %v\n", err)
		}
	}
}

func watchRoots(settings resolver.Settings) []string {
	var roots []string
	seen := make(map[string]bool)
	for _, dirs := range [][]string{settings.ParseDirs, settings.IncludeDirs, settings.SearchDirs} {
		for _, dir := range dirs {
			if info, err := os.Stat(dir); err != nil || !info.IsDir() {
				continue
			}
			if !seen[dir] {
				seen[dir] = true
				roots = append(roots, dir)
			}
		}
	}
	return roots
}

func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if skippedDirs[d.Name()] {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

func addIfDirectory(watcher *fsnotify.Watcher, path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	if skippedDirs[filepath.Base(path)] {
		return
	}
	_ = addWatchDirs(watcher, path)
}

func isRelevantChange(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			return true
		}
	}
	return discover.IsSourceFile(event.Name)
}
