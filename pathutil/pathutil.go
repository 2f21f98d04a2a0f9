// Package pathutil provides the canonical path identity used across the
// resolver: two paths are the same file iff their canonical forms are equal.
package pathutil

import (
	"os"
	"path/filepath"
)

// Canonical returns the absolute, symlink-resolved form of path with
// forward-slash separators. It fails if the path does not exist.
func Canonical(path string) (string, error) {
	abs, err := filepath.Abs(filepath.FromSlash(path))
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(resolved), nil
}

// Display normalizes directory separators to forward slashes.
func Display(path string) string {
	return filepath.ToSlash(path)
}

// IsFile reports whether path exists and is a regular file.
func IsFile(path string) bool {
	info, err := os.Stat(filepath.FromSlash(path))
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(filepath.FromSlash(path))
	return err == nil && info.IsDir()
}
