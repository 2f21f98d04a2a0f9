// Package discover finds C/C++ source and header files under a directory.
package discover

import (
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/incpath/incpath/pathutil"
)

var sourceExtensions = map[string]bool{
	".h":   true,
	".hpp": true,
	".hxx": true,
	".hh":  true,
	".c":   true,
	".cpp": true,
	".cxx": true,
}

// Options controls discovery behavior.
type Options struct {
	// RespectGitignore skips files matched by a .gitignore at the walk root.
	RespectGitignore bool
}

// IsSourceFile reports whether path has a recognized C/C++ extension.
func IsSourceFile(path string) bool {
	return sourceExtensions[strings.ToLower(filepath.Ext(path))]
}

// SourceFiles returns the canonical paths of all C/C++ files under root,
// recursively. Entries that cannot be read or canonicalized are skipped.
func SourceFiles(root string, opts Options) ([]string, error) {
	var gi *ignore.GitIgnore
	if opts.RespectGitignore {
		gi = loadGitignore(root)
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if d.IsDir() || !IsSourceFile(d.Name()) {
			return nil
		}
		if gi != nil {
			rel, relErr := filepath.Rel(root, path)
			if relErr == nil && gi.MatchesPath(rel) {
				return nil
			}
		}
		canonical, canonErr := pathutil.Canonical(path)
		if canonErr != nil {
			return nil
		}
		files = append(files, canonical)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func loadGitignore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}
