package resolver

import (
	"fmt"

	"github.com/incpath/incpath/pathutil"
)

// Settings describes one resolution pass.
type Settings struct {
	// ParseDirs are scanned recursively for source files whose includes
	// must resolve.
	ParseDirs []string
	// IncludeDirs are directories already known to be on the include path.
	IncludeDirs []string
	// SearchDirs form the candidate pool used to resolve includes that
	// match nothing else.
	SearchDirs []string
	// RespectGitignore skips gitignored files while discovering sources.
	RespectGitignore bool
}

// ProgressFunc is invoked once per file, before it is scanned. The total may
// grow between calls as newly resolved files join the parse worklist.
type ProgressFunc func(current, total int, filePath string)

// PrintParseStatus is a ProgressFunc that prints "[current/total] path".
func PrintParseStatus(current, total int, filePath string) {
	fmt.Printf("[%d/%d] %s\n", current, total, pathutil.Display(filePath))
}
