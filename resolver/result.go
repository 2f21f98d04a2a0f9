package resolver

// IncludeGraph maps each scanned file to the files its includes resolved to,
// in resolution order. Files whose includes all failed map to an empty list.
type IncludeGraph map[string][]string

// Result is the immutable outcome of one resolution pass. All paths are
// canonical with forward-slash separators; all slices are ordered.
type Result struct {
	// InvalidPaths are configured directories that did not exist on disk.
	InvalidPaths []string `json:"invalid_paths"`
	// Unresolved are directives no strategy could match, ordered by
	// (file, line).
	Unresolved []Unresolved `json:"unresolved_includes"`
	// Conflicts maps include text to its ambiguity record.
	Conflicts map[string]*Conflict `json:"conflicted_includes"`
	// IncludeDirs are the directories the build must put on the include
	// path: the configured ones that exist plus every directory a
	// single-candidate resolution proved necessary.
	IncludeDirs []string `json:"include_dirs"`
	// FilesParsed counts the files scanned during the pass.
	FilesParsed int `json:"files_parsed"`
	// Graph records successful resolutions for visualization.
	Graph IncludeGraph `json:"-"`
}
