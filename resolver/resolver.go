// Package resolver computes the minimal set of include directories needed for
// every #include in a source tree to resolve, and reports directives that are
// unresolvable or ambiguous.
package resolver

import (
	"path"
	"path/filepath"
	"sort"

	"github.com/incpath/incpath/discover"
	"github.com/incpath/incpath/pathutil"
	"github.com/incpath/incpath/scan"
)

// Compute runs one resolution pass over the configured directories. Nothing
// inside the pass is fatal: missing directories, unreadable files, and
// unresolvable or ambiguous includes all end up as data in the Result.
// progress may be nil.
func Compute(settings Settings, progress ProgressFunc) *Result {
	p := newPass(settings, progress)
	p.seed()
	p.run()
	return p.result()
}

type pass struct {
	settings Settings
	progress ProgressFunc

	// toParse is the growing worklist of canonical file paths; queued
	// guarantees each path is enqueued at most once.
	toParse []string
	queued  map[string]bool

	// knownDirs is the sorted set of directories confirmed to help
	// resolution. It is seeded from the configured include dirs and doubles
	// as the final answer.
	knownDirs   []string
	knownDirSet map[string]bool

	// pool indexes every candidate file by its base name.
	pool     map[string][]string
	poolSeen map[string]bool

	conflicts  map[string]*Conflict
	unresolved map[Unresolved]bool
	invalid    map[string]bool

	graph    IncludeGraph
	edgeSeen map[string]map[string]bool
}

func newPass(settings Settings, progress ProgressFunc) *pass {
	return &pass{
		settings:    settings,
		progress:    progress,
		queued:      make(map[string]bool),
		knownDirSet: make(map[string]bool),
		pool:        make(map[string][]string),
		poolSeen:    make(map[string]bool),
		conflicts:   make(map[string]*Conflict),
		unresolved:  make(map[Unresolved]bool),
		invalid:     make(map[string]bool),
		graph:       make(IncludeGraph),
		edgeSeen:    make(map[string]map[string]bool),
	}
}

func (p *pass) seed() {
	opts := discover.Options{RespectGitignore: p.settings.RespectGitignore}

	for _, dir := range p.settings.ParseDirs {
		files, ok := p.discoverDir(dir, opts)
		if !ok {
			continue
		}
		for _, file := range files {
			p.enqueue(file)
		}
	}

	for _, dir := range p.settings.IncludeDirs {
		if !pathutil.IsDir(dir) {
			p.invalid[pathutil.Display(dir)] = true
			continue
		}
		canonical, err := pathutil.Canonical(dir)
		if err != nil {
			p.invalid[pathutil.Display(dir)] = true
			continue
		}
		p.addKnownDir(canonical)
	}

	for _, dir := range p.settings.SearchDirs {
		files, ok := p.discoverDir(dir, opts)
		if !ok {
			continue
		}
		for _, file := range files {
			if p.poolSeen[file] {
				continue
			}
			p.poolSeen[file] = true
			base := path.Base(file)
			p.pool[base] = append(p.pool[base], file)
		}
	}
}

func (p *pass) discoverDir(dir string, opts discover.Options) ([]string, bool) {
	if !pathutil.IsDir(dir) {
		p.invalid[pathutil.Display(dir)] = true
		return nil, false
	}
	files, err := discover.SourceFiles(dir, opts)
	if err != nil {
		p.invalid[pathutil.Display(dir)] = true
		return nil, false
	}
	return files, true
}

func (p *pass) run() {
	for i := 0; i < len(p.toParse); i++ {
		file := p.toParse[i]
		if p.progress != nil {
			p.progress(i+1, len(p.toParse), file)
		}
		if _, ok := p.graph[file]; !ok {
			p.graph[file] = []string{}
		}
		directives, err := scan.File(filepath.FromSlash(file))
		if err != nil {
			continue
		}
		for _, d := range directives {
			p.resolve(file, d)
		}
	}
}

// resolve classifies one directive occurrence, in strict priority order:
// relative to the including file, continuation of a known conflict, candidate
// pool search, known-directory fallback, and finally unresolved.
func (p *pass) resolve(file string, d scan.Directive) {
	loc := Location{File: file, Line: d.Line}

	relative := path.Join(path.Dir(file), d.Path)
	if pathutil.IsFile(relative) && p.enqueueTarget(file, relative) {
		return
	}

	if c, ok := p.conflicts[d.Path]; ok {
		c.addLocation(loc)
		return
	}

	dirs := p.searchPool(d.Path)
	switch {
	case len(dirs) == 1:
		p.addKnownDir(dirs[0])
		p.enqueueTarget(file, path.Join(dirs[0], d.Path))
		return
	case len(dirs) > 1:
		c := &Conflict{}
		c.addLocation(loc)
		for _, dir := range dirs {
			c.addDir(dir)
			// Enqueue through every candidate so files reachable only
			// through an ambiguous include still get scanned.
			p.enqueueTarget(file, path.Join(dir, d.Path))
		}
		p.conflicts[d.Path] = c
		return
	}

	for _, dir := range p.knownDirs {
		candidate := path.Join(dir, d.Path)
		if pathutil.IsFile(candidate) && p.enqueueTarget(file, candidate) {
			return
		}
	}

	p.unresolved[Unresolved{Location: loc, Include: d.Path}] = true
}

// searchPool returns, sorted, every directory that resolves the include text:
// directories obtained by stripping the text as a path suffix off a candidate
// file with the same base name.
func (p *pass) searchPool(include string) []string {
	suffix := "/" + include
	set := make(map[string]bool)
	for _, candidate := range p.pool[path.Base(include)] {
		if dir, ok := cutSuffix(candidate, suffix); ok {
			set[dir] = true
		}
	}
	if len(set) == 0 {
		return nil
	}
	dirs := make([]string, 0, len(set))
	for dir := range set {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}

func cutSuffix(s, suffix string) (string, bool) {
	if len(s) <= len(suffix) || s[len(s)-len(suffix):] != suffix {
		return "", false
	}
	return s[:len(s)-len(suffix)], true
}

// enqueueTarget canonicalizes target, queues it for scanning if new, and
// records the resolution edge. It reports whether target was canonicalizable.
func (p *pass) enqueueTarget(from, target string) bool {
	canonical, err := pathutil.Canonical(target)
	if err != nil {
		return false
	}
	p.enqueue(canonical)
	if p.edgeSeen[from] == nil {
		p.edgeSeen[from] = make(map[string]bool)
	}
	if !p.edgeSeen[from][canonical] {
		p.edgeSeen[from][canonical] = true
		p.graph[from] = append(p.graph[from], canonical)
	}
	return true
}

func (p *pass) enqueue(canonical string) {
	if p.queued[canonical] {
		return
	}
	p.queued[canonical] = true
	p.toParse = append(p.toParse, canonical)
}

func (p *pass) addKnownDir(dir string) {
	if p.knownDirSet[dir] {
		return
	}
	p.knownDirSet[dir] = true
	i := sort.SearchStrings(p.knownDirs, dir)
	p.knownDirs = append(p.knownDirs, "")
	copy(p.knownDirs[i+1:], p.knownDirs[i:])
	p.knownDirs[i] = dir
}

func (p *pass) result() *Result {
	invalid := make([]string, 0, len(p.invalid))
	for invalidPath := range p.invalid {
		invalid = append(invalid, invalidPath)
	}
	sort.Strings(invalid)

	unresolved := make([]Unresolved, 0, len(p.unresolved))
	for u := range p.unresolved {
		unresolved = append(unresolved, u)
	}
	sort.Slice(unresolved, func(i, j int) bool {
		if unresolved[i].Location != unresolved[j].Location {
			return unresolved[i].Location.less(unresolved[j].Location)
		}
		return unresolved[i].Include < unresolved[j].Include
	})

	return &Result{
		InvalidPaths: invalid,
		Unresolved:   unresolved,
		Conflicts:    p.conflicts,
		IncludeDirs:  append([]string(nil), p.knownDirs...),
		FilesParsed:  len(p.toParse),
		Graph:        p.graph,
	}
}
