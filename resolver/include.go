package resolver

import (
	"fmt"
	"sort"
)

// Location identifies where an include directive textually occurs.
type Location struct {
	// File is the canonical path of the including file.
	File string `json:"file"`
	// Line is the 1-based line of the directive.
	Line int `json:"line"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

func (l Location) less(other Location) bool {
	if l.File != other.File {
		return l.File < other.File
	}
	return l.Line < other.Line
}

// Unresolved is an include directive with zero candidate resolutions.
type Unresolved struct {
	Location
	// Include is the literal text between the directive's delimiters.
	Include string `json:"include"`
}

func (u Unresolved) String() string {
	return fmt.Sprintf("%s : %s", u.Location, u.Include)
}

// Conflict is an include text resolvable through more than one directory. It
// accumulates every location requesting that text and every directory that
// can resolve it; both sets stay sorted and deduplicated.
type Conflict struct {
	Locations []Location `json:"locations"`
	Dirs      []string   `json:"directories"`
}

func (c *Conflict) addLocation(loc Location) {
	i := sort.Search(len(c.Locations), func(i int) bool {
		return !c.Locations[i].less(loc)
	})
	if i < len(c.Locations) && c.Locations[i] == loc {
		return
	}
	c.Locations = append(c.Locations, Location{})
	copy(c.Locations[i+1:], c.Locations[i:])
	c.Locations[i] = loc
}

func (c *Conflict) addDir(dir string) {
	i := sort.SearchStrings(c.Dirs, dir)
	if i < len(c.Dirs) && c.Dirs[i] == dir {
		return
	}
	c.Dirs = append(c.Dirs, "")
	copy(c.Dirs[i+1:], c.Dirs[i:])
	c.Dirs[i] = dir
}
