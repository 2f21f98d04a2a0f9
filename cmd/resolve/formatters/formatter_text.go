package formatters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/incpath/incpath/resolver"
)

// TextFormatter renders a resolution result as a human-readable report.
type TextFormatter struct{}

// Format converts the result to the text report. Empty sections are omitted.
func (f *TextFormatter) Format(res *resolver.Result) (string, error) {
	var sb strings.Builder

	if len(res.InvalidPaths) > 0 {
		sb.WriteString("invalid paths:\n")
		for _, p := range res.InvalidPaths {
			fmt.Fprintf(&sb, "  %s\n", p)
		}
		sb.WriteString("\n")
	}

	if len(res.Unresolved) > 0 {
		sb.WriteString("unresolved includes:\n")
		for _, u := range res.Unresolved {
			fmt.Fprintf(&sb, "  %s\n", u)
		}
		sb.WriteString("\n")
	}

	if len(res.Conflicts) > 0 {
		sb.WriteString("conflicted includes:\n")
		for _, include := range sortedConflictKeys(res.Conflicts) {
			conflict := res.Conflicts[include]
			fmt.Fprintf(&sb, "  %s\n", include)
			sb.WriteString("    included by:\n")
			for _, loc := range conflict.Locations {
				fmt.Fprintf(&sb, "      %s\n", loc)
			}
			sb.WriteString("    can be resolved by:\n")
			for _, dir := range conflict.Dirs {
				fmt.Fprintf(&sb, "      %s\n", dir)
			}
		}
		sb.WriteString("\n")
	}

	if len(res.IncludeDirs) == 0 {
		sb.WriteString("no include directories required\n")
		return sb.String(), nil
	}

	sb.WriteString("include directories:\n")
	for _, dir := range res.IncludeDirs {
		fmt.Fprintf(&sb, "  %s\n", dir)
	}
	return sb.String(), nil
}

func sortedConflictKeys(conflicts map[string]*resolver.Conflict) []string {
	keys := make([]string, 0, len(conflicts))
	for include := range conflicts {
		keys = append(keys, include)
	}
	sort.Strings(keys)
	return keys
}
