package formatters

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/incpath/incpath/resolver"
)

func TestTextFormatter_FullReport(t *testing.T) {
	res := &resolver.Result{
		InvalidPaths: []string{"missing/dir"},
		Unresolved: []resolver.Unresolved{
			{Location: resolver.Location{File: "/project/src/main.cpp", Line: 4}, Include: "missing.h"},
		},
		Conflicts: map[string]*resolver.Conflict{
			"config.h": {
				Locations: []resolver.Location{{File: "/project/src/main.cpp", Line: 3}},
				Dirs:      []string{"/project/a", "/project/b"},
			},
		},
		IncludeDirs: []string{"/project/include"},
		FilesParsed: 3,
	}

	output, err := (&TextFormatter{}).Format(res)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "text_full_report", []byte(output))
}

func TestTextFormatter_CleanResult(t *testing.T) {
	res := &resolver.Result{FilesParsed: 2}

	output, err := (&TextFormatter{}).Format(res)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "text_clean_result", []byte(output))
}
