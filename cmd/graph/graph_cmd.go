package graph

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	graphlib "github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
	"github.com/spf13/cobra"

	"github.com/incpath/incpath/cmd/flags"
	"github.com/incpath/incpath/resolver"
)

type graphOptions struct {
	settings flags.SettingsFlags
}

// Cmd represents the graph command.
var Cmd = NewCommand()

// NewCommand returns a new graph command instance.
func NewCommand() *cobra.Command {
	opts := &graphOptions{}

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Emit the resolved include graph as Graphviz DOT",
		Long: `Run a resolution pass and emit the include graph as Graphviz DOT: one node
per scanned file, one edge per successful resolution (relative, pool, fallback,
and every candidate of an ambiguous include).

Examples:
  incpath graph -p src -s third_party
  incpath graph -c incpath.yaml | dot -Tsvg -o includes.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, opts)
		},
	}

	opts.settings.Register(cmd)

	return cmd
}

func runGraph(cmd *cobra.Command, opts *graphOptions) error {
	settings, err := opts.settings.Settings()
	if err != nil {
		return err
	}

	res := resolver.Compute(settings, nil)

	dot, err := renderDOT(res.Graph)
	if err != nil {
		return fmt.Errorf("failed to render include graph: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), dot)
	return nil
}

func renderDOT(includeGraph resolver.IncludeGraph) (string, error) {
	g := graphlib.New(graphlib.StringHash, graphlib.Directed())

	files := make([]string, 0, len(includeGraph))
	for file := range includeGraph {
		files = append(files, file)
	}
	sort.Strings(files)

	addVertex := func(file string) error {
		err := g.AddVertex(file,
			graphlib.VertexAttribute("label", path.Base(file)),
			graphlib.VertexAttribute("shape", "box"),
		)
		if err != nil && !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
			return err
		}
		return nil
	}

	for _, file := range files {
		if err := addVertex(file); err != nil {
			return "", err
		}
	}
	for _, file := range files {
		for _, dep := range includeGraph[file] {
			if err := addVertex(dep); err != nil {
				return "", err
			}
			if err := g.AddEdge(file, dep); err != nil && !errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
				return "", err
			}
		}
	}

	var sb strings.Builder
	if err := draw.DOT(g, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
