// Package scan extracts #include directives from C/C++ sources.
package scan

import (
	"context"
	"fmt"
	"os"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"
)

// IncludeKind distinguishes between quoted and angle-bracket includes.
type IncludeKind int

const (
	IncludeLocal IncludeKind = iota
	IncludeSystem
)

// Directive is one include directive: its literal path text, the 1-based
// line it occurs on, and whether it was written as "..." or <...>.
type Directive struct {
	Path string
	Line int
	Kind IncludeKind
}

// File parses a C/C++ file and returns its include directives in source order.
func File(filePath string) ([]Directive, error) {
	sourceCode, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return Source(sourceCode)
}

// Source parses C/C++ source code and extracts include directives.
func Source(sourceCode []byte) ([]Directive, error) {
	lang := cpp.GetLanguage()

	parser := sitter.NewParser()
	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(context.Background(), nil, sourceCode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse C++ code: %w", err)
	}
	defer tree.Close()

	return extractDirectives(tree.RootNode(), sourceCode), nil
}

func extractDirectives(rootNode *sitter.Node, sourceCode []byte) []Directive {
	var directives []Directive

	var walk func(*sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil {
			return
		}

		if n.Type() == "preproc_include" {
			if d := directiveFromNode(n, sourceCode); d.Path != "" {
				directives = append(directives, d)
			}
		}

		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}

	walk(rootNode)
	return directives
}

func directiveFromNode(node *sitter.Node, sourceCode []byte) Directive {
	line := int(node.StartPoint().Row) + 1

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "string_literal":
			return Directive{Path: cleanStringLiteral(child.Content(sourceCode)), Line: line, Kind: IncludeLocal}
		case "system_lib_string":
			return Directive{Path: cleanSystemInclude(child.Content(sourceCode)), Line: line, Kind: IncludeSystem}
		}
	}

	// Malformed directive (no closing delimiter): not an error, just a line
	// that merely looks like an include.
	return Directive{}
}

func cleanStringLiteral(raw string) string {
	return strings.Trim(raw, "\"' ")
}

func cleanSystemInclude(raw string) string {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "<")
	trimmed = strings.TrimSuffix(trimmed, ">")
	return strings.TrimSpace(trimmed)
}
