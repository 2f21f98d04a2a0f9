package graph

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/incpath/incpath/resolver"
)

func TestGraphCommand_RendersResolvedEdges(t *testing.T) {
	tmpDir := t.TempDir()
	srcDir := filepath.Join(tmpDir, "src")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		t.Fatalf("os.MkdirAll() error = %v", err)
	}

	mainFile := filepath.Join(srcDir, "main.cpp")
	if err := os.WriteFile(mainFile, []byte("#include \"util.h\"\n"), 0o644); err != nil {
		t.Fatalf("os.WriteFile() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(srcDir, "util.h"), []byte(""), 0o644); err != nil {
		t.Fatalf("os.WriteFile() error = %v", err)
	}

	cmd := NewCommand()
	cmd.SetArgs([]string{"-p", srcDir})

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("cmd.Execute() error = %v", err)
	}

	output := stdout.String()
	if !strings.Contains(output, "digraph") {
		t.Fatalf("expected DOT output, got:\n%s", output)
	}
	if !strings.Contains(output, `"main.cpp"`) || !strings.Contains(output, `"util.h"`) {
		t.Fatalf("expected main.cpp and util.h node labels, got:\n%s", output)
	}
}

func TestRenderDOT_EmptyGraph(t *testing.T) {
	dot, err := renderDOT(resolver.IncludeGraph{})
	if err != nil {
		t.Fatalf("renderDOT() error = %v", err)
	}
	if !strings.Contains(dot, "digraph") {
		t.Fatalf("expected a digraph header, got:\n%s", dot)
	}
}
