package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource(t *testing.T) {
	source := `#include <vector>
#include "foo.hpp"

int main() { return 0; }
`
	directives, err := Source([]byte(source))

	require.NoError(t, err)
	require.Len(t, directives, 2)

	assert.Equal(t, IncludeSystem, directives[0].Kind)
	assert.Equal(t, "vector", directives[0].Path)
	assert.Equal(t, 1, directives[0].Line)

	assert.Equal(t, IncludeLocal, directives[1].Kind)
	assert.Equal(t, "foo.hpp", directives[1].Path)
	assert.Equal(t, 2, directives[1].Line)
}

func TestSource_LineNumbersAreOneBased(t *testing.T) {
	source := `// header comment

#include "late.h"
`
	directives, err := Source([]byte(source))

	require.NoError(t, err)
	require.Len(t, directives, 1)
	assert.Equal(t, 3, directives[0].Line)
}

func TestSource_NestedPathText(t *testing.T) {
	directives, err := Source([]byte(`#include "fmt/format.h"` + "\n"))

	require.NoError(t, err)
	require.Len(t, directives, 1)
	assert.Equal(t, "fmt/format.h", directives[0].Path)
}

func TestSource_NoIncludes(t *testing.T) {
	directives, err := Source([]byte("int x = 1;\n"))

	require.NoError(t, err)
	assert.Empty(t, directives)
}

func TestFile_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "main.cpp")

	content := `
#include "lib.hpp"
`
	err := os.WriteFile(tmpFile, []byte(content), 0o644)
	require.NoError(t, err)

	directives, err := File(tmpFile)

	require.NoError(t, err)
	require.Len(t, directives, 1)
	assert.Equal(t, "lib.hpp", directives[0].Path)
	assert.Equal(t, 2, directives[0].Line)
}

func TestFile_MissingFile(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "missing.cpp"))
	assert.Error(t, err)
}
