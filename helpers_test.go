package xdgicons

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// testDir describes one directory section of a fixture index.theme.
type testDir struct {
	path string
	keys string // extra "Key=Value" lines
}

// writeTheme creates root/name/index.theme declaring inherits and dirs.
func writeTheme(t *testing.T, root, name, inherits string, dirs ...testDir) string {
	t.Helper()

	contentDir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(contentDir, 0o755))

	var sb strings.Builder
	sb.WriteString("[Icon Theme]\nName=" + name + "\n")
	if inherits != "" {
		sb.WriteString("Inherits=" + inherits + "\n")
	}

	var dirNames []string
	for _, dir := range dirs {
		dirNames = append(dirNames, dir.path)
	}
	sb.WriteString("Directories=" + strings.Join(dirNames, ",") + "\n")

	for _, dir := range dirs {
		fmt.Fprintf(&sb, "\n[%s]\n%s\n", dir.path, dir.keys)
		require.NoError(t, os.MkdirAll(filepath.Join(contentDir, dir.path), 0o755))
	}

	require.NoError(t, os.WriteFile(filepath.Join(contentDir, indexFileName), []byte(sb.String()), 0o644))
	return contentDir
}

// touch creates empty files, making parent directories as needed.
func touch(t *testing.T, paths ...string) {
	t.Helper()

	for _, p := range paths {
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o644))
	}
}

func sizeDir(size int) testDir {
	return testDir{
		path: fmt.Sprintf("%dx%d/apps", size, size),
		keys: fmt.Sprintf("Size=%d\nType=Fixed", size),
	}
}

// newTestLookup returns a lookup over roots with hicolor as fallback.
func newTestLookup(theme string, roots ...string) *IconLookup {
	return NewIconLookup(
		WithTheme(theme),
		WithSearchPaths(roots...),
	)
}
