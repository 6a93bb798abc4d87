package unittest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TempDir returns a temporary directory removed at the end of the test.
func TempDir(t testing.TB) string {
	dir, err := os.MkdirTemp("", "flow-seq-testing-temp-")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	return dir
}

// WriteFile writes content to the file name in dir and returns its path.
func WriteFile(t testing.TB, dir string, name string, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
