// Package testutil holds small helpers shared by the package tests.
package testutil

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/afero"
)

// Path joins parts into a platform-independent path. Tests use it instead of
// hardcoding separators so they also pass on Windows.
//
// Pass "/" as the first part for an absolute path: on Unix it yields
// /home/user, on Windows C:\home\user (a bare C: would be relative).
func Path(parts ...string) string {
	if len(parts) == 0 {
		return ""
	}
	if parts[0] == "/" {
		if runtime.GOOS == "windows" {
			return "C:\\" + filepath.Join(parts[1:]...)
		}
		return filepath.Join(parts...)
	}
	return filepath.Join(parts...)
}

// WriteFile creates a file with the given content, failing the test on error.
func WriteFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	if err := afero.WriteFile(fsys, path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
