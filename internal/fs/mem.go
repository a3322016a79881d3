package fs

import (
	"fmt"

	"github.com/spf13/afero"
)

// MemFileSystem is an in-memory filesystem for testing. Unlike
// RealFileSystem, it performs no logging.
type MemFileSystem struct {
	afero.Fs
}

// Move relocates src to dst.
func (m *MemFileSystem) Move(src, dst string) error {
	return moveFile(m.Fs, src, dst)
}

// Copy duplicates src at dst.
func (m *MemFileSystem) Copy(src, dst string) error {
	return copyFile(m.Fs, src, dst)
}

// NextAvailablePath returns the first collision-free variant of path.
func (m *MemFileSystem) NextAvailablePath(path string) (string, error) {
	return nextAvailablePath(m.Fs, path)
}

// MustMkdirAll creates a directory and panics on error. For use in tests.
func (m *MemFileSystem) MustMkdirAll(path string) {
	if err := m.Fs.MkdirAll(path, 0o755); err != nil {
		panic(fmt.Sprintf("MustMkdirAll(%q): %v", path, err))
	}
}
