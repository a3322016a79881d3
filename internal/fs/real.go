package fs

import (
	"log/slog"

	"github.com/spf13/afero"
)

// RealFileSystem performs actual filesystem operations.
type RealFileSystem struct {
	afero.Fs
}

// Move relocates src to dst.
func (r *RealFileSystem) Move(src, dst string) error {
	slog.Debug("moving", "from", src, "to", dst)
	return moveFile(r.Fs, src, dst)
}

// Copy duplicates src at dst.
func (r *RealFileSystem) Copy(src, dst string) error {
	slog.Debug("copying", "from", src, "to", dst)
	return copyFile(r.Fs, src, dst)
}

// Remove performs the remove operation.
func (r *RealFileSystem) Remove(name string) error {
	slog.Debug("removing", "path", name)
	return r.Fs.Remove(name)
}

// NextAvailablePath returns the first collision-free variant of path.
func (r *RealFileSystem) NextAvailablePath(path string) (string, error) {
	resolved, err := nextAvailablePath(r.Fs, path)
	if err != nil {
		return "", err
	}
	if resolved != path {
		slog.Debug("destination exists, using suffixed name", "path", path, "resolved", resolved)
	}
	return resolved, nil
}
