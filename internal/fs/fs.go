// Package fs extends afero with the operations file relocation needs:
// renames with a cross-device fallback, metadata-preserving copies, and
// numeric suffix generation for destination collisions.
package fs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// FileSystem extends afero.Fs with the relocation operations.
type FileSystem interface {
	afero.Fs

	// Move relocates the file at src to dst. Implementations rename when
	// possible and fall back to copy-and-remove, e.g. across devices.
	Move(src, dst string) error

	// Copy duplicates the file at src to dst, carrying over the permission
	// bits and the modification time.
	Copy(src, dst string) error

	// NextAvailablePath returns path when nothing exists there, otherwise
	// the first suffixed variant (name_1.ext, name_2.ext, ...) that is free.
	NextAvailablePath(path string) (string, error)
}

// NewReal creates a FileSystem that performs actual filesystem operations.
func NewReal() FileSystem {
	return &RealFileSystem{Fs: afero.NewOsFs()}
}

// NewMem creates an in-memory FileSystem for testing.
func NewMem() *MemFileSystem {
	return &MemFileSystem{Fs: afero.NewMemMapFs()}
}

// SuffixedPath inserts a numeric suffix before the extension: photo.jpg
// with suffix 1 becomes photo_1.jpg. Compound extensions travel as one unit
// (archive.tar.gz -> archive_1.tar.gz) and a leading dot never starts the
// extension (.hidden.txt -> .hidden_1.txt).
func SuffixedPath(path string, suffix int) string {
	dir := filepath.Dir(path)
	stem, ext := splitName(filepath.Base(path))
	return filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, suffix, ext))
}

// splitName splits a filename at the first dot that can start an extension.
// Unlike filepath.Ext, compound extensions are kept whole.
//   - "file.txt" -> ("file", ".txt")
//   - "archive.tar.gz" -> ("archive", ".tar.gz")
//   - ".hidden" -> (".hidden", "")
//   - ".hidden.txt" -> (".hidden", ".txt")
func splitName(filename string) (stem, ext string) {
	start := 0
	if strings.HasPrefix(filename, ".") {
		start = 1
	}
	if idx := strings.Index(filename[start:], "."); idx >= 0 {
		return filename[:start+idx], filename[start+idx:]
	}
	return filename, ""
}

// nextAvailablePath probes path and its suffixed variants in order and
// returns the first one that is free.
func nextAvailablePath(fsys afero.Fs, path string) (string, error) {
	for i := 0; ; i++ {
		candidate := path
		if i > 0 {
			candidate = SuffixedPath(path, i)
		}
		exists, err := afero.Exists(fsys, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
}

// copyFile copies a single file, preserving the permission bits and the
// modification time. Access times are not carried over.
func copyFile(fsys afero.Fs, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}

	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return fsys.Chtimes(dst, time.Now(), info.ModTime())
}

// moveFile renames src to dst, falling back to copy-and-remove when the
// rename fails with a link error (typically a cross-device move).
func moveFile(fsys afero.Fs, src, dst string) error {
	err := fsys.Rename(src, dst)
	if err == nil {
		return nil
	}
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) {
		return err
	}

	if err := copyFile(fsys, src, dst); err != nil {
		return err
	}
	return fsys.Remove(src)
}
