package fs

import (
	"os"
	"time"

	"github.com/spf13/afero"
)

// NoopFileSystem is a FileSystem that panics on any operation. Use it in
// tests that must prove the filesystem is never touched.
type NoopFileSystem struct{}

// NewNoop creates a FileSystem that panics on any operation.
func NewNoop() FileSystem {
	return &NoopFileSystem{}
}

func (n *NoopFileSystem) Create(name string) (afero.File, error) {
	panic("noop filesystem: Create called")
}

func (n *NoopFileSystem) Mkdir(name string, perm os.FileMode) error {
	panic("noop filesystem: Mkdir called")
}

func (n *NoopFileSystem) MkdirAll(path string, perm os.FileMode) error {
	panic("noop filesystem: MkdirAll called")
}

func (n *NoopFileSystem) Open(name string) (afero.File, error) {
	panic("noop filesystem: Open called")
}

func (n *NoopFileSystem) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	panic("noop filesystem: OpenFile called")
}

func (n *NoopFileSystem) Remove(name string) error {
	panic("noop filesystem: Remove called")
}

func (n *NoopFileSystem) RemoveAll(path string) error {
	panic("noop filesystem: RemoveAll called")
}

func (n *NoopFileSystem) Rename(oldname, newname string) error {
	panic("noop filesystem: Rename called")
}

func (n *NoopFileSystem) Stat(name string) (os.FileInfo, error) {
	panic("noop filesystem: Stat called")
}

func (n *NoopFileSystem) Name() string {
	return "NoopFileSystem"
}

func (n *NoopFileSystem) Chmod(name string, mode os.FileMode) error {
	panic("noop filesystem: Chmod called")
}

func (n *NoopFileSystem) Chown(name string, uid, gid int) error {
	panic("noop filesystem: Chown called")
}

func (n *NoopFileSystem) Chtimes(name string, atime time.Time, mtime time.Time) error {
	panic("noop filesystem: Chtimes called")
}

func (n *NoopFileSystem) Move(src, dst string) error {
	panic("noop filesystem: Move called")
}

func (n *NoopFileSystem) Copy(src, dst string) error {
	panic("noop filesystem: Copy called")
}

func (n *NoopFileSystem) NextAvailablePath(path string) (string, error) {
	panic("noop filesystem: NextAvailablePath called")
}
