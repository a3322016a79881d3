// Package scan enumerates the files a run will consider.
package scan

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/djherbis/times"
	"github.com/spf13/afero"
)

// FileEntry carries the per-file metadata captured once at enumeration time
// so later stages never re-stat.
type FileEntry struct {
	Path      string // absolute path
	Name      string // base name
	Ext       string // lowercased extension with the leading dot, "" when none
	Size      int64
	ModTime   time.Time
	BirthTime time.Time // creation time where the platform records one
}

// Options controls which files an enumeration yields.
type Options struct {
	// Recursive descends into subdirectories instead of listing one level.
	Recursive bool

	// IncludeHidden also yields dot-prefixed files and descends dot-prefixed
	// directories.
	IncludeHidden bool

	// Exclude skips files whose root-relative slash path matches any of
	// these doublestar globs.
	Exclude []string
}

// List returns the regular files beneath root, ordered lexicographically by
// full path. A missing or non-directory root fails before anything else
// happens; unreadable entries inside the tree are logged and skipped.
func List(fsys afero.Fs, root string, opts Options) ([]FileEntry, error) {
	info, err := fsys.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("source directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source %s is not a directory", root)
	}
	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	slog.Debug("enumerating", "source", root, "recursive", opts.Recursive, "include_hidden", opts.IncludeHidden)

	var entries []FileEntry
	collect := func(path string, info os.FileInfo) {
		if !info.Mode().IsRegular() {
			return
		}
		if hidden(info.Name()) && !opts.IncludeHidden {
			return
		}
		if excluded(root, path, opts.Exclude) {
			slog.Debug("excluded", "path", path)
			return
		}
		entries = append(entries, newEntry(path, info))
	}

	if opts.Recursive {
		err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				slog.Warn("skipping unreadable path", "path", path, "error", err)
				return nil
			}
			if path == root {
				return nil
			}
			if info.IsDir() {
				if hidden(info.Name()) && !opts.IncludeHidden {
					return filepath.SkipDir
				}
				return nil
			}
			collect(path, info)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	} else {
		infos, err := afero.ReadDir(fsys, root)
		if err != nil {
			return nil, fmt.Errorf("read source directory %s: %w", root, err)
		}
		for _, info := range infos {
			if info.IsDir() {
				continue
			}
			collect(filepath.Join(root, info.Name()), info)
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}

func newEntry(path string, info os.FileInfo) FileEntry {
	return FileEntry{
		Path:      path,
		Name:      info.Name(),
		Ext:       ext(info.Name()),
		Size:      info.Size(),
		ModTime:   info.ModTime(),
		BirthTime: birthTime(info),
	}
}

// ext returns the lowercased extension. A dotfile like ".env" is a name,
// not an extension, so it yields "".
func ext(name string) string {
	e := filepath.Ext(name)
	if e == name {
		return ""
	}
	return strings.ToLower(e)
}

// birthTime returns the creation time when the platform records one, then
// the inode change time, then the modification time. Infos without platform
// data (in-memory filesystems) only have the modification time.
func birthTime(info os.FileInfo) time.Time {
	if info.Sys() == nil {
		return info.ModTime()
	}
	spec := times.Get(info)
	if spec.HasBirthTime() {
		return spec.BirthTime()
	}
	if spec.HasChangeTime() {
		return spec.ChangeTime()
	}
	return info.ModTime()
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func excluded(root, path string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range patterns {
		// Patterns are validated up front, so Match cannot fail here.
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
