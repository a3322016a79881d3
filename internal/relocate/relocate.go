// Package relocate moves or copies classified files into their destination
// folders and records every outcome.
package relocate

import (
	"log/slog"
	"path/filepath"
	"slices"

	"organize/internal/fs"
	"organize/internal/scan"
)

// Op is the filesystem operation a run performs.
type Op string

const (
	OpMove Op = "move"
	OpCopy Op = "copy"
)

// Status describes how a relocation attempt ended.
type Status string

const (
	// StatusPlanned marks a dry-run record: the file would land at Dest,
	// but nothing was touched.
	StatusPlanned Status = "planned"

	// StatusDone marks a completed live relocation.
	StatusDone Status = "done"

	// StatusFailed marks an attempt that errored; Reason holds the cause.
	StatusFailed Status = "failed"
)

// Record is the outcome of one relocation attempt.
type Record struct {
	Source string // original absolute path
	Folder string // folder name the classifier chose
	Dest   string // target path after collision resolution
	Size   int64  // file size in bytes, for reporting
	Op     Op
	Status Status
	Reason string // failure cause, empty otherwise
}

// Failed reports whether the attempt errored.
func (r Record) Failed() bool { return r.Status == StatusFailed }

// Log is the append-only history of one run.
type Log struct {
	records []Record
}

// Records returns every recorded outcome in order.
func (l *Log) Records() []Record {
	return slices.Clone(l.records)
}

// Destinations returns the final paths of the live relocations that
// succeeded, in the order they happened. Dry-run and failed records never
// appear here.
func (l *Log) Destinations() []string {
	var dests []string
	for _, r := range l.records {
		if r.Status == StatusDone {
			dests = append(dests, r.Dest)
		}
	}
	return dests
}

// Options configures a Mover.
type Options struct {
	// TargetRoot is the directory destination folders are created under.
	TargetRoot string

	// DryRun plans relocations without touching the filesystem.
	DryRun bool

	// Copy duplicates files instead of moving them.
	Copy bool
}

// Mover relocates files beneath a target root.
type Mover struct {
	fs   fs.FileSystem
	opts Options
	log  Log
}

// New creates a Mover.
func New(fsys fs.FileSystem, opts Options) *Mover {
	return &Mover{fs: fsys, opts: opts}
}

// Log returns the history of every attempt so far.
func (m *Mover) Log() *Log { return &m.log }

// Relocate places the file into folder under the target root. Failures are
// captured in the returned record, never propagated: one bad file must not
// abort a batch.
func (m *Mover) Relocate(entry scan.FileEntry, folder string) Record {
	target := filepath.Join(m.opts.TargetRoot, folder, entry.Name)

	var rec Record
	if m.opts.DryRun {
		// Dry runs report the untouched target path without probing the
		// destination, so collision suffixes only appear in live runs.
		slog.Info("would "+string(m.op()), "source", entry.Path, "dest", target)
		rec = Record{
			Source: entry.Path,
			Folder: folder,
			Dest:   target,
			Size:   entry.Size,
			Op:     m.op(),
			Status: StatusPlanned,
		}
	} else {
		rec = m.perform(entry, folder, target)
	}

	m.log.records = append(m.log.records, rec)
	return rec
}

func (m *Mover) perform(entry scan.FileEntry, folder, target string) Record {
	rec := Record{
		Source: entry.Path,
		Folder: folder,
		Dest:   target,
		Size:   entry.Size,
		Op:     m.op(),
	}
	fail := func(err error) Record {
		slog.Error("relocation failed", "source", entry.Path, "error", err)
		rec.Status = StatusFailed
		rec.Reason = err.Error()
		return rec
	}

	if err := m.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fail(err)
	}

	resolved, err := m.fs.NextAvailablePath(target)
	if err != nil {
		return fail(err)
	}
	rec.Dest = resolved

	if m.opts.Copy {
		err = m.fs.Copy(entry.Path, resolved)
	} else {
		err = m.fs.Move(entry.Path, resolved)
	}
	if err != nil {
		return fail(err)
	}

	slog.Info(m.verb(), "name", entry.Name, "folder", folder)
	rec.Status = StatusDone
	return rec
}

func (m *Mover) op() Op {
	if m.opts.Copy {
		return OpCopy
	}
	return OpMove
}

func (m *Mover) verb() string {
	if m.opts.Copy {
		return "copied"
	}
	return "moved"
}
