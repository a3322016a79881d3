// Package organizer runs one organization pass: enumerate files, classify
// each into a folder, and relocate them beneath the target root.
package organizer

import (
	"errors"
	"log/slog"

	"organize/internal/classify"
	"organize/internal/fs"
	"organize/internal/relocate"
	"organize/internal/report"
	"organize/internal/scan"

	"github.com/schollz/progressbar/v3"
)

// Options configure a run.
type Options struct {
	// Source is the directory to organize.
	Source string

	// TargetRoot is where destination folders are created. Empty means
	// organize in place under Source.
	TargetRoot string

	// Scan controls file enumeration.
	Scan scan.Options

	// Strategy decides the destination folder for each file.
	Strategy classify.Strategy

	// DryRun plans the moves without touching the filesystem.
	DryRun bool

	// Copy duplicates files instead of moving them.
	Copy bool

	// Progress shows a progress bar on interactive terminals.
	Progress bool
}

// Result is what a run produced.
type Result struct {
	Stats *report.Stats
	Log   *relocate.Log
}

// Organize runs a full pass over the source directory. Per-file failures are
// tallied in the result; only setup problems (unreadable source, bad
// options) are returned as errors.
func Organize(fsys fs.FileSystem, opts Options) (*Result, error) {
	if opts.Strategy == nil {
		return nil, errors.New("no classification strategy configured")
	}

	entries, err := scan.List(fsys, opts.Source, opts.Scan)
	if err != nil {
		return nil, err
	}

	targetRoot := opts.TargetRoot
	if targetRoot == "" {
		targetRoot = opts.Source
	}
	mover := relocate.New(fsys, relocate.Options{
		TargetRoot: targetRoot,
		DryRun:     opts.DryRun,
		Copy:       opts.Copy,
	})

	slog.Info("organizing",
		"source", opts.Source,
		"target", targetRoot,
		"strategy", opts.Strategy.Name(),
		"files", len(entries),
		"dry_run", opts.DryRun)

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = report.NewProgress(len(entries))
	}

	stats := report.NewStats()
	for _, entry := range entries {
		folder, err := opts.Strategy.Classify(entry)
		if err != nil {
			slog.Error("classification failed", "path", entry.Path, "error", err)
			stats.AddFailure()
		} else {
			stats.Add(mover.Relocate(entry, folder))
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	return &Result{Stats: stats, Log: mover.Log()}, nil
}
