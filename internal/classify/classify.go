// Package classify assigns each file the name of the folder it belongs in.
//
// Every strategy is total: a file always maps to exactly one folder name,
// with catch-all folders ("Others", "Unknown Size") absorbing whatever
// nothing else claims.
package classify

import "organize/internal/scan"

// FallbackFolder absorbs files no category, pattern, or rule claims.
const FallbackFolder = "Others"

// Strategy maps a file to a destination folder name.
type Strategy interface {
	// Name identifies the strategy in logs.
	Name() string

	// Classify returns the destination folder for the entry. An error marks
	// the entry failed; the run records it and moves on.
	Classify(entry scan.FileEntry) (string, error)
}
