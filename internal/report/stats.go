// Package report aggregates relocation outcomes and renders the run
// summary.
package report

import (
	"sort"

	"organize/internal/relocate"
)

// Stats tallies where files went during a single run.
type Stats struct {
	folders  map[string]*tally
	failures int
}

type tally struct {
	files int
	bytes int64
}

// NewStats returns an empty tally.
func NewStats() *Stats {
	return &Stats{folders: make(map[string]*tally)}
}

// Add folds one relocation record into the tally.
func (s *Stats) Add(rec relocate.Record) {
	if rec.Failed() {
		s.failures++
		return
	}
	t := s.folders[rec.Folder]
	if t == nil {
		t = &tally{}
		s.folders[rec.Folder] = t
	}
	t.files++
	t.bytes += rec.Size
}

// AddFailure counts a file that never reached relocation, e.g. one the
// classifier could not place.
func (s *Stats) AddFailure() {
	s.failures++
}

// Folders returns the destination folder names, sorted.
func (s *Stats) Folders() []string {
	out := make([]string, 0, len(s.folders))
	for name := range s.folders {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Tally returns the file count and byte volume placed in folder.
func (s *Stats) Tally(folder string) (files int, bytes int64) {
	t := s.folders[folder]
	if t == nil {
		return 0, 0
	}
	return t.files, t.bytes
}

// Count returns the file count placed in folder.
func (s *Stats) Count(folder string) int {
	files, _ := s.Tally(folder)
	return files
}

// Counts returns a copy of the folder-to-count mapping.
func (s *Stats) Counts() map[string]int {
	out := make(map[string]int, len(s.folders))
	for name, t := range s.folders {
		out[name] = t.files
	}
	return out
}

// Total returns how many files were (or would be) placed.
func (s *Stats) Total() int {
	total := 0
	for _, t := range s.folders {
		total += t.files
	}
	return total
}

// TotalBytes returns the byte volume behind Total.
func (s *Stats) TotalBytes() int64 {
	var total int64
	for _, t := range s.folders {
		total += t.bytes
	}
	return total
}

// Failures returns how many files could not be processed.
func (s *Stats) Failures() int {
	return s.failures
}
