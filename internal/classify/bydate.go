package classify

import (
	"organize/internal/scan"

	"github.com/itchyny/timefmt-go"
)

// DefaultDateFormat groups files by year and month.
const DefaultDateFormat = "%Y-%m"

// ByDate names folders after a formatted file timestamp.
type ByDate struct {
	// Format is a strftime template, e.g. "%Y-%m" or "%Y/%m/%d". A format
	// containing path separators nests the destination folders.
	Format string

	// UseBirthTime selects the creation time instead of the modification
	// time.
	UseBirthTime bool
}

func (s *ByDate) Name() string { return "date" }

func (s *ByDate) Classify(entry scan.FileEntry) (string, error) {
	format := s.Format
	if format == "" {
		format = DefaultDateFormat
	}

	t := entry.ModTime
	if s.UseBirthTime {
		t = entry.BirthTime
	}
	return timefmt.Format(t, format), nil
}
