package classify

import (
	"math"

	"organize/internal/scan"
)

// UnknownSizeFolder absorbs files no size bracket claims.
const UnknownSizeFolder = "Unknown Size"

// SizeBracket is a named half-open byte range [Min, Max).
type SizeBracket struct {
	Name string
	Min  int64
	Max  int64 // math.MaxInt64 leaves the bracket unbounded
}

// Contains reports whether size lies in [Min, Max).
func (b SizeBracket) Contains(size int64) bool {
	return size >= b.Min && size < b.Max
}

// DefaultSizeBrackets returns the built-in brackets. Bounds are binary
// megabytes, so a 1,048,576-byte file is already "Medium".
func DefaultSizeBrackets() []SizeBracket {
	const mib = int64(1) << 20
	return []SizeBracket{
		{Name: "Small (< 1MB)", Min: 0, Max: 1 * mib},
		{Name: "Medium (1-10MB)", Min: 1 * mib, Max: 10 * mib},
		{Name: "Large (10-100MB)", Min: 10 * mib, Max: 100 * mib},
		{Name: "Very Large (> 100MB)", Min: 100 * mib, Max: math.MaxInt64},
	}
}

// BySize assigns the first bracket containing the file size.
type BySize struct {
	Brackets []SizeBracket
}

func (s *BySize) Name() string { return "size" }

func (s *BySize) Classify(entry scan.FileEntry) (string, error) {
	brackets := s.Brackets
	if len(brackets) == 0 {
		brackets = DefaultSizeBrackets()
	}

	for _, b := range brackets {
		if b.Contains(entry.Size) {
			return b.Name, nil
		}
	}
	return UnknownSizeFolder, nil
}
