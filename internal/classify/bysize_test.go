package classify

import (
	"testing"

	"organize/internal/scan"
)

func TestBySizeDefaultBrackets(t *testing.T) {
	tests := []struct {
		size   int64
		folder string
	}{
		{0, "Small (< 1MB)"},
		{500_000, "Small (< 1MB)"},
		{1_048_575, "Small (< 1MB)"},
		// Bracket bounds are half-open: exactly 1 MiB is already Medium.
		{1_048_576, "Medium (1-10MB)"},
		{5_000_000, "Medium (1-10MB)"},
		{10_485_759, "Medium (1-10MB)"},
		{10_485_760, "Large (10-100MB)"},
		{104_857_599, "Large (10-100MB)"},
		{104_857_600, "Very Large (> 100MB)"},
		{200_000_000, "Very Large (> 100MB)"},
	}

	s := &BySize{Brackets: DefaultSizeBrackets()}
	for _, tt := range tests {
		folder, err := s.Classify(scan.FileEntry{Name: "f.bin", Size: tt.size})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if folder != tt.folder {
			t.Errorf("Classify(size %d) = %q, want %q", tt.size, folder, tt.folder)
		}
	}
}

func TestBySizeUnknownSizeFallback(t *testing.T) {
	s := &BySize{Brackets: []SizeBracket{
		{Name: "Tiny", Min: 0, Max: 10},
	}}

	folder, err := s.Classify(scan.FileEntry{Name: "f.bin", Size: 99})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if folder != UnknownSizeFolder {
		t.Errorf("Classify = %q, want %q", folder, UnknownSizeFolder)
	}
}
