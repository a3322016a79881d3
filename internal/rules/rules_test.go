package rules

import (
	"strings"
	"testing"

	"organize/internal/scan"
	"organize/internal/testutil"

	"github.com/spf13/afero"
)

func TestParseSample(t *testing.T) {
	rs, err := Parse([]byte(Sample()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rs.DefaultFolder != "Others" {
		t.Errorf("DefaultFolder = %q, want %q", rs.DefaultFolder, "Others")
	}
	if len(rs.Rules) != 4 {
		t.Errorf("expected 4 rules, got %d", len(rs.Rules))
	}
}

func TestFolderForSampleRules(t *testing.T) {
	rs, err := Parse([]byte(Sample()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		entry  scan.FileEntry
		folder string
	}{
		{
			name:   "work document by extension and substring",
			entry:  scan.FileEntry{Name: "work_report.docx", Ext: ".docx", Size: 24_000},
			folder: "Work",
		},
		{
			name:   "substring check is case-insensitive",
			entry:  scan.FileEntry{Name: "Q3_WORK_summary.xlsx", Ext: ".xlsx", Size: 10_000},
			folder: "Work",
		},
		{
			name:   "extension alone does not satisfy the work rule",
			entry:  scan.FileEntry{Name: "report.docx", Ext: ".docx", Size: 24_000},
			folder: "Others",
		},
		{
			name:   "screenshot",
			entry:  scan.FileEntry{Name: "screenshot_2024.png", Ext: ".png", Size: 80_000},
			folder: "Screenshots",
		},
		{
			name:   "png without the substring falls through",
			entry:  scan.FileEntry{Name: "vacation.png", Ext: ".png", Size: 80_000},
			folder: "Others",
		},
		{
			name:   "large video",
			entry:  scan.FileEntry{Name: "movie.mp4", Ext: ".mp4", Size: 200_000_000},
			folder: "Large Videos",
		},
		{
			name:   "small video misses the size range",
			entry:  scan.FileEntry{Name: "clip.mp4", Ext: ".mp4", Size: 5_000_000},
			folder: "Others",
		},
		{
			name:   "project file",
			entry:  scan.FileEntry{Name: "main.py", Ext: ".py", Size: 1_000},
			folder: "Projects",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rs.FolderFor(tt.entry); got != tt.folder {
				t.Errorf("FolderFor(%s) = %q, want %q", tt.entry.Name, got, tt.folder)
			}
		})
	}
}

func TestFirstMatchWins(t *testing.T) {
	doc := `{
		"default_folder": "Rest",
		"rules": [
			{"folder": "First", "conditions": {"extensions": [".txt"]}},
			{"folder": "Second", "conditions": {"extensions": [".txt"]}}
		]
	}`
	rs, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := rs.FolderFor(scan.FileEntry{Name: "a.txt", Ext: ".txt"})
	if got != "First" {
		t.Errorf("FolderFor = %q, want %q", got, "First")
	}
}

func TestEmptyConditionsMatchEverything(t *testing.T) {
	doc := `{
		"rules": [
			{"folder": "All", "conditions": {}}
		]
	}`
	rs, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := rs.FolderFor(scan.FileEntry{Name: "anything.bin", Ext: ".bin", Size: 1})
	if got != "All" {
		t.Errorf("FolderFor = %q, want %q", got, "All")
	}
}

func TestDefaultFolderFallsBackToOthers(t *testing.T) {
	doc := `{
		"rules": [
			{"folder": "Docs", "conditions": {"extensions": [".pdf"]}}
		]
	}`
	rs, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rs.DefaultFolder != "Others" {
		t.Errorf("DefaultFolder = %q, want %q", rs.DefaultFolder, "Others")
	}
	if got := rs.FolderFor(scan.FileEntry{Name: "x.bin", Ext: ".bin"}); got != "Others" {
		t.Errorf("FolderFor = %q, want %q", got, "Others")
	}
}

func TestExtensionsNormalized(t *testing.T) {
	doc := `{
		"rules": [
			{"folder": "Images", "conditions": {"extensions": ["JPG", ".PNG"]}}
		]
	}`
	rs, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, ext := range []string{".jpg", ".png"} {
		if got := rs.FolderFor(scan.FileEntry{Name: "photo" + ext, Ext: ext}); got != "Images" {
			t.Errorf("FolderFor(ext %q) = %q, want %q", ext, got, "Images")
		}
	}
}

func TestSizeRangeBoundsAreInclusive(t *testing.T) {
	max := int64(200)
	r := SizeRange{Min: 100, Max: &max}

	tests := []struct {
		size int64
		want bool
	}{
		{99, false},
		{100, true},
		{150, true},
		{200, true},
		{201, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.size); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.size, got, tt.want)
		}
	}
}

func TestSizeRangeUnboundedMax(t *testing.T) {
	r := SizeRange{Min: 104_857_600}
	if !r.Contains(1 << 40) {
		t.Error("expected unbounded range to contain very large sizes")
	}
	if r.Contains(104_857_599) {
		t.Error("expected size below min to be outside the range")
	}
}

func TestParseRejectsMalformedDocuments(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "invalid json",
			doc:     `{"rules": [`,
			wantErr: "parse rules",
		},
		{
			name:    "no rules",
			doc:     `{"rules": []}`,
			wantErr: "no rules",
		},
		{
			name:    "missing folder",
			doc:     `{"rules": [{"name": "broken", "conditions": {}}]}`,
			wantErr: "folder must not be empty",
		},
		{
			name:    "unknown field",
			doc:     `{"rules": [{"folder": "X", "conditions": {"extension": [".txt"]}}]}`,
			wantErr: "parse rules",
		},
		{
			name:    "size range with three elements",
			doc:     `{"rules": [{"folder": "X", "conditions": {"size_range": [1, 2, 3]}}]}`,
			wantErr: "exactly two elements",
		},
		{
			name:    "size range with null min",
			doc:     `{"rules": [{"folder": "X", "conditions": {"size_range": [null, 5]}}]}`,
			wantErr: "min must be a number",
		},
		{
			name:    "size range max below min",
			doc:     `{"rules": [{"folder": "X", "conditions": {"size_range": [10, 5]}}]}`,
			wantErr: "below min",
		},
		{
			name:    "negative min",
			doc:     `{"rules": [{"folder": "X", "conditions": {"size_range": [-1, 5]}}]}`,
			wantErr: "must not be negative",
		},
		{
			name:    "empty extension",
			doc:     `{"rules": [{"folder": "X", "conditions": {"extensions": [""]}}]}`,
			wantErr: "empty strings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := testutil.Path("/", "rules.json")
	fsys := afero.NewMemMapFs()
	testutil.WriteFile(t, fsys, path, Sample())

	rs, err := Load(fsys, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rs.Rules) != 4 {
		t.Errorf("expected 4 rules, got %d", len(rs.Rules))
	}
}

func TestLoadMissingFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	_, err := Load(fsys, testutil.Path("/", "nope.json"))
	if err == nil {
		t.Error("expected error for missing rules file")
	}
}

func TestWriteSample(t *testing.T) {
	path := testutil.Path("/", "dir", "rules.json")
	fsys := afero.NewMemMapFs()

	if err := WriteSample(fsys, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rs, err := Load(fsys, path)
	if err != nil {
		t.Fatalf("written sample does not load: %v", err)
	}
	if len(rs.Rules) == 0 {
		t.Error("written sample has no rules")
	}

	if err := WriteSample(fsys, path); err == nil {
		t.Error("expected error overwriting an existing file")
	}
}
