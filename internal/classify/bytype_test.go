package classify

import (
	"path/filepath"
	"strings"
	"testing"

	"organize/internal/scan"
	"organize/internal/testutil"

	"github.com/spf13/afero"
)

// testEntry builds the entry the scanner would produce for name.
func testEntry(name string, size int64) scan.FileEntry {
	return scan.FileEntry{
		Path: testutil.Path("/", "src", name),
		Name: name,
		Ext:  strings.ToLower(filepath.Ext(name)),
		Size: size,
	}
}

func TestByTypeDefaultCategories(t *testing.T) {
	tests := []struct {
		filename string
		folder   string
	}{
		{"photo.png", "Images"},
		{"photo.JPG", "Images"},
		{"report.pdf", "Documents"},
		{"sheet.csv", "Spreadsheets"},
		{"deck.key", "Presentations"},
		{"clip.webm", "Videos"},
		{"song.mp3", "Audio"},
		{"backup.7z", "Archives"},
		{"archive.tar.gz", "Archives"},
		{"main.rs", "Code"},
		{"setup.dmg", "Executables"},
		{"font.woff2", "Fonts"},
		{"data.xyz", "Others"},
		{"README", "Others"},
	}

	s := &ByType{Categories: DefaultCategories()}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			folder, err := s.Classify(testEntry(tt.filename, 1_000))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if folder != tt.folder {
				t.Errorf("Classify(%s) = %q, want %q", tt.filename, folder, tt.folder)
			}
		})
	}
}

func TestByTypeFirstCategoryWins(t *testing.T) {
	s := &ByType{Categories: Categories{
		{Name: "Raw", Extensions: []string{".png"}},
		{Name: "Images", Extensions: []string{".png", ".jpg"}},
	}}

	folder, err := s.Classify(testEntry("shot.png", 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if folder != "Raw" {
		t.Errorf("Classify = %q, want %q", folder, "Raw")
	}

	folder, err = s.Classify(testEntry("shot.jpg", 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if folder != "Images" {
		t.Errorf("Classify = %q, want %q", folder, "Images")
	}
}

func TestLoadCategories(t *testing.T) {
	path := testutil.Path("/", "categories.yaml")
	fsys := afero.NewMemMapFs()
	testutil.WriteFile(t, fsys, path, `
- name: Pictures
  extensions: [JPG, .png]
- name: Music
  extensions:
    - .mp3
`)

	cs, err := LoadCategories(fsys, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cs) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(cs))
	}

	// Extensions are normalized to lowercase with a leading dot.
	if folder, ok := cs.FolderFor(".jpg"); !ok || folder != "Pictures" {
		t.Errorf("FolderFor(.jpg) = %q, %v, want Pictures", folder, ok)
	}
	if folder, ok := cs.FolderFor(".mp3"); !ok || folder != "Music" {
		t.Errorf("FolderFor(.mp3) = %q, %v, want Music", folder, ok)
	}
}

func TestLoadCategoriesErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"invalid yaml", "- name: [unclosed"},
		{"empty document", ""},
		{"missing name", "- extensions: [.txt]"},
		{"missing extensions", "- name: Docs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.Path("/", "categories.yaml")
			fsys := afero.NewMemMapFs()
			testutil.WriteFile(t, fsys, path, tt.doc)

			if _, err := LoadCategories(fsys, path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadCategoriesMissingFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if _, err := LoadCategories(fsys, testutil.Path("/", "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

func TestByTypeContentDetection(t *testing.T) {
	fsys := afero.NewMemMapFs()
	pngPath := testutil.Path("/", "src", "download")
	if err := afero.WriteFile(fsys, pngPath, pngHeader, 0o644); err != nil {
		t.Fatalf("write png: %v", err)
	}
	blobPath := testutil.Path("/", "src", "blob")
	if err := afero.WriteFile(fsys, blobPath, []byte{0x00, 0x01, 0x02, 0xff}, 0o644); err != nil {
		t.Fatalf("write blob: %v", err)
	}

	s := &ByType{
		Categories: DefaultCategories(),
		Detector:   &ContentDetector{Fs: fsys},
	}

	folder, err := s.Classify(scan.FileEntry{Path: pngPath, Name: "download"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if folder != "Images" {
		t.Errorf("Classify(png content) = %q, want Images", folder)
	}

	folder, err = s.Classify(scan.FileEntry{Path: blobPath, Name: "blob"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if folder != "Others" {
		t.Errorf("Classify(unrecognized content) = %q, want Others", folder)
	}
}

func TestByTypeDetectorSkipsFilesWithExtensions(t *testing.T) {
	// The entry points at a file that does not exist; classification still
	// succeeds because files with an extension are never opened.
	s := &ByType{
		Categories: DefaultCategories(),
		Detector:   &ContentDetector{Fs: afero.NewMemMapFs()},
	}

	folder, err := s.Classify(testEntry("photo.png", 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if folder != "Images" {
		t.Errorf("Classify = %q, want Images", folder)
	}
}

func TestByTypeDetectorFailure(t *testing.T) {
	s := &ByType{
		Categories: DefaultCategories(),
		Detector:   &ContentDetector{Fs: afero.NewMemMapFs()},
	}

	_, err := s.Classify(scan.FileEntry{Path: testutil.Path("/", "gone"), Name: "gone"})
	if err == nil {
		t.Error("expected error sniffing a missing file")
	}
}
