package classify

import (
	"errors"
	"fmt"
	"strings"

	"organize/internal/scan"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Category names a group of file extensions.
type Category struct {
	Name       string   `yaml:"name"`
	Extensions []string `yaml:"extensions"`
}

// Categories is an ordered category table; the first category containing an
// extension wins.
type Categories []Category

// FolderFor returns the first category containing ext.
func (cs Categories) FolderFor(ext string) (string, bool) {
	for _, c := range cs {
		for _, candidate := range c.Extensions {
			if candidate == ext {
				return c.Name, true
			}
		}
	}
	return "", false
}

// DefaultCategories returns the built-in category table.
func DefaultCategories() Categories {
	return Categories{
		{Name: "Images", Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".webp", ".svg", ".ico", ".heic"}},
		{Name: "Documents", Extensions: []string{".pdf", ".doc", ".docx", ".txt", ".rtf", ".odt", ".pages"}},
		{Name: "Spreadsheets", Extensions: []string{".xls", ".xlsx", ".csv", ".ods", ".numbers"}},
		{Name: "Presentations", Extensions: []string{".ppt", ".pptx", ".odp", ".key"}},
		{Name: "Videos", Extensions: []string{".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm", ".m4v"}},
		{Name: "Audio", Extensions: []string{".mp3", ".wav", ".flac", ".aac", ".ogg", ".wma", ".m4a"}},
		{Name: "Archives", Extensions: []string{".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz"}},
		{Name: "Code", Extensions: []string{".py", ".js", ".html", ".css", ".cpp", ".java", ".php", ".rb", ".go", ".rs"}},
		{Name: "Executables", Extensions: []string{".exe", ".msi", ".deb", ".rpm", ".dmg", ".pkg", ".app"}},
		{Name: "Fonts", Extensions: []string{".ttf", ".otf", ".woff", ".woff2", ".eot"}},
	}
}

// LoadCategories reads a replacement category table from a YAML file. The
// file is an ordered list of {name, extensions} entries; list order sets
// lookup precedence.
func LoadCategories(fsys afero.Fs, path string) (Categories, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read categories file: %w", err)
	}

	var cs Categories
	if err := yaml.Unmarshal(data, &cs); err != nil {
		return nil, fmt.Errorf("parse categories %s: %w", path, err)
	}
	if len(cs) == 0 {
		return nil, errors.New("categories file defines no categories")
	}
	for i := range cs {
		if cs[i].Name == "" {
			return nil, fmt.Errorf("category #%d: name must not be empty", i+1)
		}
		if len(cs[i].Extensions) == 0 {
			return nil, fmt.Errorf("category %q: extensions must not be empty", cs[i].Name)
		}
		for j, ext := range cs[i].Extensions {
			cs[i].Extensions[j] = normalizeExt(ext)
		}
	}
	return cs, nil
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// ByType groups files into named categories by extension.
type ByType struct {
	Categories Categories

	// Detector, when set, resolves extensionless files by sniffing content.
	// Files that carry an extension are never sniffed.
	Detector *ContentDetector
}

func (s *ByType) Name() string { return "type" }

func (s *ByType) Classify(entry scan.FileEntry) (string, error) {
	ext := entry.Ext
	if ext == "" && s.Detector != nil {
		detected, err := s.Detector.Extension(entry.Path)
		if err != nil {
			return "", fmt.Errorf("detect content type of %s: %w", entry.Name, err)
		}
		ext = detected
	}

	if folder, ok := s.categories().FolderFor(ext); ok {
		return folder, nil
	}
	return FallbackFolder, nil
}

func (s *ByType) categories() Categories {
	if len(s.Categories) == 0 {
		return DefaultCategories()
	}
	return s.Categories
}
