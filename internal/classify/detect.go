package classify

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
)

// ContentDetector sniffs file content to recover an extension for files
// that have none.
type ContentDetector struct {
	Fs afero.Fs
}

// Extension returns the canonical extension for the detected MIME type,
// lowercased, or "" when the type has no conventional extension.
func (d *ContentDetector) Extension(path string) (string, error) {
	fs := d.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	f, err := fs.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	detected, err := mimetype.DetectReader(f)
	if err != nil {
		return "", err
	}
	return strings.ToLower(detected.Extension()), nil
}
