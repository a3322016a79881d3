package rules

import (
	_ "embed"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
)

//go:embed sample_rules.json
var sampleDoc string

// Sample returns the example rule document shipped with the tool.
func Sample() string {
	return sampleDoc
}

// WriteSample writes the example rule document to path. It refuses to
// clobber an existing file so hand-edited rules are never lost.
func WriteSample(fsys afero.Fs, path string) error {
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%s already exists, not overwriting", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(fsys, path, []byte(sampleDoc), 0o644); err != nil {
		return fmt.Errorf("write sample rules %s: %w", path, err)
	}

	slog.Info("created sample rules", "path", path)
	return nil
}
