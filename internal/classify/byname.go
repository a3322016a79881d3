package classify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"organize/internal/scan"
)

// Pattern routes files whose name contains Substring into Folder.
type Pattern struct {
	Folder    string
	Substring string
}

// ByName routes files by case-insensitive filename substrings; the first
// matching pattern wins.
type ByName struct {
	Patterns []Pattern
}

func (s *ByName) Name() string { return "name" }

func (s *ByName) Classify(entry scan.FileEntry) (string, error) {
	name := strings.ToLower(entry.Name)
	for _, p := range s.Patterns {
		if strings.Contains(name, strings.ToLower(p.Substring)) {
			return p.Folder, nil
		}
	}
	return FallbackFolder, nil
}

// ParsePatterns decodes an inline JSON object of {"folder": "substring"}
// pairs. encoding/json maps lose declaration order, so the tokens are read
// directly to keep the precedence the caller wrote down.
func ParsePatterns(data []byte) ([]Pattern, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse name patterns: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New(`name patterns must be a JSON object of {"folder": "substring"} pairs`)
	}

	var patterns []Pattern
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse name patterns: %w", err)
		}
		folder := tok.(string) // keys inside an object are always strings

		var substring string
		if err := dec.Decode(&substring); err != nil {
			return nil, fmt.Errorf("pattern %q: value must be a JSON string: %w", folder, err)
		}
		patterns = append(patterns, Pattern{Folder: folder, Substring: substring})
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return nil, fmt.Errorf("parse name patterns: %w", err)
	}

	if len(patterns) == 0 {
		return nil, errors.New("name patterns must define at least one folder")
	}
	return patterns, nil
}
