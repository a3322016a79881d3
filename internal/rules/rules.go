// Package rules loads, validates, and evaluates custom organization rule
// documents.
//
// A rule document is JSON: an ordered list of rules, each pairing a
// destination folder with a set of conditions, plus a default folder for
// files no rule claims. Rules are evaluated top to bottom and the first
// match wins.
package rules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"organize/internal/scan"

	"github.com/spf13/afero"
)

// FallbackFolder receives files when the document names no default folder.
const FallbackFolder = "Others"

// RuleSet is a validated rule document.
type RuleSet struct {
	Description   string `json:"description,omitempty"`
	DefaultFolder string `json:"default_folder,omitempty"`
	Rules         []Rule `json:"rules"`
}

// Rule routes matching files into Folder.
type Rule struct {
	Name       string     `json:"name,omitempty"`
	Folder     string     `json:"folder"`
	Conditions Conditions `json:"conditions"`
}

// Conditions is a conjunction of per-file checks. Absent conditions hold
// vacuously, so an empty set matches every file.
type Conditions struct {
	// Extensions matches when the file extension is one of these.
	Extensions []string `json:"extensions,omitempty"`
	// NameContains matches when the filename contains this substring,
	// case-insensitively.
	NameContains string `json:"name_contains,omitempty"`
	// SizeRange matches when the file size falls inside the range.
	SizeRange *SizeRange `json:"size_range,omitempty"`
}

// SizeRange is an inclusive [min, max] byte range. A null max leaves the
// range unbounded above.
type SizeRange struct {
	Min int64
	Max *int64
}

// UnmarshalJSON decodes the two-element [min, max] array form.
func (r *SizeRange) UnmarshalJSON(data []byte) error {
	var bounds []*int64
	if err := json.Unmarshal(data, &bounds); err != nil {
		return fmt.Errorf("size_range must be a [min, max] array: %w", err)
	}
	if len(bounds) != 2 {
		return fmt.Errorf("size_range must have exactly two elements, got %d", len(bounds))
	}
	if bounds[0] == nil {
		return fmt.Errorf("size_range min must be a number")
	}
	r.Min = *bounds[0]
	r.Max = bounds[1]
	return nil
}

// MarshalJSON encodes the range back to its [min, max] array form.
func (r SizeRange) MarshalJSON() ([]byte, error) {
	return json.Marshal([]*int64{&r.Min, r.Max})
}

// Contains reports whether size falls inside the inclusive range.
func (r *SizeRange) Contains(size int64) bool {
	if size < r.Min {
		return false
	}
	return r.Max == nil || size <= *r.Max
}

// Match reports whether every present condition holds for the entry.
func (c *Conditions) Match(e scan.FileEntry) bool {
	if len(c.Extensions) > 0 && !containsExt(c.Extensions, e.Ext) {
		return false
	}
	if c.NameContains != "" &&
		!strings.Contains(strings.ToLower(e.Name), strings.ToLower(c.NameContains)) {
		return false
	}
	if c.SizeRange != nil && !c.SizeRange.Contains(e.Size) {
		return false
	}
	return true
}

func containsExt(exts []string, ext string) bool {
	for _, candidate := range exts {
		if candidate == ext {
			return true
		}
	}
	return false
}

// FolderFor returns the folder of the first rule whose conditions all hold,
// or the default folder when none match. It always names a folder.
func (rs *RuleSet) FolderFor(e scan.FileEntry) string {
	for i := range rs.Rules {
		if rs.Rules[i].Conditions.Match(e) {
			return rs.Rules[i].Folder
		}
	}
	if rs.DefaultFolder == "" {
		return FallbackFolder
	}
	return rs.DefaultFolder
}

// Load reads a rule document from path and validates it.
func Load(fsys afero.Fs, path string) (*RuleSet, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	rs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("rules file %s: %w", path, err)
	}
	return rs, nil
}

// Parse decodes and validates a rule document.
func Parse(data []byte) (*RuleSet, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var rs RuleSet
	if err := dec.Decode(&rs); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	if err := rs.validate(); err != nil {
		return nil, err
	}
	rs.normalize()
	return &rs, nil
}

func (rs *RuleSet) validate() error {
	if len(rs.Rules) == 0 {
		return fmt.Errorf("document defines no rules")
	}
	for i := range rs.Rules {
		r := &rs.Rules[i]
		label := r.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}
		if r.Folder == "" {
			return fmt.Errorf("rule %s: folder must not be empty", label)
		}
		if sr := r.Conditions.SizeRange; sr != nil {
			if sr.Min < 0 {
				return fmt.Errorf("rule %s: size_range min must not be negative", label)
			}
			if sr.Max != nil && *sr.Max < sr.Min {
				return fmt.Errorf("rule %s: size_range max %d is below min %d", label, *sr.Max, sr.Min)
			}
		}
		for _, ext := range r.Conditions.Extensions {
			if ext == "" {
				return fmt.Errorf("rule %s: extensions must not contain empty strings", label)
			}
		}
	}
	return nil
}

// normalize brings loaded documents to canonical form: extensions compare
// lowercased with a leading dot, and the default folder is never empty.
func (rs *RuleSet) normalize() {
	if rs.DefaultFolder == "" {
		rs.DefaultFolder = FallbackFolder
	}
	for i := range rs.Rules {
		exts := rs.Rules[i].Conditions.Extensions
		for j, ext := range exts {
			ext = strings.ToLower(ext)
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			exts[j] = ext
		}
	}
}
