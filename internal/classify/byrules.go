package classify

import (
	"organize/internal/rules"
	"organize/internal/scan"
)

// ByRules applies a user-supplied rule document.
type ByRules struct {
	Set *rules.RuleSet
}

func (s *ByRules) Name() string { return "rules" }

func (s *ByRules) Classify(entry scan.FileEntry) (string, error) {
	return s.Set.FolderFor(entry), nil
}
