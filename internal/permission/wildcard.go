package permission

import "strings"

// MatchesPattern reports whether a tool id matches a single rule pattern.
// Matching is case-sensitive. Three forms exist:
//
//   - "*" matches every tool
//   - "prefix.*" matches "prefix" itself and any tool under "prefix."
//   - anything else matches only on exact equality
//
// So "file.*" matches "file", "file.read" and "file.read.fast", but not
// "files" or "myfile.read".
func MatchesPattern(pattern, tool string) bool {
	if pattern == "*" {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, ".*"); ok {
		return tool == prefix || strings.HasPrefix(tool, prefix+".")
	}
	return pattern == tool
}

// matchesAny reports whether any pattern in the list matches the tool.
func matchesAny(patterns []string, tool string) bool {
	for _, p := range patterns {
		if MatchesPattern(p, tool) {
			return true
		}
	}
	return false
}
