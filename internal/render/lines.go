package render

import (
	"strings"

	"github.com/pqrs-org/verstamp/internal/descriptor"
)

// SplitLines splits content after each "\n", keeping the line endings.
// A final line without a newline is kept as is. Empty content has no lines.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// SubstituteLine applies each replacement in order as a literal replace-all.
func SubstituteLine(line string, reps []descriptor.Replacement) string {
	for _, r := range reps {
		line = strings.ReplaceAll(line, r.Token, r.Value)
	}
	return line
}

// mergeLines renders template lines over the existing output lines.
// existing is padded with empty lines up to the template's length; lines
// past the template's end are kept. It reports whether any line at a
// template index differs.
func mergeLines(templateLines, existing []string, reps []descriptor.Replacement) ([]string, bool) {
	dirty := false

	merged := make([]string, max(len(templateLines), len(existing)))
	copy(merged, existing)

	for i, tl := range templateLines {
		line := SubstituteLine(tl, reps)
		if merged[i] != line {
			dirty = true
			merged[i] = line
		}
	}
	return merged, dirty
}
