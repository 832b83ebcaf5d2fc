package domain

import (
	"strings"
)

// NormalizeName prepares a user-supplied display name for storage:
//   - trims leading/trailing whitespace
//   - collapses runs of whitespace (spaces, tabs, newlines) into one space
//
// Case is preserved.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name))
	prevSpace := false
	for _, r := range name {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
