// File: replace.go
// Title: Literal Replacement
// Description: Non-overlapping, left-to-right replacement of a literal pattern.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package stringx

import (
	"strings"
)

// Replace returns s with every non-overlapping occurrence of pattern
// replaced by replacement. Matching resumes after each replaced occurrence,
// so Replace("aaa", "aa", "b") is "ba". An empty pattern returns s unchanged.
func Replace(s, pattern, replacement string) string {
	if pattern == "" {
		return s
	}
	return strings.ReplaceAll(s, pattern, replacement)
}
