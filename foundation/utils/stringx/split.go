// File: split.go
// Title: Splitting and Joining
// Description: Literal-delimiter splitting, line splitting and joining.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation, SplitLines moved here from stringx.go

package stringx

import (
	"strings"
)

// Split cuts s at every non-overlapping occurrence of delim, scanning left
// to right. Empty fields are kept, so Split("a,,b", ",") has three elements
// and Split("", ",") is [""]. An empty delim returns [s].
//
// For any non-empty delim, Join(Split(s, delim), delim) == s.
func Split(s, delim string) []string {
	if delim == "" {
		return []string{s}
	}
	return strings.Split(s, delim)
}

// SplitLines splits s into lines at "\r\n", "\n" and a lone "\r".
// A trailing line break produces a trailing empty line: SplitLines("\n")
// is ["", ""].
func SplitLines(s string) []string {
	lines := make([]string, 0, strings.Count(s, "\n")+1)
	start := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}

	return append(lines, s[start:])
}

// Join concatenates parts with sep between consecutive elements. No
// elements gives "", one element gives that element.
func Join(parts []string, sep string) string {
	return strings.Join(parts, sep)
}
