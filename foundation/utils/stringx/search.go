// File: search.go
// Title: Prefix, Suffix and Substring Queries
// Description: Literal and ASCII case-insensitive matching. The ignore-case
//              variants compare byte by byte and never build folded copies.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation, ContainsIgnoreCase moved here from stringx.go

package stringx

import (
	"strings"
)

// BeginsWith reports whether s starts with prefix. An empty prefix always matches.
func BeginsWith(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

// EndsWith reports whether s ends with suffix. An empty suffix always matches.
func EndsWith(s, suffix string) bool {
	return strings.HasSuffix(s, suffix)
}

// Contains reports whether sub occurs in s. An empty sub always matches.
func Contains(s, sub string) bool {
	return strings.Contains(s, sub)
}

// equalFoldAt compares s[off:off+len(p)] with p through ToLowerByte.
// The caller guarantees the range is inside s.
func equalFoldAt(s string, off int, p string) bool {
	for i := 0; i < len(p); i++ {
		if ToLowerByte(s[off+i]) != ToLowerByte(p[i]) {
			return false
		}
	}
	return true
}

// BeginsWithIgnoreCase is BeginsWith with ASCII letters compared case-insensitively.
func BeginsWithIgnoreCase(s, prefix string) bool {
	return len(prefix) <= len(s) && equalFoldAt(s, 0, prefix)
}

// EndsWithIgnoreCase is EndsWith with ASCII letters compared case-insensitively.
func EndsWithIgnoreCase(s, suffix string) bool {
	return len(suffix) <= len(s) && equalFoldAt(s, len(s)-len(suffix), suffix)
}

// ContainsIgnoreCase reports whether sub occurs in s, comparing ASCII
// letters case-insensitively.
func ContainsIgnoreCase(s, sub string) bool {
	for off := 0; off+len(sub) <= len(s); off++ {
		if equalFoldAt(s, off, sub) {
			return true
		}
	}
	return false
}

// EqualFold reports whether a and b are equal under ASCII case folding.
// Unlike strings.EqualFold it does not apply Unicode folding.
func EqualFold(a, b string) bool {
	return len(a) == len(b) && equalFoldAt(a, 0, b)
}
