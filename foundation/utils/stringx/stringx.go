// File: stringx.go
// Title: Core String Utility Functions
// Description: Emptiness tests, space/tab trimming, rune-aware padding,
//              truncation and reversal.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-18 v0.2.0: Space/tab trimming and Repeat, dropped interning and validation helpers

package stringx

import (
	"strings"
	"unicode/utf8"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if s is empty or holds only spaces, tabs and line breaks.
func IsBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		if !IsSpace(s[i]) && !IsLineBreak(s[i]) {
			return false
		}
	}
	return true
}

// FirstNonEmpty returns the first non-empty string from the provided strings.
// This is useful for providing default values in a chain.
func FirstNonEmpty(values ...string) string {
	for _, s := range values {
		if !IsEmpty(s) {
			return s
		}
	}
	return ""
}

// TrimLeft removes leading spaces and tabs.
func TrimLeft(s string) string {
	i := 0
	for i < len(s) && IsSpace(s[i]) {
		i++
	}
	return s[i:]
}

// TrimRight removes trailing spaces and tabs.
func TrimRight(s string) string {
	j := len(s)
	for j > 0 && IsSpace(s[j-1]) {
		j--
	}
	return s[:j]
}

// Trim removes leading and trailing spaces and tabs. Line breaks are kept.
func Trim(s string) string {
	return TrimRight(TrimLeft(s))
}

// Repeat returns n copies of c. n <= 0 yields the empty string.
func Repeat(c rune, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(c), n)
}

// isASCIIString checks if a string contains only ASCII characters
func isASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// PadLeft pads s on the left with pad until it is width runes long.
// If s is already at least width runes long it is returned unchanged.
func PadLeft(s string, width int, pad rune) string {
	// Fast path for ASCII-only strings and pad characters
	if isASCIIString(s) && pad < utf8.RuneSelf {
		if len(s) >= width {
			return s
		}

		result := make([]byte, width)
		padCount := width - len(s)
		for i := 0; i < padCount; i++ {
			result[i] = byte(pad)
		}
		copy(result[padCount:], s)
		return string(result)
	}

	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s
	}
	return Repeat(pad, width-runeCount) + s
}

// PadRight pads s on the right with pad until it is width runes long.
// If s is already at least width runes long it is returned unchanged.
func PadRight(s string, width int, pad rune) string {
	if isASCIIString(s) && pad < utf8.RuneSelf {
		if len(s) >= width {
			return s
		}

		result := make([]byte, width)
		copy(result, s)
		for i := len(s); i < width; i++ {
			result[i] = byte(pad)
		}
		return string(result)
	}

	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s
	}
	return s + Repeat(pad, width-runeCount)
}

// Center centers s within width runes. When the padding is odd the extra
// rune goes to the right.
func Center(s string, width int, pad rune) string {
	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s
	}

	total := width - runeCount
	left := total / 2
	return Repeat(pad, left) + s + Repeat(pad, total-left)
}

// Truncate truncates a string to maxLen runes, adding an ellipsis if truncated.
// This function is Unicode-aware and will not break multi-byte characters.
// If the string is not longer than maxLen, it returns the original string.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}

	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// Reverse reverses a string while preserving Unicode characters.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
