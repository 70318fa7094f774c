// File: case.go
// Title: String Case Conversion Utilities
// Description: ASCII case mapping for whole strings and conversions between
//              the naming conventions commonly used in code and config keys.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2026-10-18 v0.2.0: Shared ASCII word splitter, ToTitleCase on x/text/cases

package stringx

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToLower maps every ASCII upper-case letter in s to lower case. All other
// bytes, including every byte of a multi-byte UTF-8 sequence, are copied
// unchanged. When nothing changes s itself is returned.
func ToLower(s string) string {
	return mapBytes(s, isUpperByte, ToLowerByte)
}

// ToUpper maps every ASCII lower-case letter in s to upper case.
func ToUpper(s string) string {
	return mapBytes(s, isLowerByte, ToUpperByte)
}

func mapBytes(s string, match func(byte) bool, conv func(byte) byte) string {
	first := -1
	for i := 0; i < len(s); i++ {
		if match(s[i]) {
			first = i
			break
		}
	}
	if first < 0 {
		return s
	}

	buf := []byte(s)
	for i := first; i < len(buf); i++ {
		buf[i] = conv(buf[i])
	}
	return string(buf)
}

// splitWords breaks s into words for the naming-convention conversions.
// Any ASCII byte that is neither a letter nor a digit separates words, and a
// new word starts at a lower-to-upper transition ("myVar") or at the last
// capital of an acronym followed by a lower-case letter ("HTTPServer").
func splitWords(s string) []string {
	var words []string
	start := -1

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x80 && !IsAlpha(c) && !IsDigit(c) {
			if start >= 0 {
				words = append(words, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
			continue
		}

		prev := s[i-1]
		boundary := false
		if isUpperByte(c) {
			switch {
			case isLowerByte(prev) || IsDigit(prev):
				boundary = true
			case isUpperByte(prev) && i+1 < len(s) && isLowerByte(s[i+1]):
				boundary = true
			}
		}
		if boundary {
			words = append(words, s[start:i])
			start = i
		}
	}

	if start >= 0 {
		words = append(words, s[start:])
	}
	return words
}

func capitalize(word string) string {
	lower := ToLower(word)
	if lower == "" || !isLowerByte(lower[0]) {
		return lower
	}
	return string(ToUpperByte(lower[0])) + lower[1:]
}

func joinWords(s, sep string, first, rest func(string) string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s) + len(words)*len(sep))
	for i, w := range words {
		if i == 0 {
			b.WriteString(first(w))
			continue
		}
		b.WriteString(sep)
		b.WriteString(rest(w))
	}
	return b.String()
}

// ToSnakeCase converts s to snake_case.
// Example: "MyVariableName" -> "my_variable_name"
func ToSnakeCase(s string) string {
	return joinWords(s, "_", ToLower, ToLower)
}

// ToKebabCase converts s to kebab-case.
// Example: "MyVariableName" -> "my-variable-name"
func ToKebabCase(s string) string {
	return joinWords(s, "-", ToLower, ToLower)
}

// ToCamelCase converts s to camelCase.
// Example: "my_variable_name" -> "myVariableName"
func ToCamelCase(s string) string {
	return joinWords(s, "", ToLower, capitalize)
}

// ToPascalCase converts s to PascalCase.
// Example: "my_variable_name" -> "MyVariableName"
func ToPascalCase(s string) string {
	return joinWords(s, "", capitalize, capitalize)
}

// ToTitleCase upper-cases the first letter of every word and lower-cases the
// rest using Unicode rules, so "élan VITAL" becomes "Élan Vital".
func ToTitleCase(s string) string {
	if IsEmpty(s) {
		return s
	}
	// A Caser keeps state between calls and must not be shared.
	return cases.Title(language.Und).String(s)
}
