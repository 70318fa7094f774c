// File: classify.go
// Title: Byte Classification
// Description: ASCII predicates over a single byte and the case mapping the
//              rest of the package is built on.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package stringx

// ToLowerByte maps 'A'-'Z' to 'a'-'z' and returns every other byte unchanged.
func ToLowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// ToUpperByte maps 'a'-'z' to 'A'-'Z' and returns every other byte unchanged.
func ToUpperByte(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// IsAlpha reports whether c is an ASCII letter.
func IsAlpha(c byte) bool {
	return isLowerByte(c) || isUpperByte(c)
}

// IsDigit reports whether c is '0'-'9'.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsNonZeroDigit reports whether c is '1'-'9'.
func IsNonZeroDigit(c byte) bool {
	return c >= '1' && c <= '9'
}

// IsCR reports whether c is a carriage return.
func IsCR(c byte) bool {
	return c == '\r'
}

// IsLF reports whether c is a line feed.
func IsLF(c byte) bool {
	return c == '\n'
}

// IsLineBreak reports whether c is a carriage return or a line feed.
func IsLineBreak(c byte) bool {
	return c == '\r' || c == '\n'
}

// IsSpace reports whether c is a space or a horizontal tab. Line breaks are
// not spaces.
func IsSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// IsWordChar reports whether c is a letter, a digit or '_'.
func IsWordChar(c byte) bool {
	return IsAlpha(c) || IsDigit(c) || c == '_'
}

// IsControl reports whether c is an ASCII control character (0-31 or 127).
func IsControl(c byte) bool {
	return c < 0x20 || c == 0x7F
}

// IsNumber reports whether s is non-empty and consists of decimal digits only.
// Signs, spaces and leading zeros are not special: "00123" is a number,
// "+1" and " 1" are not.
func IsNumber(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsDigit(s[i]) {
			return false
		}
	}
	return true
}

func isLowerByte(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isUpperByte(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
