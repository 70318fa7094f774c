// File: classify_test.go
// Title: Unit Tests for Byte Classification
// Description: Exhaustive checks of the byte predicates over all 256 values
//              and table tests for IsNumber.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package stringx

import (
	"testing"
	"unicode"
)

func TestByteCaseMapping(t *testing.T) {
	for i := 0; i < 256; i++ {
		c := byte(i)

		wantLower, wantUpper := c, c
		if c < 0x80 {
			wantLower = byte(unicode.ToLower(rune(c)))
			wantUpper = byte(unicode.ToUpper(rune(c)))
		}

		if got := ToLowerByte(c); got != wantLower {
			t.Errorf("ToLowerByte(%#x) = %#x; want %#x", c, got, wantLower)
		}
		if got := ToUpperByte(c); got != wantUpper {
			t.Errorf("ToUpperByte(%#x) = %#x; want %#x", c, got, wantUpper)
		}
	}
}

func TestBytePredicates(t *testing.T) {
	for i := 0; i < 256; i++ {
		c := byte(i)
		ascii := c < 0x80
		r := rune(c)

		checks := []struct {
			name string
			got  bool
			want bool
		}{
			{"IsAlpha", IsAlpha(c), ascii && unicode.IsLetter(r)},
			{"IsDigit", IsDigit(c), c >= '0' && c <= '9'},
			{"IsNonZeroDigit", IsNonZeroDigit(c), c >= '1' && c <= '9'},
			{"IsCR", IsCR(c), c == 13},
			{"IsLF", IsLF(c), c == 10},
			{"IsLineBreak", IsLineBreak(c), c == 10 || c == 13},
			{"IsSpace", IsSpace(c), c == ' ' || c == '\t'},
			{"IsWordChar", IsWordChar(c), ascii && (unicode.IsLetter(r) || unicode.IsDigit(r) || c == '_')},
			{"IsControl", IsControl(c), c < 32 || c == 127},
		}

		for _, check := range checks {
			if check.got != check.want {
				t.Errorf("%s(%#x) = %v; want %v", check.name, c, check.got, check.want)
			}
		}
	}
}

func TestIsNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", false},
		{"single digit", "7", true},
		{"leading zeros", "00123", true},
		{"leading space", " 123", false},
		{"sign", "+1", false},
		{"negative", "-1", false},
		{"decimal point", "1.5", false},
		{"trailing letter", "123a", false},
		{"unicode digit", "١٢٣", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNumber(tt.input); got != tt.expected {
				t.Errorf("IsNumber(%q) = %v; want %v", tt.input, got, tt.expected)
			}
		})
	}
}
