// File: search_test.go
// Title: Unit Tests for Prefix, Suffix and Substring Queries
// Description: Table tests for the literal and case-insensitive matchers.
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
)

func TestBeginsEndsWith(t *testing.T) {
	tests := []struct {
		name        string
		s           string
		pattern     string
		begins      bool
		beginsFold  bool
		ends        bool
		endsFold    bool
	}{
		{"empty pattern", "abc", "", true, true, true, true},
		{"both empty", "", "", true, true, true, true},
		{"empty subject", "", "abc", false, false, false, false},
		{"exact", "abc", "abc", true, true, true, true},
		{"prefix", "abcdef", "abc", true, true, false, false},
		{"suffix", "abcdef", "def", false, false, true, true},
		{"case differs", "Hello World", "hello", false, true, false, false},
		{"suffix case", "report.TXT", ".txt", false, false, false, true},
		{"longer pattern", "ab", "abc", false, false, false, false},
		{"non-ascii not folded", "ÄBC", "äbc", false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BeginsWith(tt.s, tt.pattern); got != tt.begins {
				t.Errorf("BeginsWith(%q, %q) = %v", tt.s, tt.pattern, got)
			}
			if got := BeginsWithIgnoreCase(tt.s, tt.pattern); got != tt.beginsFold {
				t.Errorf("BeginsWithIgnoreCase(%q, %q) = %v", tt.s, tt.pattern, got)
			}
			if got := EndsWith(tt.s, tt.pattern); got != tt.ends {
				t.Errorf("EndsWith(%q, %q) = %v", tt.s, tt.pattern, got)
			}
			if got := EndsWithIgnoreCase(tt.s, tt.pattern); got != tt.endsFold {
				t.Errorf("EndsWithIgnoreCase(%q, %q) = %v", tt.s, tt.pattern, got)
			}
		})
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		sub      string
		literal  bool
		folded   bool
	}{
		{"empty sub", "abc", "", true, true},
		{"empty both", "", "", true, true},
		{"middle", "hello world", "lo wo", true, true},
		{"case differs", "Hello World", "WORLD", false, true},
		{"missing", "hello", "xyz", false, false},
		{"longer sub", "hi", "hello", false, false},
		{"at end", "abcXYZ", "xyz", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(tt.s, tt.sub); got != tt.literal {
				t.Errorf("Contains(%q, %q) = %v", tt.s, tt.sub, got)
			}
			if got := ContainsIgnoreCase(tt.s, tt.sub); got != tt.folded {
				t.Errorf("ContainsIgnoreCase(%q, %q) = %v", tt.s, tt.sub, got)
			}
		})
	}
}

func TestEqualFold(t *testing.T) {
	tests := []struct {
		a, b     string
		expected bool
	}{
		{"", "", true},
		{"Component", "component", true},
		{"URI", "uri", true},
		{"abc", "abd", false},
		{"abc", "ab", false},
		{"Straße", "STRASSE", false},
	}

	for _, tt := range tests {
		if got := EqualFold(tt.a, tt.b); got != tt.expected {
			t.Errorf("EqualFold(%q, %q) = %v; want %v", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestIgnoreCaseDoesNotAllocate(t *testing.T) {
	s := "The Quick Brown Fox Jumps Over The Lazy Dog"
	allocs := testing.AllocsPerRun(100, func() {
		ContainsIgnoreCase(s, "LAZY")
		BeginsWithIgnoreCase(s, "the")
		EndsWithIgnoreCase(s, "DOG")
	})
	if allocs != 0 {
		t.Errorf("expected no allocations, got %v", allocs)
	}
}
