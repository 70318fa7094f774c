// File: split_test.go
// Title: Unit Tests for Splitting and Joining
// Description: Table tests for Split, SplitLines and Join plus the
//              Join(Split(s, d), d) round-trip property.
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

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		delim    string
		expected []string
	}{
		{"simple", "a,b,c", ",", []string{"a", "b", "c"}},
		{"empty input", "", ",", []string{""}},
		{"delimiter not found", "abc", ";", []string{"abc"}},
		{"empty fields", "a,,b", ",", []string{"a", "", "b"}},
		{"leading and trailing", ",a,", ",", []string{"", "a", ""}},
		{"only delimiter", ",", ",", []string{"", ""}},
		{"multi-byte delimiter", "a::b::c", "::", []string{"a", "b", "c"}},
		{"non-overlapping", "aaa", "aa", []string{"", "a"}},
		{"empty delimiter", "abc", "", []string{"abc"}},
		{"unicode delimiter", "α→β→γ", "→", []string{"α", "β", "γ"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.input, tt.delim)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Split(%q, %q) mismatch (-want +got):\n%s", tt.input, tt.delim, diff)
			}
		})
	}
}

func TestSplitJoinRoundTrip(t *testing.T) {
	inputs := []string{"", ",", "a", "a,b", ",,", "x,,y,", "日本,語"}
	delims := []string{",", ",,", "x", "語"}

	for _, s := range inputs {
		for _, d := range delims {
			if got := Join(Split(s, d), d); got != s {
				t.Errorf("Join(Split(%q, %q)) = %q", s, d, got)
			}
		}
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", []string{""}},
		{"no break", "abc", []string{"abc"}},
		{"crlf", "a\r\nb\r\nc", []string{"a", "b", "c"}},
		{"lf", "a\nb", []string{"a", "b"}},
		{"lone cr", "a\rb", []string{"a", "b"}},
		{"mixed", "a\r\nb\nc\rd", []string{"a", "b", "c", "d"}},
		{"single newline", "\n", []string{"", ""}},
		{"trailing newline", "a\n", []string{"a", ""}},
		{"blank lines", "a\n\nb", []string{"a", "", "b"}},
		{"cr cr lf", "a\r\r\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, SplitLines(tt.input)); diff != "" {
				t.Errorf("SplitLines(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		sep      string
		expected string
	}{
		{"nil", nil, ",", ""},
		{"empty", []string{}, ",", ""},
		{"single", []string{"a"}, ",", "a"},
		{"several", []string{"a", "b", "c"}, ", ", "a, b, c"},
		{"empty parts", []string{"", ""}, "-", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Join(tt.parts, tt.sep); got != tt.expected {
				t.Errorf("Join(%q, %q) = %q; want %q", tt.parts, tt.sep, got, tt.expected)
			}
		})
	}
}
