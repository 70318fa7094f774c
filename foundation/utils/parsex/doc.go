// File: doc.go
// Title: Package Documentation for parsex
// Description: Package parsex converts text into typed values with strict,
//              locale-independent rules.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package parsex converts strings to numbers, booleans and strings.
//
// The target type is a type parameter restricted to Parseable:
//
//	n, err := parsex.To[int]("42")
//	f, err := parsex.To[float64]("1e-3")
//	b, err := parsex.To[bool]("yes")
//
// Integers are base 10 and must consume the whole input: "123abc", " 1",
// "+1" and values outside the target range all fail, and unsigned targets
// reject a minus sign. Floats use the strconv grammar, which is independent
// of the process locale. Booleans accept 1/true/on/yes and 0/false/off/no
// (case-sensitive); the empty string is false. String targets return the
// input unchanged.
//
// Every failure wraps ErrCannotParse and returns the zero value, never a
// partially parsed one. Parse returns the same outcome as a Result for
// callers that prefer a single value.
package parsex
