// File: example_test.go
// Title: Error Module Examples
// Description: Example usage patterns for the structured error type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive examples
// - 2026-10-18 v0.2.0: Examples rewritten around decode and parse failures

package error

import (
	"errors"
	"fmt"
	"strconv"
)

// ExampleNew demonstrates creating a new error with context
func ExampleNew() {
	err := New("invalid percent escape").
		WithCode(CodeInvalidFormat).
		WithDetail("offset", 7)

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())
	fmt.Println("Severity:", err.Severity())

	// Output:
	// Error: invalid percent escape
	// Code: INVALID_FORMAT
	// Severity: low
}

// ExampleWrap demonstrates wrapping a standard library error
func ExampleWrap() {
	_, parseErr := strconv.Atoi("12a")

	err := Wrap(parseErr, "cannot parse port").
		WithCode(CodeInvalidConfig).
		WithOperation("config.GetInt")

	fmt.Println("Code:", err.Code())
	fmt.Println("Is ErrSyntax:", errors.Is(err, strconv.ErrSyntax))

	// Output:
	// Code: INVALID_CONFIG
	// Is ErrSyntax: true
}
