// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides small, stateless string helpers with
//              ASCII semantics: classification, case conversion, trimming,
//              padding, splitting, searching, replacing and path cleanup.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-18 v0.3.0: ASCII classification layer, split/search/replace/path helpers

// Package stringx provides stateless string helpers for strutil.
//
// Package: stringx
// Title: Byte-Oriented String Operations
// Description: Every function in this package is pure and total: it never
//              fails, never panics on any input and is safe for concurrent
//              use. Case conversion and classification follow ASCII rules;
//              bytes at or above 0x80 pass through untouched, so UTF-8 text
//              is preserved byte for byte.
//
// Overview
//
// The package is organized into functional groups:
//
//   - Classification: byte predicates and ASCII case mapping (classify.go)
//   - Case Conversion: ToLower/ToUpper and naming conventions (case.go)
//   - Trimming and Padding: space/tab trimming, rune-aware padding (stringx.go)
//   - Splitting and Joining: literal delimiters, line splitting (split.go)
//   - Searching: prefix, suffix and substring tests with or without case (search.go)
//   - Replacing: literal, non-overlapping replacement (replace.go)
//   - Paths: separator normalization without filesystem access (path.go)
//
// Whitespace
//
// Trim and its variants remove only space (0x20) and horizontal tab (0x09).
// Newlines, carriage returns and Unicode spaces are content. This matches the
// way configuration values and command arguments are cleaned up by the CLI.
//
// Usage Examples
//
//	stringx.Trim(" \tabc\t ")                   // "abc"
//	stringx.PadLeft("abc", 5, '0')              // "00abc"
//	stringx.Split("a,,b", ",")                  // ["a" "" "b"]
//	stringx.SplitLines("a\r\nb\nc")             // ["a" "b" "c"]
//	stringx.BeginsWithIgnoreCase("Hello", "he") // true
//	stringx.Replace("a-b-c", "-", "+")          // "a+b+c"
//	stringx.ToUnixPath(`.\path\to\file.txt`)    // "./path/to/file.txt"
//	stringx.ToSnakeCase("HTTPServerError")      // "http_server_error"
//
// Only ToTitleCase is Unicode-aware; it is built on golang.org/x/text/cases.
package stringx
