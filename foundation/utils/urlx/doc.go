// File: doc.go
// Title: Package Documentation for urlx
// Description: Package urlx implements percent-encoding and decoding with a
//              selectable set of bytes that stay literal.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package urlx percent-encodes and decodes byte strings.
//
// Encoding works on bytes, not runes: every byte outside the policy's
// allowed set becomes "%XY" with two upper-case hex digits, so multi-byte
// UTF-8 characters turn into one escape per byte. Four policies exist:
//
//	PolicyComponent  letters, digits and -_.~ stay literal (encodeURIComponent)
//	PolicyURI        PolicyComponent plus the reserved :/?#[]@!$&'()*+,;=
//	PolicyAll        every byte is escaped
//	PolicyWord       letters, digits and _ stay literal
//
// Decoding is the same for all policies: each "%XY" becomes byte 0xXY and
// every other byte is copied. '+' has no special meaning. A '%' that is not
// followed by two hex digits is an error wrapping ErrInvalidEscape:
//
//	s, err := urlx.Decode("100%2")
//	if errors.Is(err, urlx.ErrInvalidEscape) {
//	    // malformed input
//	}
//
// For every policy p and every byte string s,
// Decode(Encode(s, p)) returns s unchanged.
package urlx
