// File: urlx.go
// Title: Percent Encoding and Decoding
// Description: Byte-level percent-encoding under a Policy and strict
//              decoding that reports malformed escapes with their offset.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package urlx

import (
	"errors"

	mdwerrors "github.com/msto63/strutil/foundation/core/errors"
)

// ErrInvalidEscape is the cause of every decoding failure. Match it with errors.Is.
var ErrInvalidEscape = errors.New("invalid percent escape")

const upperHex = "0123456789ABCDEF"

// EncodeByte returns c as two upper-case hex digits, e.g. ' ' -> "20".
func EncodeByte(c byte) string {
	return string([]byte{upperHex[c>>4], upperHex[c&0x0F]})
}

func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// DecodeHex decodes exactly two hex digits of either case into a byte.
// Any other length or a non-hex digit is an error wrapping ErrInvalidEscape.
func DecodeHex(s string) (byte, error) {
	if len(s) != 2 {
		return 0, mdwerrors.URLXInvalidEscape("decode_hex", s, 0, ErrInvalidEscape)
	}
	hi, ok1 := unhex(s[0])
	lo, ok2 := unhex(s[1])
	if !ok1 || !ok2 {
		return 0, mdwerrors.URLXInvalidEscape("decode_hex", s, 0, ErrInvalidEscape)
	}
	return hi<<4 | lo, nil
}

// Encode escapes every byte of s that p does not allow as "%XY".
// When nothing needs escaping s itself is returned.
func Encode(s string, p Policy) string {
	escapes := 0
	for i := 0; i < len(s); i++ {
		if !p.Allows(s[i]) {
			escapes++
		}
	}
	if escapes == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+2*escapes)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if p.Allows(c) {
			buf = append(buf, c)
			continue
		}
		buf = append(buf, '%', upperHex[c>>4], upperHex[c&0x0F])
	}
	return string(buf)
}

// Decode replaces every "%XY" in s with byte 0xXY and copies all other
// bytes. It fails on a '%' followed by fewer than two bytes or by a non-hex
// digit; the error carries the offset of that '%' and no partial output is
// returned.
func Decode(s string) (string, error) {
	return decode(s, "decode")
}

func decode(s, operation string) (string, error) {
	first := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '%' {
			first = i
			break
		}
	}
	if first < 0 {
		return s, nil
	}

	buf := make([]byte, 0, len(s))
	buf = append(buf, s[:first]...)

	for i := first; i < len(s); i++ {
		c := s[i]
		if c != '%' {
			buf = append(buf, c)
			continue
		}
		if i+2 >= len(s) {
			return "", mdwerrors.URLXInvalidEscape(operation, s, i, ErrInvalidEscape)
		}
		hi, ok1 := unhex(s[i+1])
		lo, ok2 := unhex(s[i+2])
		if !ok1 || !ok2 {
			return "", mdwerrors.URLXInvalidEscape(operation, s, i, ErrInvalidEscape)
		}
		buf = append(buf, hi<<4|lo)
		i += 2
	}

	return string(buf), nil
}
