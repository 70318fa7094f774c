// File: convenience.go
// Title: Named Encoders and Decoders
// Description: Shorthands that fix the policy, named after the browser and
//              legacy functions they mirror.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package urlx

// EncodeURIComponent encodes s under PolicyComponent.
func EncodeURIComponent(s string) string { return Encode(s, PolicyComponent) }

// EncodeURI encodes s under PolicyURI.
func EncodeURI(s string) string { return Encode(s, PolicyURI) }

// EncodePercentAll escapes every byte of s.
func EncodePercentAll(s string) string { return Encode(s, PolicyAll) }

// EncodeURL encodes s under PolicyWord.
func EncodeURL(s string) string { return Encode(s, PolicyWord) }

// DecodeURIComponent decodes s. Decoding does not depend on the policy.
func DecodeURIComponent(s string) (string, error) { return decode(s, "decode_uri_component") }

// DecodeURI decodes s.
func DecodeURI(s string) (string, error) { return decode(s, "decode_uri") }

// DecodePercentAll decodes s.
func DecodePercentAll(s string) (string, error) { return decode(s, "decode_percent_all") }

// DecodeURL decodes s.
func DecodeURL(s string) (string, error) { return decode(s, "decode_url") }
