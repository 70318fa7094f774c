// File: urlx_test.go
// Title: Percent Encoding Tests
// Description: Tests for byte and hex helpers, every policy, strict decoding
//              and the encode/decode round trip.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package urlx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/strutil/foundation/core/error"
	mdwerrors "github.com/msto63/strutil/foundation/core/errors"
)

func TestEncodeByte(t *testing.T) {
	tests := []struct {
		in   byte
		want string
	}{
		{' ', "20"},
		{'\n', "0A"},
		{0x7F, "7F"},
		{'%', "25"},
		{'A', "41"},
		{0x00, "00"},
		{0xFF, "FF"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EncodeByte(tt.in), "EncodeByte(%#x)", tt.in)
	}
}

func TestDecodeHex(t *testing.T) {
	valid := map[string]byte{"20": ' ', "4a": 0x4A, "4A": 0x4A, "ff": 0xFF, "00": 0}
	for in, want := range valid {
		got, err := DecodeHex(in)
		require.NoError(t, err, "DecodeHex(%q)", in)
		assert.Equal(t, want, got, "DecodeHex(%q)", in)
	}

	for _, in := range []string{"", "A", "123", "G1", "1G", " 1"} {
		_, err := DecodeHex(in)
		assert.ErrorIs(t, err, ErrInvalidEscape, "DecodeHex(%q)", in)
	}
}

func TestEncodeComponent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc-_.~XYZ019", "abc-_.~XYZ019"},
		{"a b", "a%20b"},
		{"100%", "100%25"},
		{"a+b", "a%2Bb"},
		{"こんにちは world&=あいう", "%E3%81%93%E3%82%93%E3%81%AB%E3%81%A1%E3%81%AF%20world%26%3D%E3%81%82%E3%81%84%E3%81%86"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EncodeURIComponent(tt.in), "EncodeURIComponent(%q)", tt.in)
	}
}

func TestEncodeURI(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://example.com/a b?x=1&y=あ", "https://example.com/a%20b?x=1&y=%E3%81%82"},
		{":/?#[]@!$&'()*+,;=", ":/?#[]@!$&'()*+,;="},
		{"50%", "50%25"},
		{"<tag>", "%3Ctag%3E"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EncodeURI(tt.in), "EncodeURI(%q)", tt.in)
	}
}

func TestEncodePercentAll(t *testing.T) {
	assert.Equal(t,
		"%61%62%63%20%31%32%33%20%E6%97%A5%E6%9C%AC%E8%AA%9E%20%25%0A",
		EncodePercentAll("abc 123 日本語 %\n"))
	assert.Equal(t, "", EncodePercentAll(""))
}

func TestEncodeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"100%", "100%25"},
		{"snake_case_42", "snake_case_42"},
		{"a-b.c~", "a%2Db%2Ec%7E"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EncodeURL(tt.in), "EncodeURL(%q)", tt.in)
	}
}

func TestEncodeReturnsInputWhenUnchanged(t *testing.T) {
	s := "nothing-to_escape.here~"
	allocs := testing.AllocsPerRun(100, func() {
		_ = EncodeURIComponent(s)
	})
	assert.Zero(t, allocs)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"100%25", "100%"},
		{"a%20b%0A", "a b\n"},
		{"%e3%81%82", "あ"},
		{"a+b", "a+b"},
		{"%00", "\x00"},
		{"%41%42", "AB"},
	}

	decoders := map[string]func(string) (string, error){
		"Decode":             Decode,
		"DecodeURIComponent": DecodeURIComponent,
		"DecodeURI":          DecodeURI,
		"DecodePercentAll":   DecodePercentAll,
		"DecodeURL":          DecodeURL,
	}

	for name, decode := range decoders {
		for _, tt := range tests {
			got, err := decode(tt.in)
			require.NoError(t, err, "%s(%q)", name, tt.in)
			assert.Equal(t, tt.want, got, "%s(%q)", name, tt.in)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		in     string
		offset int
	}{
		{"%", 0},
		{"%2", 0},
		{"100%2", 3},
		{"abc%G1", 3},
		{"%1G", 0},
		{"ok%20%", 5},
		{"%%41", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Decode(tt.in)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, errors.Is(err, ErrInvalidEscape))
			assert.Equal(t, tt.offset, mdwerrors.ExtractDetails(err)["offset"])
			assert.True(t, mdwerrors.IsModuleOperation(err, mdwerrors.ModuleURLX, "decode"))
			assert.Equal(t, 2, mdwerror.ExitCode(err))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}

	samples := []string{
		"",
		string(all),
		"こんにちは world&=あいう",
		"abc 123 日本語 %\n",
		"%%%",
		"a+b=c&d",
		"\xff\xfe invalid utf-8",
	}

	for _, p := range Policies() {
		for _, s := range samples {
			encoded := Encode(s, p)
			decoded, err := Decode(encoded)
			require.NoError(t, err, "policy %s", p)
			assert.Equal(t, s, decoded, "policy %s", p)
		}
	}
}

func TestPolicy(t *testing.T) {
	tests := []struct {
		name string
		want Policy
	}{
		{"component", PolicyComponent},
		{"URI", PolicyURI},
		{" all ", PolicyAll},
		{"word", PolicyWord},
		{"url", PolicyWord},
	}

	for _, tt := range tests {
		got, err := ParsePolicy(tt.name)
		require.NoError(t, err, "ParsePolicy(%q)", tt.name)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParsePolicy("fancy")
	require.Error(t, err)
	assert.True(t, mdwerrors.IsModuleOperation(err, mdwerrors.ModuleURLX, "parse_policy"))

	for _, p := range Policies() {
		parsed, err := ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	assert.Equal(t, PolicyURI, PolicyComponent.Next())
	assert.Equal(t, PolicyComponent, PolicyWord.Next())
	assert.Equal(t, "unknown", Policy(9).String())
}

func TestPolicyAllows(t *testing.T) {
	for c := 0; c < 256; c++ {
		b := byte(c)
		assert.False(t, PolicyAll.Allows(b))
		if PolicyWord.Allows(b) {
			assert.True(t, PolicyComponent.Allows(b), "word set must be inside component set: %q", b)
		}
		if PolicyComponent.Allows(b) {
			assert.True(t, PolicyURI.Allows(b), "component set must be inside uri set: %q", b)
		}
		if b >= 0x80 {
			assert.False(t, PolicyURI.Allows(b))
		}
	}
}
