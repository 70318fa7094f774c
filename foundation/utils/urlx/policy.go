// File: policy.go
// Title: Encoding Policies
// Description: Defines which bytes each policy leaves unescaped.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package urlx

import (
	mdwerrors "github.com/msto63/strutil/foundation/core/errors"
	"github.com/msto63/strutil/foundation/utils/stringx"
)

// Policy selects the set of bytes that Encode leaves unescaped.
type Policy int

const (
	// PolicyComponent keeps RFC 3986 unreserved bytes: letters, digits and -_.~
	PolicyComponent Policy = iota

	// PolicyURI keeps unreserved bytes and the reserved set :/?#[]@!$&'()*+,;=
	PolicyURI

	// PolicyAll escapes every byte
	PolicyAll

	// PolicyWord keeps letters, digits and '_'
	PolicyWord
)

var policyNames = [...]string{
	PolicyComponent: "component",
	PolicyURI:       "uri",
	PolicyAll:       "all",
	PolicyWord:      "word",
}

// String returns the name accepted by ParsePolicy
func (p Policy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return "unknown"
	}
	return policyNames[p]
}

// Next returns the policy following p, wrapping around after the last one
func (p Policy) Next() Policy {
	return Policy((int(p) + 1) % len(policyNames))
}

// Policies lists every policy in declaration order
func Policies() []Policy {
	return []Policy{PolicyComponent, PolicyURI, PolicyAll, PolicyWord}
}

// ParsePolicy maps a policy name to its Policy. Names are matched ignoring
// ASCII case and surrounding blanks; "url" is accepted for PolicyWord.
func ParsePolicy(name string) (Policy, error) {
	key := stringx.ToLower(stringx.Trim(name))
	for p, n := range policyNames {
		if key == n {
			return Policy(p), nil
		}
	}
	if key == "url" {
		return PolicyWord, nil
	}
	return PolicyComponent, mdwerrors.URLXInvalidPolicy(name)
}

var (
	componentSet = buildSet("-_.~")
	uriSet       = buildSet("-_.~:/?#[]@!$&'()*+,;=")
	wordSet      = buildSet("_")
)

// buildSet returns a lookup table holding ASCII letters, digits and extra.
func buildSet(extra string) *[256]bool {
	var set [256]bool
	for c := 0; c < 256; c++ {
		set[c] = stringx.IsAlpha(byte(c)) || stringx.IsDigit(byte(c))
	}
	for i := 0; i < len(extra); i++ {
		set[extra[i]] = true
	}
	return &set
}

// Allows reports whether Encode leaves c unescaped under p
func (p Policy) Allows(c byte) bool {
	switch p {
	case PolicyComponent:
		return componentSet[c]
	case PolicyURI:
		return uriSet[c]
	case PolicyWord:
		return wordSet[c]
	default:
		return false
	}
}
