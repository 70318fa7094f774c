// File: validation.go
// Title: Configuration Validation Implementation
// Description: Validates configuration values against rules for presence,
//              parseable type, allowed values and length.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-18 v0.2.0: Type checks through parsex, OneOf and length rules,
//                      deterministic error order, Err conversion

package config

import (
	"fmt"
	"sort"
	"unicode/utf8"

	mdwerror "github.com/msto63/strutil/foundation/core/error"
	"github.com/msto63/strutil/foundation/utils/parsex"
	mdwstringx "github.com/msto63/strutil/foundation/utils/stringx"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool     // The key must be present
	Type     string   // A parsex kind the value must convert to ("int", "bool", ...)
	OneOf    []string // Allowed values, compared case-insensitively
	MinLen   int      // Minimum length in runes, 0 disables
	MaxLen   int      // Maximum length in runes, 0 disables
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err returns nil for a valid result, otherwise an INVALID_CONFIG error
// carrying every message in the "errors" detail
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return mdwerror.New(fmt.Sprintf("invalid configuration: %s", mdwstringx.Join(r.Errors, "; "))).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("errors", append([]string(nil), r.Errors...))
}

// Validate validates the configuration against the provided rules.
// Keys are checked in sorted order so the error list is stable.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if msg := c.validateField(key, rules[key]); msg != "" {
			result.Valid = false
			result.Errors = append(result.Errors, msg)
		}
	}

	return result
}

func (c *Config) validateField(key string, rule ValidationRule) string {
	value, ok := c.raw(key)
	if !ok {
		if rule.Required {
			return fmt.Sprintf("required field '%s' is missing", key)
		}
		return ""
	}

	text := stringify(value)

	if rule.Type != "" {
		if _, err := parsex.ToKind(rule.Type, text); err != nil {
			return fmt.Sprintf("field '%s' must be a %s, got %q", key, rule.Type, text)
		}
	}

	if len(rule.OneOf) > 0 && !oneOf(text, rule.OneOf) {
		return fmt.Sprintf("field '%s' must be one of %s, got %q", key, mdwstringx.Join(rule.OneOf, ", "), text)
	}

	n := utf8.RuneCountInString(text)
	if rule.MinLen > 0 && n < rule.MinLen {
		return fmt.Sprintf("field '%s' must be at least %d characters", key, rule.MinLen)
	}
	if rule.MaxLen > 0 && n > rule.MaxLen {
		return fmt.Sprintf("field '%s' must be at most %d characters", key, rule.MaxLen)
	}

	return ""
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if mdwstringx.EqualFold(value, a) {
			return true
		}
	}
	return false
}
