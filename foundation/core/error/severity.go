// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels used to pick the log level when an
//              error is reported.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-18 v0.1.1: Severity mapping follows the reduced code set

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates rejected user input; the caller can retry with other input
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a more specific code
	SeverityMedium

	// SeverityHigh indicates a configuration or environment problem
	SeverityHigh

	// SeverityCritical indicates a broken invariant inside strutil itself
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeInvalidInput, CodeNotFound, CodeValidationFailed,
		CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow
	default:
		return SeverityMedium
	}
}

// ExitCode maps an error to a process exit status for command line tools.
// Rejected input exits with 2, configuration or internal failures with 3.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch GetSeverity(err) {
	case SeverityLow:
		return 2
	case SeverityHigh, SeverityCritical:
		return 3
	default:
		return 1
	}
}
