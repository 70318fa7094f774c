// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and the
//              JSON representation used by the logger.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-18 v0.2.0: Adapted to the reduced code set, merged code and severity tests

package error

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("bad escape at offset %d", 3)
	if err.Error() != "bad escape at offset 3" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap structured error",
			err:     New("original error").WithCode(CodeInvalidFormat),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if result != nil {
					t.Errorf("Wrap() = %v, want nil", result)
				}
				return
			}

			if result.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", result.Error(), tt.wantMsg)
			}

			if !errors.Is(result, tt.err) {
				t.Error("wrapped error should match its cause with errors.Is")
			}
		})
	}
}

func TestWrapInheritsCodeAndDetails(t *testing.T) {
	inner := New("inner").
		WithCode(CodeInvalidFormat).
		WithDetail("offset", 4).
		WithOperation("urlx.Decode")

	outer := Wrap(inner, "outer")

	if outer.Code() != CodeInvalidFormat {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeInvalidFormat)
	}
	if outer.Operation() != "urlx.Decode" {
		t.Errorf("Operation() = %q", outer.Operation())
	}
	if outer.Details()["offset"] != 4 {
		t.Errorf("Details()[offset] = %v, want 4", outer.Details()["offset"])
	}
	if outer.RootCause() != inner {
		t.Error("RootCause() should return the innermost error")
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	var err error = errors.New("root")
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, "layer")
	}

	mdwErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if mdwErr.Details()["truncated"] != true {
		t.Error("expected deep chain to be truncated")
	}
	if !strings.Contains(mdwErr.Error(), "root") {
		t.Errorf("truncated message should keep the root cause, got %q", mdwErr.Error())
	}
}

func TestWithCodeDerivesSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidFormat, SeverityLow},
		{CodeInvalidInput, SeverityLow},
		{CodeConfigError, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityHigh).WithCode(CodeInvalidInput)
	if explicit.Severity() != SeverityHigh {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestHasCode(t *testing.T) {
	inner := New("inner").WithCode(CodeInvalidFormat)
	outer := Wrap(inner, "outer").WithCode(CodeInvalidInput)

	if !HasCode(outer, CodeInvalidInput) {
		t.Error("HasCode should match the outer code")
	}
	if !HasCode(outer, CodeInvalidFormat) {
		t.Error("HasCode should match a code further down the chain")
	}
	if HasCode(errors.New("plain"), CodeInvalidInput) {
		t.Error("HasCode should be false for plain errors")
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode should default to CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity should default to SeverityMedium")
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code     Code
		category string
	}{
		{CodeInvalidFormat, "validation"},
		{CodeValidationFailed, "validation"},
		{CodeInvalidConfig, "configuration"},
		{CodeInternal, "generic"},
	}

	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.category {
			t.Errorf("%s.Category() = %q, want %q", tt.code, got, tt.category)
		}
	}

	if !CodeNotFound.IsValid() || Code("BOGUS").IsValid() {
		t.Error("IsValid mismatch")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain error", errors.New("x"), 1},
		{"rejected input", New("x").WithCode(CodeInvalidFormat), 2},
		{"config", New("x").WithCode(CodeInvalidConfig), 3},
		{"internal", New("x").WithCode(CodeInternal), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSeverityString(t *testing.T) {
	tests := map[Severity]string{
		SeverityLow:      "low",
		SeverityMedium:   "medium",
		SeverityHigh:     "high",
		SeverityCritical: "critical",
		Severity(42):     "unknown",
	}
	for sev, want := range tests {
		if sev.String() != want {
			t.Errorf("Severity(%d).String() = %q, want %q", int(sev), sev.String(), want)
		}
	}
	if SeverityMedium.ShouldAlert() || !SeverityHigh.ShouldAlert() {
		t.Error("ShouldAlert threshold should be SeverityHigh")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("cause"), "outer").
		WithCode(CodeInvalidFormat).
		WithOperation("urlx.Decode").
		WithDetail("offset", 2)

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("MarshalJSON() error = %v", marshalErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("invalid JSON: %v", jsonErr)
	}

	if decoded["code"] != "INVALID_FORMAT" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["operation"] != "urlx.Decode" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if decoded["cause"] != "cause" {
		t.Errorf("cause = %v", decoded["cause"])
	}
	if decoded["severity"] != "low" {
		t.Errorf("severity = %v", decoded["severity"])
	}
}

func TestString(t *testing.T) {
	err := New("boom").WithCode(CodeInvalidInput).WithDetail("b", 2).WithDetail("a", 1)
	s := err.String()

	for _, want := range []string{"Error: boom", "Code: INVALID_INPUT", "Details: {a=1, b=2}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}
