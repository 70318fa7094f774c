// Package error provides the structured error type used across strutil.
//
// Package: error
// Title: Structured Error Type for strutil
// Description: Implements an error value carrying a code, a severity, a detail
//              map and a captured stack trace. Library packages return these
//              errors so that callers can branch on codes while logs get the
//              full context through MarshalJSON.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-18 v0.2.0: Reduced code set to the failures raised by strutil
//
// Usage:
//
//	import mdwerror "github.com/msto63/strutil/foundation/core/error"
//
//	err := mdwerror.New("invalid percent escape").
//		WithCode(mdwerror.CodeInvalidFormat).
//		WithDetail("offset", 4)
//
//	wrapped := mdwerror.Wrap(err, "decode failed").
//		WithOperation("urlx.Decode")
//
//	if mdwerror.HasCode(wrapped, mdwerror.CodeInvalidFormat) {
//		// reject the input
//	}
//
// Errors created by Wrap keep the cause reachable through Unwrap, so the
// standard errors.Is and errors.As work on any chain built here.
package error
