// Package errors provides the standard constructors for module errors in
// strutil. Library packages build their failures here instead of calling
// fmt.Errorf so every error carries a module, an operation and a code.
//
// Package: errors
// Title: Standard Error Handling API for strutil
// Description: Module identifiers, error codes and an ErrorBuilder layered on
//              top of the core error type. The helpers keep messages, codes
//              and severities consistent between stringx, urlx, parsex,
//              config and the command line tool.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-18 v0.2.0: Modules and codes reduced to the text utilities
//
// # Error Code Patterns
//
// Codes follow {MODULE}_{CATEGORY}, for example URLX_INVALID_ESCAPE or
// PARSEX_CANNOT_PARSE. Generic codes (INVALID_INPUT, INVALID_FORMAT,
// OUT_OF_RANGE) are used when no module-specific code applies.
//
// # Usage
//
//	err := errors.NewErrorBuilder(errors.ModuleURLX).
//		Operation("decode").
//		Message("invalid percent escape").
//		Code(errors.CodeURLXInvalidEscape).
//		Cause(ErrInvalidEscape).
//		Detail("offset", 3).
//		Build()
//
//	if errors.IsModuleOperation(err, errors.ModuleURLX, "decode") {
//		// ...
//	}
package errors
