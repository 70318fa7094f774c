// File: standards.go
// Title: Error Standards for strutil
// Description: Module identifiers, standardized error codes and the mapping
//              from module operations to codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-01-25 v0.1.1: Fixed import and type reference issues
// - 2026-10-18 v0.2.0: Codes for stringx, urlx, parsex, config and cli

package errors

import (
	"strings"
)

// Module identifiers for error categorization
const (
	ModuleStringx = "stringx"
	ModuleURLX    = "urlx"
	ModuleParsex  = "parsex"
	ModuleConfig  = "config"
	ModuleCLI     = "cli"
)

// Standardized error codes for all modules
const (
	// Common error codes
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeNotFound        = "NOT_FOUND"
	CodeOperationFailed = "OPERATION_FAILED"

	// stringx
	CodeStringxInvalidInput = "STRINGX_INVALID_INPUT"

	// urlx
	CodeURLXInvalidEscape = "URLX_INVALID_ESCAPE"
	CodeURLXInvalidPolicy = "URLX_INVALID_POLICY"

	// parsex
	CodeParsexCannotParse = "PARSEX_CANNOT_PARSE"
	CodeParsexOutOfRange  = "PARSEX_OUT_OF_RANGE"

	// config
	CodeConfigInvalidValue = "CONFIG_INVALID_VALUE"
	CodeConfigLoadFailed   = "CONFIG_LOAD_FAILED"
)

// getModuleErrorCode returns the code used when a builder has no explicit code
func getModuleErrorCode(module, operation string) string {
	switch module {
	case ModuleStringx:
		return CodeStringxInvalidInput
	case ModuleURLX:
		if strings.Contains(operation, "policy") {
			return CodeURLXInvalidPolicy
		}
		return CodeURLXInvalidEscape
	case ModuleParsex:
		return CodeParsexCannotParse
	case ModuleConfig:
		if strings.Contains(operation, "load") || strings.Contains(operation, "read") {
			return CodeConfigLoadFailed
		}
		return CodeConfigInvalidValue
	default:
		return CodeOperationFailed
	}
}

func getFormatErrorCode(module string) string {
	switch module {
	case ModuleURLX:
		return CodeURLXInvalidEscape
	case ModuleParsex:
		return CodeParsexCannotParse
	case ModuleConfig:
		return CodeConfigInvalidValue
	default:
		return CodeInvalidFormat
	}
}
