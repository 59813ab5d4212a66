// File: standards.go
// Title: Error Standards for tsmath
// Description: Provides standardized error handling patterns and codes for all
//              tsmath packages to ensure consistency. Maps module operations to
//              stable error codes so callers and tests can distinguish violated
//              arithmetic preconditions from calendar validation failures.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation for error standardization

package errors

import (
	"fmt"
	"strings"

	tserror "github.com/msto63/tsmath/core/error"
)

// Module identifiers for error categorization
const (
	ModuleMathx      = "mathx"
	ModuleTimeseries = "timeseries"
	ModuleConfig     = "config"
)

// Standardized error codes for all modules
const (
	// Common error codes
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeNotFound        = "NOT_FOUND"
	CodeOperationFailed = "OPERATION_FAILED"

	// Module-specific error codes - mathx
	CodeMathxDivisionByZero  = "MATHX_DIVISION_BY_ZERO"
	CodeMathxPrecisionLoss   = "MATHX_PRECISION_LOSS"
	CodeMathxOverflow        = "MATHX_OVERFLOW"
	CodeMathxOperationFailed = "MATHX_OPERATION_FAILED"

	// Module-specific error codes - timeseries
	CodeTimeseriesInvalidUnit     = "TIMESERIES_INVALID_UNIT"
	CodeTimeseriesInvalidTimeZone = "TIMESERIES_INVALID_TIMEZONE"
	CodeTimeseriesIndexOutOfRange = "TIMESERIES_INDEX_OUT_OF_RANGE"
	CodeTimeseriesOperationFailed = "TIMESERIES_OPERATION_FAILED"

	// Module-specific error codes - config
	CodeConfigParseError      = "CONFIG_PARSE_ERROR"
	CodeConfigInvalidFormat   = "CONFIG_INVALID_FORMAT"
	CodeConfigOperationFailed = "CONFIG_OPERATION_FAILED"
)

// StandardError creates a standardized error with module context
func StandardError(module, operation, message string) *tserror.Error {
	return tserror.New(message).
		WithCode(tserror.Code(getModuleErrorCode(module, operation))).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
		}).
		WithSeverity(tserror.SeverityMedium)
}

// ModuleError creates an error specific to a module operation
func ModuleError(module, operation string, cause error, details map[string]interface{}) *tserror.Error {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["module"] = module
	details["operation"] = operation

	code := tserror.Code(getModuleErrorCode(module, operation))

	if cause != nil {
		return tserror.Wrap(cause, fmt.Sprintf("%s.%s failed", module, operation)).
			WithCode(code).
			WithDetails(details)
	}

	return tserror.New(fmt.Sprintf("%s.%s failed", module, operation)).
		WithCode(code).
		WithDetails(details)
}

// getModuleErrorCode returns the appropriate error code for a module operation
func getModuleErrorCode(module, operation string) string {
	switch module {
	case ModuleMathx:
		return getMathxErrorCode(operation)
	case ModuleTimeseries:
		return getTimeseriesErrorCode(operation)
	case ModuleConfig:
		return getConfigErrorCode(operation)
	default:
		return CodeOperationFailed
	}
}

func getMathxErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "divide") || strings.Contains(operation, "div"):
		return CodeMathxDivisionByZero
	case strings.Contains(operation, "precision"):
		return CodeMathxPrecisionLoss
	case strings.Contains(operation, "overflow"):
		return CodeMathxOverflow
	default:
		return CodeInvalidInput
	}
}

func getTimeseriesErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "month") || strings.Contains(operation, "quarter") ||
		strings.Contains(operation, "day") || strings.Contains(operation, "year"):
		return CodeTimeseriesInvalidUnit
	case strings.Contains(operation, "zone") || strings.Contains(operation, "location"):
		return CodeTimeseriesInvalidTimeZone
	case strings.Contains(operation, "index") || strings.Contains(operation, "at"):
		return CodeTimeseriesIndexOutOfRange
	default:
		return CodeTimeseriesOperationFailed
	}
}

func getConfigErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "parse"):
		return CodeConfigParseError
	case strings.Contains(operation, "format"):
		return CodeConfigInvalidFormat
	default:
		return CodeConfigOperationFailed
	}
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	if structured, ok := err.(*tserror.Error); ok {
		if details := structured.Details(); details != nil {
			if mod, exists := details["module"]; exists {
				return mod == module
			}
		}
	}
	return false
}

// GetErrorModule extracts the module name from a standardized error
func GetErrorModule(err error) string {
	if structured, ok := err.(*tserror.Error); ok {
		if details := structured.Details(); details != nil {
			if mod, exists := details["module"]; exists {
				if modStr, ok := mod.(string); ok {
					return modStr
				}
			}
		}
	}
	return ""
}

// GetErrorOperation extracts the operation name from a standardized error
func GetErrorOperation(err error) string {
	if structured, ok := err.(*tserror.Error); ok {
		if details := structured.Details(); details != nil {
			if op, exists := details["operation"]; exists {
				if opStr, ok := op.(string); ok {
					return opStr
				}
			}
		}
	}
	return ""
}
