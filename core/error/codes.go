// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error classification
//              across the tsmath library. These codes enable structured error
//              handling and make numerical precondition violations distinguishable
//              from configuration and input problems.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the tsmath library
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Numerical preconditions
	CodeDivisionByZero Code = "DIVISION_BY_ZERO"
	CodePrecisionLoss  Code = "PRECISION_LOSS"
	CodeOverflow       Code = "OVERFLOW"

	// Calendar and series construction
	CodeInvalidCalendarUnit Code = "INVALID_CALENDAR_UNIT"
	CodeInvalidTimeZone     Code = "INVALID_TIMEZONE"
	CodeIndexOutOfRange     Code = "INDEX_OUT_OF_RANGE"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeDivisionByZero, CodePrecisionLoss, CodeOverflow,
		CodeInvalidCalendarUnit, CodeInvalidTimeZone, CodeIndexOutOfRange,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput:
		return "generic"
	case CodeDivisionByZero, CodePrecisionLoss, CodeOverflow:
		return "numeric"
	case CodeInvalidCalendarUnit, CodeInvalidTimeZone, CodeIndexOutOfRange:
		return "calendar"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	default:
		return "unknown"
	}
}
