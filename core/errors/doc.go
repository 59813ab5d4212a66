// Package errors provides THE STANDARD error handling interface for all tsmath
// packages. This is the primary error handling API that all packages should use.
//
// Package: errors
// Title: Standard Error Handling API for tsmath
// Description: This package provides common error patterns, standardized error
//              codes, and utilities for creating consistent errors across all
//              tsmath packages. It integrates with the core error package to
//              provide module-specific error handling while keeping violated
//              numerical preconditions programmatically distinguishable.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation for cross-module error standardization
//
// # Standardized Error Codes
//
// Module-specific error codes for consistent error categorization:
//   - Common codes: INVALID_INPUT, INVALID_FORMAT, OUT_OF_RANGE, etc.
//   - mathx codes: MATHX_DIVISION_BY_ZERO, MATHX_PRECISION_LOSS, etc.
//   - timeseries codes: TIMESERIES_INVALID_UNIT, TIMESERIES_INDEX_OUT_OF_RANGE, etc.
//   - config codes: CONFIG_PARSE_ERROR, CONFIG_INVALID_FORMAT, etc.
//
// # Error Creation Utilities
//
// Standardized functions for creating module-specific errors:
//   - StandardError: Basic module error with automatic code assignment
//   - ModuleError: Wraps errors with module context and details
//   - InvalidInput, InvalidFormat, OutOfRange, OperationFailed
//   - MathxDivisionByZero: The single failure mode of scalar division
//   - TimeseriesInvalidUnit, TimeseriesIndexOutOfRange, ConfigParseError
//
// # Error Analysis Functions
//
// Utilities for analyzing and working with standardized errors:
//   - IsModuleError, IsDivisionByZero, IsModuleOperation
//   - GetErrorModule, GetErrorOperation, ExtractDetails
//
// # Usage Examples
//
// Reporting a zero divisor from an arithmetic operation:
//
//	if value == 0.0 {
//	    return Complex{}, errors.MathxDivisionByZero("divide_float")
//	}
//
// Checking for the division-by-zero precondition at the call site:
//
//	if _, err := a.Divide(b); errors.IsDivisionByZero(err) {
//	    // bottom was the complex zero value
//	}
package errors
