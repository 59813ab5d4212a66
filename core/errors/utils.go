// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Provides common error handling utilities that are used across
//              all tsmath packages for consistent error patterns. Includes the
//              fluent ErrorBuilder and the convenience constructors the mathx
//              and timeseries packages report their failures through.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation of shared error utilities

package errors

import (
	"fmt"

	tserror "github.com/msto63/tsmath/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  tserror.Severity
	code      string
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: tserror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity tserror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code string) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *tserror.Error {
	// Auto-generate code if not set
	if eb.code == "" {
		eb.code = getModuleErrorCode(eb.module, eb.operation)
	}

	// Auto-generate message if not set
	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	// Add module and operation to details
	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *tserror.Error
	if eb.cause != nil {
		err = tserror.Wrap(eb.cause, eb.message)
	} else {
		err = tserror.New(eb.message)
	}

	return err.
		WithCode(tserror.Code(eb.code)).
		WithDetails(eb.details).
		WithSeverity(eb.severity)
}

// =============================================================================
// STANDARD ERROR CREATION FUNCTIONS FOR ALL tsmath MODULES
// =============================================================================
// These functions provide a consistent interface for creating errors across
// all tsmath packages. Use these instead of fmt.Errorf() or errors.New()

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *tserror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		Code(CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(tserror.SeverityMedium).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module string, input interface{}, expectedFormat string) *tserror.Error {
	return NewErrorBuilder(module).
		Message(fmt.Sprintf("invalid format in %s", module)).
		Code(CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Severity(tserror.SeverityMedium).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *tserror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s.%s operation failed", module, operation)).
		Cause(cause).
		Severity(tserror.SeverityHigh).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *tserror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("value out of range in %s.%s", module, operation)).
		Code(CodeOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(tserror.SeverityMedium).
		Build()
}

// MathX convenience functions

// MathxDivisionByZero reports an attempt to divide by an exact zero divisor.
// This is a violated precondition, not a silently propagated NaN or Infinity.
func MathxDivisionByZero(operation string) *tserror.Error {
	return NewErrorBuilder(ModuleMathx).
		Operation(operation).
		Message("division by zero").
		Code(CodeMathxDivisionByZero).
		Severity(tserror.SeverityHigh).
		Build()
}

// IsDivisionByZero checks whether an error reports a zero divisor
func IsDivisionByZero(err error) bool {
	if structured, ok := err.(*tserror.Error); ok {
		return structured.Code() == tserror.Code(CodeMathxDivisionByZero)
	}
	return false
}

// Timeseries convenience functions

// TimeseriesInvalidUnit reports a calendar unit outside its valid range,
// e.g. a month of 13 or a quarter of 0.
func TimeseriesInvalidUnit(operation, unit string, value, min, max int) *tserror.Error {
	return NewErrorBuilder(ModuleTimeseries).
		Operation(operation).
		Messagef("invalid %s in %s.%s", unit, ModuleTimeseries, operation).
		Code(CodeTimeseriesInvalidUnit).
		Detail("unit", unit).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(tserror.SeverityMedium).
		Build()
}

// TimeseriesIndexOutOfRange reports an observation index outside the series
func TimeseriesIndexOutOfRange(operation string, index, length int) *tserror.Error {
	return NewErrorBuilder(ModuleTimeseries).
		Operation(operation).
		Message("observation index out of range").
		Code(CodeTimeseriesIndexOutOfRange).
		Detail("index", index).
		Detail("length", length).
		Severity(tserror.SeverityMedium).
		Build()
}

// Config convenience functions

// ConfigParseError reports an unparseable configuration file
func ConfigParseError(path string, cause error) *tserror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("parse").
		Messagef("failed to parse configuration file %s", path).
		Cause(cause).
		Code(CodeConfigParseError).
		Detail("path", path).
		Severity(tserror.SeverityHigh).
		Build()
}

// Utility functions for error analysis

// ExtractDetails extracts all details from a tsmath error
func ExtractDetails(err error) map[string]interface{} {
	if structured, ok := err.(*tserror.Error); ok {
		return structured.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	details := ExtractDetails(err)
	if details != nil {
		if module, ok := details["module"].(string); ok {
			return module
		}
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	details := ExtractDetails(err)
	if details != nil {
		if operation, ok := details["operation"].(string); ok {
			return operation
		}
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}
