// File: error.go
// Title: Core Error Implementation
// Description: Implements the main Error type with contextual information and
//              metadata. Numerical precondition violations (such as division by
//              zero) are reported through this type so callers can inspect code,
//              severity, and the operation that triggered the failure while the
//              standard error interface stays fully compatible.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation with contextual errors

package error

import (
	"fmt"
	"runtime"
	"sort"
	"strings"
	"time"
)

// Error represents a structured error with context, codes, and metadata
type Error struct {
	// Core error information
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time

	// Context and metadata
	details   map[string]interface{}
	operation string

	// Stack trace information
	stackTrace []StackFrame
}

// StackFrame represents a single frame in the stack trace
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// MaxStackFrames limits the number of stack frames captured
const MaxStackFrames = 8

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:    message,
		code:       CodeUnknown,
		severity:   SeverityMedium,
		timestamp:  time.Now(),
		details:    make(map[string]interface{}),
		stackTrace: captureStackTrace(2), // Skip New and caller
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// Reuse code and severity from a wrapped structured error
	if inner, ok := err.(*Error); ok {
		return &Error{
			message:    message,
			cause:      err,
			code:       inner.code,
			severity:   inner.severity,
			timestamp:  time.Now(),
			details:    make(map[string]interface{}),
			stackTrace: captureStackTrace(2),
		}
	}

	return &Error{
		message:    message,
		cause:      err,
		code:       CodeUnknown,
		severity:   SeverityMedium,
		timestamp:  time.Now(),
		details:    make(map[string]interface{}),
		stackTrace: captureStackTrace(2),
	}
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium { // Only auto-set if not explicitly set
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

// WithSeverity sets the error severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails adds multiple key-value details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// WithOperation sets the operation that caused the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Timestamp returns when the error was created
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	copied := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		copied[k] = v
	}
	return copied
}

// Operation returns the operation that caused the error
func (e *Error) Operation() string {
	return e.operation
}

// StackTrace returns the captured stack frames
func (e *Error) StackTrace() []StackFrame {
	frames := make([]StackFrame, len(e.stackTrace))
	copy(frames, e.stackTrace)
	return frames
}

// RootCause returns the deepest error in the chain
func (e *Error) RootCause() error {
	var current error = e
	var last error = e

	for current != nil {
		last = current
		if structured, ok := current.(*Error); ok {
			current = structured.cause
		} else {
			break
		}
	}

	return last
}

// String returns a detailed multi-line representation for diagnostics
func (e *Error) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s/%s] %s", e.code, e.severity, e.Error()))

	if e.operation != "" {
		sb.WriteString(fmt.Sprintf("\n  operation: %s", e.operation))
	}

	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("\n  %s: %v", k, e.details[k]))
		}
	}

	return sb.String()
}

// captureStackTrace captures the current call stack, skipping the given number of frames
func captureStackTrace(skip int) []StackFrame {
	frames := make([]StackFrame, 0, MaxStackFrames)
	pcs := make([]uintptr, MaxStackFrames)

	n := runtime.Callers(skip+1, pcs)
	if n == 0 {
		return frames
	}

	callersFrames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := callersFrames.Next()

		// Skip runtime internals
		if !strings.HasPrefix(frame.Function, "runtime.") {
			frames = append(frames, StackFrame{
				Function: frame.Function,
				File:     frame.File,
				Line:     frame.Line,
			})
		}

		if !more || len(frames) >= MaxStackFrames {
			break
		}
	}

	return frames
}

// HasCode checks if the error has the given code
func HasCode(err error, code Code) bool {
	if structured, ok := err.(*Error); ok {
		return structured.code == code
	}
	return false
}

// GetCode extracts the error code, or CodeUnknown for foreign errors
func GetCode(err error) Code {
	if structured, ok := err.(*Error); ok {
		return structured.code
	}
	return CodeUnknown
}

// GetSeverity extracts the error severity, or SeverityMedium for foreign errors
func GetSeverity(err error) Severity {
	if structured, ok := err.(*Error); ok {
		return structured.severity
	}
	return SeverityMedium
}
