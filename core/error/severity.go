// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper prioritization
//              and logging decisions. In a numerical library most errors are caller
//              mistakes, but severity still separates cosmetic input problems from
//              violated arithmetic preconditions.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: invalid optional input, formatting issues
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: out-of-range calendar units, rejected configuration values
	SeverityMedium

	// SeverityHigh indicates a serious error that violates an arithmetic precondition
	// Examples: division by zero, invalid configuration files
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the library unusable
	// Examples: corrupted internal state (should never occur for immutable values)
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

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeDivisionByZero, CodeOverflow, CodeInternal:
		return SeverityHigh

	case CodeInvalidCalendarUnit, CodeInvalidTimeZone, CodeIndexOutOfRange,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeValueOutOfRange:
		return SeverityMedium

	case CodeInvalidInput, CodeInvalidFormat, CodeValidationFailed,
		CodeRequiredField, CodePrecisionLoss, CodeNotFound:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
