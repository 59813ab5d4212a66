// Package error provides comprehensive error handling capabilities for the tsmath library.
//
// Package: error
// Title: tsmath Error Handling Framework
// Description: This package implements a structured error handling system with
//              contextual information, error codes, and stack traces. It provides
//              the foundation for consistent error handling across the tsmath
//              packages, most importantly for numerical precondition violations
//              such as division by zero.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation with contextual errors and codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes for consistent classification
// - Stack trace capture for debugging
// - Error severity levels and categorization
//
// Usage:
//   import "github.com/msto63/tsmath/core/error"
//
//   // Create a new error with context
//   err := error.New("division by zero").
//     WithCode(error.CodeDivisionByZero).
//     WithDetail("operation", "divide").
//     WithSeverity(error.SeverityHigh)
//
//   // Wrap an existing error with context
//   wrapped := error.Wrap(err, "failed to normalize vector")
//
//   // Check error type and code
//   if error.HasCode(err, error.CodeDivisionByZero) {
//     // Handle the violated precondition specifically
//   }
package error
