// File: error_test.go
// Title: Unit Tests for Core Error Implementation
// Description: Tests error creation, wrapping, metadata builders, unwrapping,
//              and the diagnostic string rendering.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial test implementation

package error

import (
	goerrors "errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("something failed")

	if err.Error() != "something failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "something failed")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() is zero")
	}
	if err.Unwrap() != nil {
		t.Error("Unwrap() of unwrapped error is non-nil")
	}
}

func TestWrap(t *testing.T) {
	inner := goerrors.New("io failure")
	err := Wrap(inner, "loading config")

	if got := err.Error(); got != "loading config: io failure" {
		t.Errorf("Error() = %q", got)
	}
	if !goerrors.Is(err, inner) {
		t.Error("errors.Is does not find the wrapped cause")
	}
	if err.Unwrap() != inner {
		t.Error("Unwrap() does not return the cause")
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "context"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
}

func TestWrapInheritsCodeAndSeverity(t *testing.T) {
	inner := New("divide by zero").
		WithCode(CodeDivisionByZero).
		WithSeverity(SeverityHigh)

	err := Wrap(inner, "computing quotient")

	if err.Code() != CodeDivisionByZero {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeDivisionByZero)
	}
	if err.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityHigh)
	}
}

func TestWithCodeAutoSeverity(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want Severity
	}{
		{"division by zero is high", CodeDivisionByZero, SeverityHigh},
		{"calendar unit is medium", CodeInvalidCalendarUnit, SeverityMedium},
		{"invalid format is low", CodeInvalidFormat, SeverityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New("test").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}
}

func TestWithCodeKeepsExplicitSeverity(t *testing.T) {
	err := New("test").
		WithSeverity(SeverityCritical).
		WithCode(CodeInvalidFormat)

	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}
}

func TestWithDetails(t *testing.T) {
	err := New("test").
		WithDetail("index", 5).
		WithDetails(map[string]interface{}{"length": 3, "operation": "at"})

	details := err.Details()
	if details["index"] != 5 {
		t.Errorf("details[index] = %v, want 5", details["index"])
	}
	if details["length"] != 3 {
		t.Errorf("details[length] = %v, want 3", details["length"])
	}

	// Details returns a copy, mutations must not leak back
	details["index"] = 99
	if err.Details()["index"] != 5 {
		t.Error("Details() exposed internal map")
	}
}

func TestWithOperation(t *testing.T) {
	err := New("test").WithOperation("divide_float")
	if err.Operation() != "divide_float" {
		t.Errorf("Operation() = %q, want %q", err.Operation(), "divide_float")
	}
}

func TestRootCause(t *testing.T) {
	root := goerrors.New("root")
	middle := Wrap(root, "middle")
	outer := Wrap(middle, "outer")

	if got := outer.RootCause(); got != root {
		t.Errorf("RootCause() = %v, want %v", got, root)
	}

	plain := New("standalone")
	if got := plain.RootCause(); got != plain {
		t.Errorf("RootCause() of standalone error = %v, want itself", got)
	}
}

func TestErrorString(t *testing.T) {
	err := New("boom").
		WithCode(CodeDivisionByZero).
		WithOperation("divide").
		WithDetail("value", 0.0)

	got := err.String()
	for _, want := range []string{"DIVISION_BY_ZERO", "high", "boom", "operation: divide", "value: 0"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
}

func TestStackTraceCaptured(t *testing.T) {
	err := New("test")

	frames := err.StackTrace()
	if len(frames) == 0 {
		t.Fatal("StackTrace() is empty")
	}
	if len(frames) > MaxStackFrames {
		t.Errorf("StackTrace() has %d frames, max %d", len(frames), MaxStackFrames)
	}
	if !strings.Contains(frames[0].Function, "TestStackTraceCaptured") {
		t.Errorf("first frame = %q, want the test function", frames[0].Function)
	}
}

func TestHasCodeAndGetters(t *testing.T) {
	err := New("test").WithCode(CodeIndexOutOfRange)

	if !HasCode(err, CodeIndexOutOfRange) {
		t.Error("HasCode() = false for matching code")
	}
	if HasCode(err, CodeDivisionByZero) {
		t.Error("HasCode() = true for non-matching code")
	}
	if GetCode(err) != CodeIndexOutOfRange {
		t.Errorf("GetCode() = %v", GetCode(err))
	}

	foreign := goerrors.New("plain")
	if HasCode(foreign, CodeUnknown) {
		t.Error("HasCode() = true for foreign error")
	}
	if GetCode(foreign) != CodeUnknown {
		t.Errorf("GetCode(foreign) = %v, want %v", GetCode(foreign), CodeUnknown)
	}
	if GetSeverity(foreign) != SeverityMedium {
		t.Errorf("GetSeverity(foreign) = %v, want %v", GetSeverity(foreign), SeverityMedium)
	}
}
