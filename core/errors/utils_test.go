// File: utils_test.go
// Title: Unit Tests for Shared Error Handling Utilities
// Description: Tests the fluent error builder, the standardized constructors,
//              and the error analysis helpers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial test implementation

package errors

import (
	goerrors "errors"
	"testing"

	tserror "github.com/msto63/tsmath/core/error"
)

func TestErrorBuilderBuild(t *testing.T) {
	err := NewErrorBuilder(ModuleMathx).
		Operation("sqrt").
		Message("root of nothing").
		Detail("input", "0.0").
		Severity(tserror.SeverityLow).
		Build()

	if err.Error() != "root of nothing" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Severity() != tserror.SeverityLow {
		t.Errorf("Severity() = %v, want %v", err.Severity(), tserror.SeverityLow)
	}

	details := err.Details()
	if details["module"] != ModuleMathx {
		t.Errorf("details[module] = %v, want %v", details["module"], ModuleMathx)
	}
	if details["operation"] != "sqrt" {
		t.Errorf("details[operation] = %v, want sqrt", details["operation"])
	}
	if details["input"] != "0.0" {
		t.Errorf("details[input] = %v, want 0.0", details["input"])
	}
}

func TestErrorBuilderAutoCode(t *testing.T) {
	tests := []struct {
		name      string
		module    string
		operation string
		wantCode  string
	}{
		{"mathx divide maps to division by zero", ModuleMathx, "divide_float", CodeMathxDivisionByZero},
		{"mathx default maps to invalid input", ModuleMathx, "sqrt", CodeInvalidInput},
		{"timeseries month maps to invalid unit", ModuleTimeseries, "new_monthly_series", CodeTimeseriesInvalidUnit},
		{"timeseries zone maps to invalid timezone", ModuleTimeseries, "load_zone", CodeTimeseriesInvalidTimeZone},
		{"timeseries at maps to index out of range", ModuleTimeseries, "at", CodeTimeseriesIndexOutOfRange},
		{"config parse maps to parse error", ModuleConfig, "parse", CodeConfigParseError},
		{"unknown module maps to operation failed", "elsewhere", "anything", CodeOperationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewErrorBuilder(tt.module).Operation(tt.operation).Build()
			if got := err.Code(); got != tserror.Code(tt.wantCode) {
				t.Errorf("Code() = %v, want %v", got, tt.wantCode)
			}
		})
	}
}

func TestErrorBuilderAutoMessage(t *testing.T) {
	withOp := NewErrorBuilder(ModuleMathx).Operation("divide").Build()
	if withOp.Error() != "mathx.divide failed" {
		t.Errorf("Error() = %q, want %q", withOp.Error(), "mathx.divide failed")
	}

	withoutOp := NewErrorBuilder(ModuleMathx).Build()
	if withoutOp.Error() != "mathx operation failed" {
		t.Errorf("Error() = %q, want %q", withoutOp.Error(), "mathx operation failed")
	}
}

func TestErrorBuilderCause(t *testing.T) {
	cause := goerrors.New("root problem")
	err := NewErrorBuilder(ModuleConfig).
		Operation("parse").
		Message("parsing failed").
		Cause(cause).
		Build()

	if !goerrors.Is(err, cause) {
		t.Error("built error does not wrap the cause")
	}
}

func TestMathxDivisionByZero(t *testing.T) {
	err := MathxDivisionByZero("divide_float")

	if err.Error() != "division by zero" {
		t.Errorf("Error() = %q, want %q", err.Error(), "division by zero")
	}
	if err.Code() != tserror.Code(CodeMathxDivisionByZero) {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeMathxDivisionByZero)
	}
	if err.Severity() != tserror.SeverityHigh {
		t.Errorf("Severity() = %v, want %v", err.Severity(), tserror.SeverityHigh)
	}
	if !IsDivisionByZero(err) {
		t.Error("IsDivisionByZero() = false")
	}
	if IsDivisionByZero(goerrors.New("plain")) {
		t.Error("IsDivisionByZero(plain error) = true")
	}
}

func TestTimeseriesInvalidUnit(t *testing.T) {
	err := TimeseriesInvalidUnit("new_quarterly_series", "quarter", 7, 1, 4)

	if err.Code() != tserror.Code(CodeTimeseriesInvalidUnit) {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeTimeseriesInvalidUnit)
	}

	details := err.Details()
	if details["unit"] != "quarter" || details["value"] != 7 || details["min"] != 1 || details["max"] != 4 {
		t.Errorf("details = %v", details)
	}
}

func TestTimeseriesIndexOutOfRange(t *testing.T) {
	err := TimeseriesIndexOutOfRange("at", 12, 4)

	if err.Code() != tserror.Code(CodeTimeseriesIndexOutOfRange) {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeTimeseriesIndexOutOfRange)
	}
	details := err.Details()
	if details["index"] != 12 || details["length"] != 4 {
		t.Errorf("details = %v", details)
	}
}

func TestConfigParseError(t *testing.T) {
	cause := goerrors.New("unexpected token")
	err := ConfigParseError("/etc/tsmath/tsmath.toml", cause)

	if err.Code() != tserror.Code(CodeConfigParseError) {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeConfigParseError)
	}
	if !goerrors.Is(err, cause) {
		t.Error("cause not wrapped")
	}
	if err.Details()["path"] != "/etc/tsmath/tsmath.toml" {
		t.Errorf("details[path] = %v", err.Details()["path"])
	}
}

func TestOutOfRange(t *testing.T) {
	err := OutOfRange(ModuleTimeseries, "new_monthly_series", 13, 1, 12)

	if err.Code() != tserror.Code(CodeOutOfRange) {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeOutOfRange)
	}
	details := err.Details()
	if details["value"] != 13 || details["min"] != 1 || details["max"] != 12 {
		t.Errorf("details = %v", details)
	}
}

func TestExtractAndClassify(t *testing.T) {
	err := MathxDivisionByZero("divide")

	if got := ExtractModule(err); got != ModuleMathx {
		t.Errorf("ExtractModule() = %q, want %q", got, ModuleMathx)
	}
	if got := ExtractOperation(err); got != "divide" {
		t.Errorf("ExtractOperation() = %q, want divide", got)
	}
	if !IsModuleOperation(err, ModuleMathx, "divide") {
		t.Error("IsModuleOperation() = false for matching module/operation")
	}
	if IsModuleOperation(err, ModuleTimeseries, "divide") {
		t.Error("IsModuleOperation() = true for wrong module")
	}
	if !IsModuleError(err, ModuleMathx) {
		t.Error("IsModuleError() = false")
	}

	plain := goerrors.New("plain")
	if ExtractDetails(plain) != nil {
		t.Error("ExtractDetails(plain) != nil")
	}
	if ExtractModule(plain) != "" {
		t.Error("ExtractModule(plain) != \"\"")
	}
}

func TestStandardError(t *testing.T) {
	err := StandardError(ModuleTimeseries, "at", "index out of range")

	if GetErrorModule(err) != ModuleTimeseries {
		t.Errorf("GetErrorModule() = %q", GetErrorModule(err))
	}
	if GetErrorOperation(err) != "at" {
		t.Errorf("GetErrorOperation() = %q", GetErrorOperation(err))
	}
	if err.Code() != tserror.Code(CodeTimeseriesIndexOutOfRange) {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeTimeseriesIndexOutOfRange)
	}
}

func TestModuleError(t *testing.T) {
	cause := goerrors.New("boom")
	err := ModuleError(ModuleMathx, "divide", cause, map[string]interface{}{"divisor": 0.0})

	if err.Error() != "mathx.divide failed: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Code() != tserror.Code(CodeMathxDivisionByZero) {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeMathxDivisionByZero)
	}
	if err.Details()["divisor"] != 0.0 {
		t.Errorf("details[divisor] = %v", err.Details()["divisor"])
	}
}
