// File: real.go
// Title: Real Number Implementation
// Description: Implements an immutable real number value type as the second
//              concrete FieldElement. Real exists mainly as the conversion
//              source for Complex values with zero imaginary part, but carries
//              the full field contract so generic code can work with either
//              scalar type.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation with real field arithmetic

package mathx

import (
	"math"

	"github.com/msto63/tsmath/core/errors"
)

// Real represents an immutable real number.
//
// The zero value of the type is 0.0.
type Real struct {
	value float64
}

// NewReal creates a new real number with the given value
func NewReal(value float64) Real {
	return Real{value: value}
}

// RealZero returns the real zero value
func RealZero() Real {
	return Real{}
}

// RealOne returns the real one value
func RealOne() Real {
	return Real{value: 1.0}
}

// Float64 returns the underlying float64 value
func (r Real) Float64() float64 {
	return r.value
}

// Add returns the sum of r and other
func (r Real) Add(other Real) Real {
	return Real{value: r.value + other.value}
}

// AddFloat returns r with the given value added
func (r Real) AddFloat(other float64) Real {
	return Real{value: r.value + other}
}

// Subtract returns the difference of r and other
func (r Real) Subtract(other Real) Real {
	return Real{value: r.value - other.value}
}

// Multiply returns the product of r and other
func (r Real) Multiply(other Real) Real {
	return Real{value: r.value * other.value}
}

// Divide returns the quotient of r and other. It fails with a
// MATHX_DIVISION_BY_ZERO error when other is exactly 0.0.
func (r Real) Divide(other Real) (Real, error) {
	if other.value == 0 {
		return Real{}, errors.MathxDivisionByZero("divide")
	}
	return Real{value: r.value / other.value}, nil
}

// MustDivide is like Divide but panics on a zero divisor
func (r Real) MustDivide(other Real) Real {
	result, err := r.Divide(other)
	if err != nil {
		panic(err)
	}
	return result
}

// Conjugate returns r unchanged; real numbers are their own conjugate
func (r Real) Conjugate() Real {
	return r
}

// Abs returns the absolute value of r
func (r Real) Abs() float64 {
	return math.Abs(r.value)
}

// AdditiveInverse returns r negated
func (r Real) AdditiveInverse() Real {
	return Real{value: -r.value}
}

// Sqrt returns the square root of r. For negative values the result is NaN
// per IEEE-754 semantics; callers needing the complex root should convert
// via NewComplexFromReal first.
func (r Real) Sqrt() Real {
	return Real{value: math.Sqrt(r.value)}
}

// IsZero reports whether r is exactly 0.0
func (r Real) IsZero() bool {
	return r.value == 0
}

// Compare orders r against other by value, returning -1, 0, or +1
func (r Real) Compare(other Real) int {
	switch {
	case r.value < other.value:
		return -1
	case r.value > other.value:
		return 1
	default:
		return 0
	}
}

// Equal reports equality by exact bit pattern, consistent with Complex.Equal
func (r Real) Equal(other Real) bool {
	return math.Float64bits(r.value) == math.Float64bits(other.value)
}

// String returns a human-readable rendering of r
func (r Real) String() string {
	return formatComponent(r.value)
}
