// File: complex.go
// Title: Complex Number Implementation
// Description: Implements an immutable complex number value type with field
//              arithmetic, a branch-stable principal square root, division via
//              conjugate multiplication, and ordering by magnitude. All
//              operations return new values; a Complex never changes after
//              construction, so concurrent reads need no synchronization.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation with complex field arithmetic

package mathx

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"strconv"
	"strings"

	"github.com/msto63/tsmath/core/errors"
)

// epsilon is the machine epsilon for 1.0 (the gap to the next representable
// double above 1.0). Near-zero predicates such as IsReal and the Sqrt fallback
// branch compare against this threshold rather than exact zero.
var epsilon = math.Nextafter(1.0, 2.0) - 1.0

// Complex represents an immutable point in the complex plane with
// double-precision real and imaginary components.
//
// The zero value of the type is the complex zero (0.0, 0.0).
type Complex struct {
	re float64
	im float64
}

// NewComplex creates a new complex number with the given real and imaginary parts
func NewComplex(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// NewComplexFromFloat creates a new complex number with zero imaginary part,
// i.e. a real number embedded in the complex plane
func NewComplexFromFloat(re float64) Complex {
	return Complex{re: re}
}

// NewComplexFromReal converts a Real value into a complex number with zero
// imaginary part
func NewComplexFromReal(r Real) Complex {
	return Complex{re: r.Float64()}
}

// ComplexZero returns the complex zero value (0.0, 0.0)
func ComplexZero() Complex {
	return Complex{}
}

// Real returns the real component
func (c Complex) Real() float64 {
	return c.re
}

// Imag returns the imaginary component
func (c Complex) Imag() float64 {
	return c.im
}

// Add returns the component-wise sum of c and other
func (c Complex) Add(other Complex) Complex {
	return Complex{re: c.re + other.re, im: c.im + other.im}
}

// AddFloat returns c with the given value added to the real component only
func (c Complex) AddFloat(other float64) Complex {
	return Complex{re: c.re + other, im: c.im}
}

// Subtract returns the component-wise difference of c and other
func (c Complex) Subtract(other Complex) Complex {
	return Complex{re: c.re - other.re, im: c.im - other.im}
}

// Multiply returns the complex product of c and other
func (c Complex) Multiply(other Complex) Complex {
	re := c.re*other.re - c.im*other.im
	im := c.re*other.im + other.re*c.im
	return Complex{re: re, im: im}
}

// timesFloat scales both components by a real factor. Used by Sqrt.
func (c Complex) timesFloat(other float64) Complex {
	return Complex{re: c.re * other, im: c.im * other}
}

// DivideFloat returns c with both components divided by value. It fails with
// a MATHX_DIVISION_BY_ZERO error when value is exactly 0.0; this is a violated
// precondition, not a silently propagated NaN or Infinity.
func (c Complex) DivideFloat(value float64) (Complex, error) {
	if value == 0 {
		return Complex{}, errors.MathxDivisionByZero("divide_float")
	}
	return Complex{re: c.re / value, im: c.im / value}, nil
}

// MustDivideFloat is like DivideFloat but panics on a zero divisor.
// Use this when the divisor is known to be non-zero.
func (c Complex) MustDivideFloat(value float64) Complex {
	result, err := c.DivideFloat(value)
	if err != nil {
		panic(err)
	}
	return result
}

// Divide returns the complex quotient of c and other, computed via conjugate
// multiplication. Dividing by the complex zero value fails with the same
// MATHX_DIVISION_BY_ZERO error as DivideFloat, since the squared magnitude of
// the divisor becomes 0.0.
func (c Complex) Divide(other Complex) (Complex, error) {
	top := Complex{
		re: c.re*other.re + c.im*other.im,
		im: c.re*-other.im + other.re*c.im,
	}
	bottom := other.re*other.re + other.im*other.im
	return top.DivideFloat(bottom)
}

// MustDivide is like Divide but panics when other is the complex zero value
func (c Complex) MustDivide(other Complex) Complex {
	result, err := c.Divide(other)
	if err != nil {
		panic(err)
	}
	return result
}

// Conjugate returns the complex conjugate (re, -im)
func (c Complex) Conjugate() Complex {
	return Complex{re: c.re, im: -c.im}
}

// Abs returns the magnitude (Euclidean norm) of c. The squares are formed
// directly, without hypot-style rescaling.
func (c Complex) Abs() float64 {
	return math.Sqrt(c.re*c.re + c.im*c.im)
}

// AdditiveInverse returns c negated component-wise
func (c Complex) AdditiveInverse() Complex {
	return Complex{re: -c.re, im: -c.im}
}

// Sqrt returns the principal square root of c: the branch with non-negative
// real part, or on the boundary the one with non-negative imaginary part.
//
// The naive formula sqrt((r+a)/2) + i*sign(b)*sqrt((r-a)/2) suffers
// catastrophic cancellation when a is close to +-r. Normalizing the shifted
// vector c + r and rescaling by sqrt(r) sidesteps that loss. The algorithm
// fails only for values on or near the negative real axis, which the epsilon
// fallback branch handles up front.
func (c Complex) Sqrt() Complex {
	if c.re < epsilon && math.Abs(c.im) < epsilon {
		return Complex{im: math.Sqrt(c.Abs())}
	}
	r := c.Abs()
	zr := c.AddFloat(r)
	return zr.MustDivideFloat(zr.Abs()).timesFloat(math.Sqrt(r))
}

// IsReal reports whether c is also a real number, i.e. whether the imaginary
// component is smaller in magnitude than the machine epsilon for 1.0. This is
// deliberately not an exact zero test.
func (c Complex) IsReal() bool {
	return math.Abs(c.im) < epsilon
}

// IsZero reports whether c is exactly the complex zero value
func (c Complex) IsZero() bool {
	return c.re == 0 && c.im == 0
}

// Compare orders c against other by magnitude, returning -1, 0, or +1.
//
// This is a magnitude ordering, not a canonical ordering of complex numbers:
// many structurally distinct values share a magnitude and compare as 0 here.
// When either magnitude is NaN the values are incomparable and Compare
// returns 0.
func (c Complex) Compare(other Complex) int {
	a, b := c.Abs(), other.Abs()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal reports structural equality of both components by exact bit pattern.
// There is no epsilon tolerance: values differing by less than representable
// precision are not equal unless bit-identical. Under bit-pattern semantics
// NaN equals NaN, and 0.0 does not equal -0.0.
func (c Complex) Equal(other Complex) bool {
	return math.Float64bits(c.re) == math.Float64bits(other.re) &&
		math.Float64bits(c.im) == math.Float64bits(other.im)
}

// Hash returns a deterministic hash derived from the bit patterns of both
// components, consistent with Equal
func (c Complex) Hash() uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], math.Float64bits(c.re))
	binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(c.im))

	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// String returns a human-readable rendering of c for diagnostics and logging.
// It is not a parseable serialization format.
//
// The zero checks here are exact (|x| > 0.0), unlike the epsilon-based
// predicate in IsReal. The asymmetry is kept on purpose: unifying it would
// change observable formatting of values that IsReal already treats as real.
func (c Complex) String() string {
	var sb strings.Builder

	if math.Abs(c.re) > 0.0 {
		sb.WriteString(formatComponent(c.re))
	} else {
		if math.Abs(c.im) > 0.0 {
			sb.WriteString(formatComponent(c.im))
			sb.WriteString("i")
			return sb.String()
		}
		return "0.0"
	}

	if c.im < 0.0 {
		sb.WriteString(" - ")
		sb.WriteString(formatComponent(math.Abs(c.im)))
		sb.WriteString("i")
	} else if c.im > 0.0 {
		sb.WriteString(" + ")
		sb.WriteString(formatComponent(c.im))
		sb.WriteString("i")
	}
	return sb.String()
}

// formatComponent renders a float component with an explicit decimal point
// for integral finite values, so 3 prints as "3.0" and -4 as "-4.0"
func formatComponent(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
