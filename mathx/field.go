// File: field.go
// Title: Field Element Abstraction
// Description: Defines the generic FieldElement interface shared by all scalar
//              types in the mathx package. Complex and Real are the concrete
//              implementers; the contract covers the field operations plus
//              conjugation, magnitude, principal square root, and an
//              ordering.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation of the field element contract

package mathx

// FieldElement describes an immutable scalar supporting field arithmetic.
//
// Every operation is a pure function: it never mutates the receiver and
// returns a newly constructed value. Divide is the only fallible operation;
// it reports a violated precondition when the divisor is the zero element.
//
// Compare provides the ordering natural to the type: value order for real
// elements and magnitude order for complex elements. The complex ordering is
// not canonical, since many distinct complex numbers share a magnitude.
type FieldElement[T any] interface {
	// Add returns the sum of the element and other.
	Add(other T) T

	// Subtract returns the difference of the element and other.
	Subtract(other T) T

	// Multiply returns the product of the element and other.
	Multiply(other T) T

	// Divide returns the quotient of the element and other. It fails with a
	// MATHX_DIVISION_BY_ZERO error when other is the zero element.
	Divide(other T) (T, error)

	// Conjugate returns the complex conjugate of the element. For real
	// elements this is the identity.
	Conjugate() T

	// AdditiveInverse returns the element negated.
	AdditiveInverse() T

	// Sqrt returns the principal square root of the element.
	Sqrt() T

	// Abs returns the magnitude (Euclidean norm) of the element.
	Abs() float64

	// Compare orders the element against other, returning -1, 0, or +1.
	Compare(other T) int
}

// Compile-time checks that the concrete scalar types satisfy the contract.
var (
	_ FieldElement[Complex] = Complex{}
	_ FieldElement[Real]    = Real{}
)
