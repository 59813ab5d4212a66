// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides immutable scalar value types with field
//              arithmetic for the tsmath library: complex numbers with a
//              numerically stable square root, real numbers, and the generic
//              FieldElement contract they share.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation with complex and real field elements

// Package mathx provides immutable scalar value types with field arithmetic.
//
// Package: mathx
// Title: Field Arithmetic for Complex and Real Scalars
// Description: This package implements the numeric core of the tsmath library.
//              Complex is an immutable complex number with component-wise
//              arithmetic, division via conjugate multiplication, a
//              branch-stable principal square root, and ordering by magnitude.
//              Real is its real-valued sibling. Both implement the generic
//              FieldElement interface so future scalar types can share the
//              contract.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// # Overview
//
// All values in this package are immutable: every arithmetic operation is a
// pure function returning a newly constructed value, which makes concurrent
// read access inherently safe without any coordination.
//
// The only failure mode is division by an exact zero divisor, reported as a
// structured MATHX_DIVISION_BY_ZERO error. All other numerical edge cases
// (overflow, underflow, NaN propagation) follow standard IEEE-754 semantics
// and are representable values, not errors.
//
// # Usage Examples
//
// Basic complex arithmetic:
//
//	a := mathx.NewComplex(3.0, 4.0)
//	b := mathx.NewComplex(1.0, -2.0)
//
//	sum := a.Add(b)
//	product := a.Multiply(b)
//	quotient, err := a.Divide(b)
//	if err != nil {
//	    // b was the complex zero value
//	}
//
//	fmt.Println(a.Abs()) // 5
//
// Principal square roots, including the negative real axis:
//
//	root := mathx.NewComplex(-4.0, 0.0).Sqrt() // (0.0, 2.0)
//
// Converting from the real value type:
//
//	r := mathx.NewReal(2.5)
//	c := mathx.NewComplexFromReal(r) // (2.5, 0.0)
//
// # Equality and Ordering
//
// Equal and Hash use exact bit patterns of both components, with no epsilon
// tolerance; they are suitable for map keys and set membership. Compare on
// Complex orders by magnitude only and is therefore not a canonical ordering
// of complex numbers: distinct values with equal magnitude compare as 0.
// The IsReal predicate, in contrast, is epsilon-aware, treating imaginary
// components below the machine epsilon for 1.0 as zero.
package mathx
