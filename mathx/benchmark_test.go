// File: benchmark_test.go
// Title: Benchmarks for MathX Package
// Description: Micro-benchmarks for the hot paths of the complex number type:
//              arithmetic, division, square root, magnitude and rendering.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial benchmark implementation

package mathx

import "testing"

var (
	benchComplexResult Complex
	benchFloatResult   float64
	benchStringResult  string
	benchHashResult    uint64
)

func BenchmarkComplexAdd(b *testing.B) {
	x := NewComplex(3.0, 4.0)
	y := NewComplex(1.5, -2.5)
	var r Complex

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r = x.Add(y)
	}
	benchComplexResult = r
}

func BenchmarkComplexMultiply(b *testing.B) {
	x := NewComplex(3.0, 4.0)
	y := NewComplex(1.5, -2.5)
	var r Complex

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r = x.Multiply(y)
	}
	benchComplexResult = r
}

func BenchmarkComplexDivide(b *testing.B) {
	x := NewComplex(3.0, 4.0)
	y := NewComplex(1.0, -2.0)
	var r Complex

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, _ = x.Divide(y)
	}
	benchComplexResult = r
}

func BenchmarkComplexSqrt(b *testing.B) {
	x := NewComplex(3.0, 4.0)
	var r Complex

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r = x.Sqrt()
	}
	benchComplexResult = r
}

func BenchmarkComplexAbs(b *testing.B) {
	x := NewComplex(3.0, 4.0)
	var r float64

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r = x.Abs()
	}
	benchFloatResult = r
}

func BenchmarkComplexHash(b *testing.B) {
	x := NewComplex(3.0, 4.0)
	var r uint64

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r = x.Hash()
	}
	benchHashResult = r
}

func BenchmarkComplexString(b *testing.B) {
	x := NewComplex(3.0, 4.0)
	var r string

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r = x.String()
	}
	benchStringResult = r
}
