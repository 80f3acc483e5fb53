// Package gemmkit tolerance-based verification for floating-point comparisons
package gemmkit

import "math"

// machineEpsilon is the float64 unit roundoff, Nextafter(1, 2) - 1.
const machineEpsilon = 0x1p-52

// Tolerance defines tolerance parameters for float64 comparison.
type Tolerance struct {
	// Abs is the absolute tolerance for values near zero.
	Abs float64

	// Rel is the relative tolerance as a fraction of the larger value.
	Rel float64
}

// DefaultTolerance returns the tolerance used for single products.
func DefaultTolerance() Tolerance {
	return Tolerance{
		Abs: 1e-12,
		Rel: 1e-10,
	}
}

// GemmTolerance returns the absolute tolerance for comparing two GEMM
// results over a length-k reduction whose accumulated terms do not
// exceed maxMag in magnitude. Loop orderings sum the same k terms in
// different orders, so results can differ by the accumulated rounding of
// the reduction but no more.
func GemmTolerance(k int, maxMag float64) float64 {
	if k < 1 {
		k = 1
	}
	if maxMag < 1 {
		maxMag = 1
	}
	// Factor of 4 covers the worst pairing of summation orders.
	return 4 * float64(k) * machineEpsilon * maxMag
}

// Float64NearEqual reports whether a and b are equal within tol.
func Float64NearEqual(a, b float64, tol Tolerance) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	if math.IsInf(a, 1) && math.IsInf(b, 1) {
		return true
	}
	if math.IsInf(a, -1) && math.IsInf(b, -1) {
		return true
	}

	// Exactly equal (handles ±0).
	if a == b {
		return true
	}

	diff := math.Abs(a - b)
	if diff <= tol.Abs {
		return true
	}

	larger := math.Max(math.Abs(a), math.Abs(b))
	return diff <= larger*tol.Rel
}

// MaxAbsDiff returns the largest absolute element difference between two
// equally-shaped matrices.
func MaxAbsDiff(a, b *Matrix) float64 {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		panic("gemmkit: MaxAbsDiff on differently shaped matrices")
	}
	var maxDiff float64
	for i := range a.Data {
		d := math.Abs(a.Data[i] - b.Data[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff
}

// MaxAbs returns the largest absolute element of m.
func MaxAbs(m *Matrix) float64 {
	var maxMag float64
	for _, v := range m.Data {
		if a := math.Abs(v); a > maxMag {
			maxMag = a
		}
	}
	return maxMag
}
