// Package gemmkit implements a family of dense double-precision matrix
// multiply kernels together with the benchmark harness used to compare
// them.
//
// The kernel family covers four strategies for accumulating C += A*B on
// row-major float64 matrices:
//
//   - the naive triple loop in all six loop orderings (MNK, MKN, NMK,
//     NKM, KMN, KNM), which are mathematically identical and differ only
//     in memory-access pattern,
//   - a cache-blocked variant that tiles the i, j and p ranges,
//   - a statically row-partitioned parallel variant that splits the
//     output rows across a fixed set of workers,
//   - the combination of the two, partitioned at i-block granularity.
//
// All kernels are accumulate-only: they add into a caller-zeroed C and
// never initialize it. None of them allocates or keeps state across
// calls, and the parallel variants rely solely on disjoint row ranges
// for correctness; the call returns only after every worker has joined.
//
// Example usage:
//
//	a := gemmkit.NewMatrix(m, k)
//	b := gemmkit.NewMatrix(k, n)
//	c := gemmkit.NewMatrix(m, n)
//	rng := rand.New(rand.NewSource(seed))
//	a.Randomize(rng)
//	b.Randomize(rng)
//
//	gemmkit.ParallelBlockedGemm(a, b, c, runtime.NumCPU(), 32)
package gemmkit
