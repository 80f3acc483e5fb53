// Package gemmkit configuration constants
package gemmkit

// Cache sizes for different levels (in bytes)
const (
	// L1 cache size per core (typical for modern CPUs)
	L1CacheSize = 32 * 1024 // 32KB

	// L2 cache size per core (typical for modern CPUs)
	L2CacheSize = 256 * 1024 // 256KB

	// L3 cache size (shared, typical for modern CPUs)
	L3CacheSize = 8 * 1024 * 1024 // 8MB
)

// Benchmark harness defaults
const (
	// DefaultNumRuns is how many repetitions each timing averages over.
	DefaultNumRuns = 3

	// DefaultWorkers is the worker count used when the caller passes none.
	DefaultWorkers = 4

	// float64Size in bytes, for cache working-set arithmetic.
	float64Size = 8
)

// DefaultSizes returns the canonical square matrix sizes the benchmark
// harness sweeps: 10 through 100 in steps of 10, then 200, 300, 400.
func DefaultSizes() []int {
	sizes := make([]int, 0, 13)
	for s := 10; s <= 100; s += 10 {
		sizes = append(sizes, s)
	}
	return append(sizes, 200, 300, 400)
}

// DefaultBlockSize returns a block size such that the three blockSize²
// float64 tiles the blocked kernel touches at once (one each of A, B
// and C) fit in L1, rounded down to a power of two.
func DefaultBlockSize() int {
	budget := L1CacheSize / (3 * float64Size) // elements per tile
	size := 1
	for next := size * 2; next*next <= budget; next = size * 2 {
		size = next
	}
	return size
}
