package gemmkit

import (
	"runtime"
	"time"
	"unsafe"
)

// The factorial pair is the warm-up exercise that ships alongside the
// GEMM benchmarks: both variants build the product by repeated addition
// instead of multiplication, and the recursive one reports how deep the
// call stack grew. Depth is threaded through return values as a fold
// accumulator rather than tracked in package-level state, so concurrent
// callers cannot corrupt each other's measurement.

// FactorialIterative computes n! iteratively, simulating each
// multiplication with repeated addition. n below 2 yields 1.
func FactorialIterative(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		temp := 0
		for j := 0; j < i; j++ {
			temp += result
		}
		result = temp
	}
	return result
}

// FactorialRecursive computes n! recursively and returns the value along
// with the maximum recursion depth reached. The base case counts as
// depth 1.
func FactorialRecursive(n int) (value, depth int) {
	if n <= 1 {
		return 1, 1
	}
	smaller, depth := FactorialRecursive(n - 1)

	// Multiply n with smaller using repeated addition.
	result := 0
	for i := 0; i < n; i++ {
		result += smaller
	}
	return result, depth + 1
}

// RecursiveFrameSize estimates the stack bytes one FactorialRecursive
// frame occupies: the parameter, the two named results, the loop
// counter and temporary, plus return address and frame pointer.
func RecursiveFrameSize() int {
	word := int(unsafe.Sizeof(int(0)))
	paramSize := word
	resultSize := 2 * word
	localSize := 2 * word
	callOverhead := 2 * word
	return paramSize + resultSize + localSize + callOverhead
}

// FactorialProfile is one instrumented factorial run.
type FactorialProfile struct {
	N         int
	Value     int
	Depth     int // 0 for the iterative variant
	Elapsed   time.Duration
	MemoryUse int64 // bytes, measured or estimated
	Estimated bool  // true when MemoryUse is the heuristic figure
}

// ProfileFactorial runs one factorial computation under timing and
// memory instrumentation. Heap use is measured as the allocation delta
// across the call; when the delta is not positive (the usual case, since
// neither variant allocates) it falls back to a theoretical estimate —
// frame size times depth for the recursive variant, the handful of loop
// variables for the iterative one.
func ProfileFactorial(n int, recursive bool) FactorialProfile {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)

	profile := FactorialProfile{N: n}
	start := time.Now()
	if recursive {
		profile.Value, profile.Depth = FactorialRecursive(n)
	} else {
		profile.Value = FactorialIterative(n)
	}
	profile.Elapsed = time.Since(start)

	runtime.ReadMemStats(&after)

	measured := int64(after.HeapAlloc) - int64(before.HeapAlloc)
	if measured > 0 {
		profile.MemoryUse = measured
		return profile
	}

	profile.Estimated = true
	word := int64(unsafe.Sizeof(int(0)))
	if recursive {
		profile.MemoryUse = int64(RecursiveFrameSize()) * int64(profile.Depth)
	} else {
		// result, temp and the two loop counters, scaled by iterations.
		profile.MemoryUse = 4*word + int64(n)*word
	}
	return profile
}
