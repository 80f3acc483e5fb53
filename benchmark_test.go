package gemmkit

import (
	"fmt"
	"math/rand"
	"runtime"
	"testing"
)

// benchSizes covers the cache-sensitive range: 64 fits everything in L2,
// 256 spills the B walk, 512 is firmly memory-bound for the bad
// orderings.
var benchSizes = []int{64, 128, 256, 512}

func benchmarkStrategy(b *testing.B, size int, run func(a, b, c *Matrix)) {
	rng := rand.New(rand.NewSource(1))
	ma := NewMatrix(size, size)
	mb := NewMatrix(size, size)
	mc := NewMatrix(size, size)
	ma.Randomize(rng)
	mb.Randomize(rng)

	// Read A, read B, read+write C per pass.
	b.SetBytes(int64(4 * size * size * float64Size))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		mc.Zero()
		run(ma, mb, mc)
	}

	// 2*n^3 floating point operations per multiply.
	flops := 2 * float64(size) * float64(size) * float64(size)
	seconds := b.Elapsed().Seconds() / float64(b.N)
	b.ReportMetric(flops/seconds/1e9, "GFLOPS")
}

func BenchmarkGemmOrders(b *testing.B) {
	for _, size := range benchSizes {
		for _, order := range Orders() {
			b.Run(fmt.Sprintf("%s/N_%d", order, size), func(b *testing.B) {
				benchmarkStrategy(b, size, func(ma, mb, mc *Matrix) {
					Gemm(order, ma, mb, mc)
				})
			})
		}
	}
}

func BenchmarkBlockedGemm(b *testing.B) {
	blockSize := DefaultBlockSize()
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("N_%d", size), func(b *testing.B) {
			benchmarkStrategy(b, size, func(ma, mb, mc *Matrix) {
				BlockedGemm(ma, mb, mc, blockSize)
			})
		})
	}
}

func BenchmarkParallelGemm(b *testing.B) {
	workers := runtime.NumCPU()
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("N_%d", size), func(b *testing.B) {
			benchmarkStrategy(b, size, func(ma, mb, mc *Matrix) {
				ParallelGemm(ma, mb, mc, workers)
			})
		})
	}
}

func BenchmarkParallelBlockedGemm(b *testing.B) {
	workers := runtime.NumCPU()
	blockSize := DefaultBlockSize()
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("N_%d", size), func(b *testing.B) {
			benchmarkStrategy(b, size, func(ma, mb, mc *Matrix) {
				ParallelBlockedGemm(ma, mb, mc, workers, blockSize)
			})
		})
	}
}
