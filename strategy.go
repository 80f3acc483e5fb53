package gemmkit

// Strategy pairs a human-readable name with a kernel invocation. The
// benchmark harness and the cross-checking tests iterate over strategy
// sets so every variant runs against the same A, B and a freshly zeroed
// C.
type Strategy struct {
	Name string
	Run  func(a, b, c *Matrix)
}

// LoopOrderStrategies returns one strategy per naive loop ordering, in
// canonical order. This is the column set of the loop-order benchmark.
func LoopOrderStrategies() []Strategy {
	orders := Orders()
	strategies := make([]Strategy, len(orders))
	for i, order := range orders {
		strategies[i] = Strategy{
			Name: order.String(),
			Run: func(a, b, c *Matrix) {
				Gemm(order, a, b, c)
			},
		}
	}
	return strategies
}

// OptimizedStrategies returns the optimization-comparison column set:
// the plain MNK baseline, the blocked variant, the row-partitioned
// parallel variant, and the combined parallel+blocked variant. workers
// and blockSize below 1 are clamped to 1 by the kernels.
func OptimizedStrategies(workers, blockSize int) []Strategy {
	return []Strategy{
		{
			Name: "Original MNK",
			Run: func(a, b, c *Matrix) {
				Gemm(OrderMNK, a, b, c)
			},
		},
		{
			Name: "Blocked MNK",
			Run: func(a, b, c *Matrix) {
				BlockedGemm(a, b, c, blockSize)
			},
		},
		{
			Name: "Multithreaded MNK",
			Run: func(a, b, c *Matrix) {
				ParallelGemm(a, b, c, workers)
			},
		},
		{
			Name: "MT+Blocked MNK",
			Run: func(a, b, c *Matrix) {
				ParallelBlockedGemm(a, b, c, workers, blockSize)
			},
		},
	}
}

// AllStrategies returns every kernel variant, used by the agreement
// tests that require all strategies to produce the same product.
func AllStrategies(workers, blockSize int) []Strategy {
	return append(LoopOrderStrategies(), OptimizedStrategies(workers, blockSize)...)
}
