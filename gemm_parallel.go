package gemmkit

import "sync"

// ParallelGemm accumulates C += A*B across a fixed set of workers. The
// row range [0, m) is split statically into contiguous chunks of
// ceil(m/workers) rows; the final chunk is clipped to m and workers with
// an empty chunk do nothing. Each worker runs the naive MNK kernel over
// its own rows and the full column and reduction ranges, so no two
// workers ever write the same element of C — row disjointness is the
// only synchronization mechanism. The call returns once every worker
// has joined; no partial result is observable before that.
//
// workers values below 1 clamp to 1. Workers are spawned fresh per call
// and do not outlive it.
func ParallelGemm(a, b, c *Matrix, workers int) {
	m, n, k := checkShapes(a, b, c)
	forEachRowChunk(m, workers, func(start, end int) {
		gemmRows(start, end, n, k, a.Data, b.Data, c.Data)
	})
}

// ParallelBlockedGemm combines the static row partitioning of
// ParallelGemm with the cache blocking of BlockedGemm. Rows are handed
// out at i-block granularity, ceil(iBlocks/workers) blocks per worker,
// so a worker's span is a whole number of blocks; only the very last
// block in the matrix may be clipped to m. Disjointness and join
// behavior are the same as ParallelGemm.
func ParallelBlockedGemm(a, b, c *Matrix, workers, blockSize int) {
	m, n, k := checkShapes(a, b, c)
	if blockSize < 1 {
		blockSize = 1
	}
	forEachBlockRowChunk(m, blockSize, workers, func(start, end int) {
		blockedRange(start, end, n, k, blockSize, a.Data, b.Data, c.Data)
	})
}

// gemmRows is the MNK accumulation restricted to rows [i0, i1).
func gemmRows(i0, i1, n, k int, a, b, c []float64) {
	for i := i0; i < i1; i++ {
		for j := 0; j < n; j++ {
			for p := 0; p < k; p++ {
				c[i*n+j] += a[i*k+p] * b[p*n+j]
			}
		}
	}
}

// forEachRowChunk dispatches body once per non-empty worker chunk of
// [0, m) and waits for all of them to finish. Chunks are contiguous,
// gap-free and non-overlapping; the last one may be short when m does
// not divide evenly, and when workers > m the excess workers get empty
// chunks and are never spawned.
func forEachRowChunk(m, workers int, body func(start, end int)) {
	if workers < 1 {
		workers = 1
	}
	rowsPerWorker := (m + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := min(start+rowsPerWorker, m)
		if start >= end {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			body(start, end)
		}(start, end)
	}
	wg.Wait()
}

// forEachBlockRowChunk is forEachRowChunk at i-block granularity: the
// ceil(m/blockSize) blocks are split ceil(iBlocks/workers) per worker
// and converted back to row spans, clipping the final span to m.
func forEachBlockRowChunk(m, blockSize, workers int, body func(start, end int)) {
	if workers < 1 {
		workers = 1
	}
	iBlocks := (m + blockSize - 1) / blockSize
	blocksPerWorker := (iBlocks + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		startBlock := w * blocksPerWorker
		endBlock := min(startBlock+blocksPerWorker, iBlocks)
		start := startBlock * blockSize
		end := min(endBlock*blockSize, m)
		if start >= end {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			body(start, end)
		}(start, end)
	}
	wg.Wait()
}
