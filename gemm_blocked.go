package gemmkit

// BlockedGemm accumulates C += A*B with cache blocking: the i, j and p
// ranges are tiled into blockSize-sized blocks (i-blocks outer, j-blocks
// middle, p-blocks inner) and the naive MNK kernel runs on each clipped
// block triple. Blocking only changes cache reuse of the working set,
// never the mathematical result. blockSize values below 1 clamp to 1.
func BlockedGemm(a, b, c *Matrix, blockSize int) {
	m, n, k := checkShapes(a, b, c)
	if blockSize < 1 {
		blockSize = 1
	}
	blockedRange(0, m, n, k, blockSize, a.Data, b.Data, c.Data)
}

// blockedRange runs the tiled MNK accumulation over rows [i0, i1) and
// the full j and p ranges. The parallel+blocked kernel calls it per
// worker with block-aligned row spans.
func blockedRange(i0, i1, n, k, blockSize int, a, b, c []float64) {
	for ib := i0; ib < i1; ib += blockSize {
		iEnd := min(ib+blockSize, i1)
		for jb := 0; jb < n; jb += blockSize {
			jEnd := min(jb+blockSize, n)
			for pb := 0; pb < k; pb += blockSize {
				pEnd := min(pb+blockSize, k)
				for i := ib; i < iEnd; i++ {
					for j := jb; j < jEnd; j++ {
						for p := pb; p < pEnd; p++ {
							c[i*n+j] += a[i*k+p] * b[p*n+j]
						}
					}
				}
			}
		}
	}
}
