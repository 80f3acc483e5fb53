package gemmkit

import (
	"fmt"
	"math/rand"
)

// Matrix is a dense, row-major matrix of float64 values. The caller owns
// the backing buffer for its full lifetime; kernels borrow read access
// (A, B) or read-write access (C) for the duration of a single call.
type Matrix struct {
	Rows int
	Cols int
	// Data holds the elements in row-major order: element (i, j) lives
	// at Data[i*Cols+j]. len(Data) == Rows*Cols always.
	Data []float64
}

// NewMatrix allocates a zero-filled rows x cols matrix.
// Dimensions must be non-negative.
func NewMatrix(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("gemmkit: negative matrix dimension %dx%d", rows, cols))
	}
	return &Matrix{
		Rows: rows,
		Cols: cols,
		Data: make([]float64, rows*cols),
	}
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	m.checkIndex(i, j)
	return m.Data[i*m.Cols+j]
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	m.checkIndex(i, j)
	m.Data[i*m.Cols+j] = v
}

func (m *Matrix) checkIndex(i, j int) {
	if i < 0 || i >= m.Rows || j < 0 || j >= m.Cols {
		panic(fmt.Sprintf("gemmkit: index (%d, %d) out of range for %dx%d matrix", i, j, m.Rows, m.Cols))
	}
}

// Zero resets every element to 0. The accumulate-only kernels never
// initialize C, so callers reset it with Zero before each pass.
func (m *Matrix) Zero() {
	for i := range m.Data {
		m.Data[i] = 0
	}
}

// Randomize fills the matrix with uniform values in [0, 1) drawn from rng.
func (m *Matrix) Randomize(rng *rand.Rand) {
	for i := range m.Data {
		m.Data[i] = rng.Float64()
	}
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{
		Rows: m.Rows,
		Cols: m.Cols,
		Data: make([]float64, len(m.Data)),
	}
	copy(out.Data, m.Data)
	return out
}

// checkShapes verifies that a, b and c form a consistent C += A*B triple
// and returns the shared dimensions (m, n, k). Shape disagreement is a
// caller contract violation and panics, matching the gonum/mat
// convention for dimension mismatches.
func checkShapes(a, b, c *Matrix) (m, n, k int) {
	if a.Cols != b.Rows {
		panic(fmt.Sprintf("gemmkit: A is %dx%d but B is %dx%d", a.Rows, a.Cols, b.Rows, b.Cols))
	}
	if c.Rows != a.Rows || c.Cols != b.Cols {
		panic(fmt.Sprintf("gemmkit: C is %dx%d, want %dx%d", c.Rows, c.Cols, a.Rows, b.Cols))
	}
	return a.Rows, b.Cols, a.Cols
}
