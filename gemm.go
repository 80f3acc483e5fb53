package gemmkit

import "fmt"

// Order selects the loop ordering of the naive triple-loop kernel. The
// three letters name the outer, middle and inner loop variables, where M
// walks rows of C (i), N walks columns of C (j) and K walks the
// reduction dimension (p). Every ordering computes the same product; the
// permutation only changes the memory-access pattern, and with it the
// cache behavior. Because floating-point accumulation order differs
// across orderings, results agree within rounding, not bit-for-bit.
type Order int

const (
	// OrderMNK is the textbook row-by-row ordering (i, j, p).
	OrderMNK Order = iota
	// OrderMKN hoists A[i,p] out of the inner column sweep (i, p, j).
	OrderMKN
	// OrderNMK walks C column-by-column (j, i, p).
	OrderNMK
	// OrderNKM hoists B[p,j] out of the inner row sweep (j, p, i).
	OrderNKM
	// OrderKMN puts the reduction outermost, rows in the middle (p, i, j).
	OrderKMN
	// OrderKNM puts the reduction outermost, columns in the middle (p, j, i).
	OrderKNM

	numOrders = int(OrderKNM) + 1
)

var orderNames = [numOrders]string{"MNK", "MKN", "NMK", "NKM", "KMN", "KNM"}

func (o Order) String() string {
	if o < 0 || int(o) >= numOrders {
		return fmt.Sprintf("Order(%d)", int(o))
	}
	return orderNames[o]
}

// Orders returns all six loop orderings in their canonical sequence.
func Orders() []Order {
	return []Order{OrderMNK, OrderMKN, OrderNMK, OrderNKM, OrderKMN, OrderKNM}
}

// ParseOrder converts a name like "MNK" into an Order.
func ParseOrder(s string) (Order, error) {
	for i, name := range orderNames {
		if name == s {
			return Order(i), nil
		}
	}
	return 0, fmt.Errorf("gemmkit: unknown loop order %q", s)
}

// Gemm accumulates C += A*B using the naive triple loop in the given
// ordering. C must be zeroed by the caller if a plain product is wanted;
// the kernel only adds into existing values. Any zero dimension makes
// the call a no-op.
func Gemm(order Order, a, b, c *Matrix) {
	m, n, k := checkShapes(a, b, c)
	switch order {
	case OrderMNK:
		gemmMNK(m, n, k, a.Data, b.Data, c.Data)
	case OrderMKN:
		gemmMKN(m, n, k, a.Data, b.Data, c.Data)
	case OrderNMK:
		gemmNMK(m, n, k, a.Data, b.Data, c.Data)
	case OrderNKM:
		gemmNKM(m, n, k, a.Data, b.Data, c.Data)
	case OrderKMN:
		gemmKMN(m, n, k, a.Data, b.Data, c.Data)
	case OrderKNM:
		gemmKNM(m, n, k, a.Data, b.Data, c.Data)
	default:
		panic(fmt.Sprintf("gemmkit: invalid loop order %d", int(order)))
	}
}

// gemmMNK is the row-by-row ordering. Also the inner kernel reused by
// the blocked and parallel variants, restricted to sub-ranges there.
func gemmMNK(m, n, k int, a, b, c []float64) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			for p := 0; p < k; p++ {
				c[i*n+j] += a[i*k+p] * b[p*n+j]
			}
		}
	}
}

func gemmMKN(m, n, k int, a, b, c []float64) {
	for i := 0; i < m; i++ {
		for p := 0; p < k; p++ {
			aip := a[i*k+p]
			for j := 0; j < n; j++ {
				c[i*n+j] += aip * b[p*n+j]
			}
		}
	}
}

func gemmNMK(m, n, k int, a, b, c []float64) {
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			for p := 0; p < k; p++ {
				c[i*n+j] += a[i*k+p] * b[p*n+j]
			}
		}
	}
}

func gemmNKM(m, n, k int, a, b, c []float64) {
	for j := 0; j < n; j++ {
		for p := 0; p < k; p++ {
			bpj := b[p*n+j]
			for i := 0; i < m; i++ {
				c[i*n+j] += a[i*k+p] * bpj
			}
		}
	}
}

func gemmKMN(m, n, k int, a, b, c []float64) {
	for p := 0; p < k; p++ {
		for i := 0; i < m; i++ {
			aip := a[i*k+p]
			for j := 0; j < n; j++ {
				c[i*n+j] += aip * b[p*n+j]
			}
		}
	}
}

func gemmKNM(m, n, k int, a, b, c []float64) {
	for p := 0; p < k; p++ {
		for j := 0; j < n; j++ {
			bpj := b[p*n+j]
			for i := 0; i < m; i++ {
				c[i*n+j] += a[i*k+p] * bpj
			}
		}
	}
}
