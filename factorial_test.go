package gemmkit

import "testing"

var factorials = []struct {
	n, want int
}{
	{0, 1},
	{1, 1},
	{3, 6},
	{6, 720},
	{7, 5040},
	{8, 40320},
}

func TestFactorialIterative(t *testing.T) {
	for _, tc := range factorials {
		if got := FactorialIterative(tc.n); got != tc.want {
			t.Errorf("FactorialIterative(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestFactorialRecursive(t *testing.T) {
	for _, tc := range factorials {
		got, _ := FactorialRecursive(tc.n)
		if got != tc.want {
			t.Errorf("FactorialRecursive(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestFactorialRecursiveDepth(t *testing.T) {
	cases := []struct {
		n, depth int
	}{
		{0, 1}, // base case only
		{1, 1},
		{3, 3},
		{8, 8},
	}

	for _, tc := range cases {
		_, depth := FactorialRecursive(tc.n)
		if depth != tc.depth {
			t.Errorf("FactorialRecursive(%d) depth = %d, want %d", tc.n, depth, tc.depth)
		}
	}
}

func TestProfileFactorial(t *testing.T) {
	p := ProfileFactorial(8, true)

	if p.Value != 40320 {
		t.Errorf("value = %d, want 40320", p.Value)
	}
	if p.Depth != 8 {
		t.Errorf("depth = %d, want 8", p.Depth)
	}
	if p.MemoryUse <= 0 {
		t.Errorf("memory use = %d, want positive (measured or estimated)", p.MemoryUse)
	}
	if p.Elapsed < 0 {
		t.Errorf("elapsed = %v", p.Elapsed)
	}

	it := ProfileFactorial(8, false)
	if it.Value != 40320 || it.Depth != 0 {
		t.Errorf("iterative profile = %+v", it)
	}
}

func TestRecursiveFrameSize(t *testing.T) {
	if RecursiveFrameSize() <= 0 {
		t.Fatal("frame size must be positive")
	}
}
