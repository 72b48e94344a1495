package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFor_ReturnsSameInstance verifies that For hands out the shared ops.
func TestFor_ReturnsSameInstance(t *testing.T) {
	assert.Same(t, For[float64](), For[float64]())
	assert.Same(t, For[float32](), For[float32]())
}

// TestOps_Sum verifies the sum reduction for both precisions.
func TestOps_Sum(t *testing.T) {
	a64 := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	assert.InDelta(t, 45.0, For[float64]().Sum(a64), 1e-12)

	a32 := []float32{0.5, 0.25, 0.25}
	assert.InDelta(t, 1.0, float64(For[float32]().Sum(a32)), 1e-6)
}

// TestGram_UpperTriangle verifies that Gram visits i ≤ j once with scaled dot products.
func TestGram_UpperTriangle(t *testing.T) {
	rows := [][]float64{
		{1, 0, 0, 1},
		{0, 2, 0, 0},
		{1, 1, 1, 1},
	}

	got := map[[2]int]float64{}
	Gram(rows, 0.5, func(i, j int, v float64) {
		_, seen := got[[2]int{i, j}]
		assert.False(t, seen, "entry (%d,%d) visited twice", i, j)
		assert.LessOrEqual(t, i, j)
		got[[2]int{i, j}] = v
	})

	assert.Len(t, got, 6)
	assert.InDelta(t, 1.0, got[[2]int{0, 0}], 1e-15)
	assert.InDelta(t, 0.0, got[[2]int{0, 1}], 1e-15)
	assert.InDelta(t, 1.0, got[[2]int{0, 2}], 1e-15)
	assert.InDelta(t, 2.0, got[[2]int{1, 1}], 1e-15)
	assert.InDelta(t, 1.0, got[[2]int{1, 2}], 1e-15)
	assert.InDelta(t, 2.0, got[[2]int{2, 2}], 1e-15)
}

// BenchmarkIndirectF64DotProduct measures the indirect call through the Ops struct.
func BenchmarkIndirectF64DotProduct(b *testing.B) {
	ops := For[float64]()
	a := make([]float64, 1024)
	c := make([]float64, 1024)
	for i := range a {
		a[i] = float64(i) * 0.01
		c[i] = float64(i) * 0.02
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = ops.DotProductUnsafe(a, c)
	}
}
