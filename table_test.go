package hermite

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func mustTable(t *testing.T, nMax int, alpha, mu float64, x []float64) *Table {
	t.Helper()
	table, err := Evaluate(nMax, alpha, mu, x)
	require.NoError(t, err)
	return table
}

// TestTable_Accessors tests that At, Row, Column and Dense agree.
func TestTable_Accessors(t *testing.T) {
	x := []float64{-2, -0.5, 0, 1, 3.25}
	table := mustTable(t, 6, 1.3, 0.2, x)

	assert.Equal(t, 6, table.NMax())
	assert.Equal(t, 7, table.Orders())
	assert.Equal(t, x, table.X())

	dense := table.Dense()
	r, c := dense.Dims()
	assert.Equal(t, 7, r)
	assert.Equal(t, len(x), c)

	for k := 0; k <= 6; k++ {
		row := table.Row(k)
		for i := range x {
			assert.Equal(t, table.At(k, i), row[i])
			assert.Equal(t, table.At(k, i), table.Column(i)[k])
			assert.Equal(t, table.At(k, i), dense.At(k, i))
		}
	}
}

// TestTable_CopiesAreIndependent tests that returned slices do not alias the table.
func TestTable_CopiesAreIndependent(t *testing.T) {
	x := []float64{0, 1}
	table := mustTable(t, 2, 1, 0, x)
	want := table.At(1, 1)

	table.Row(1)[1] = 99
	table.Column(1)[1] = 99
	table.X()[1] = 99
	table.Dense().Set(1, 1, 99)
	x[1] = 99

	assert.Equal(t, want, table.At(1, 1))
	assert.Equal(t, 1.0, table.X()[1])
}

// TestTable_OutOfRange tests that invalid indices panic.
func TestTable_OutOfRange(t *testing.T) {
	table := mustTable(t, 3, 1, 0, []float64{0, 1})

	assert.Panics(t, func() { table.At(4, 0) })
	assert.Panics(t, func() { table.At(-1, 0) })
	assert.Panics(t, func() { table.At(0, 2) })
	assert.Panics(t, func() { table.Row(7) })
	assert.Panics(t, func() { table.Column(-1) })
}

// TestTable_Gram tests the SIMD Gram matrix against a gonum matrix product.
func TestTable_Gram(t *testing.T) {
	x, dx := mustBasisGrid(t, 12, 0.8, 0, 257)
	table := mustTable(t, 12, 0.8, 0, x)

	d := table.Dense()
	var want mat.Dense
	want.Mul(d, d.T())
	want.Scale(dx, &want)

	got := table.Gram(dx)
	assert.True(t, mat.EqualApprox(got, &want, 1e-13))

	got32 := table.Gram32(float32(dx))
	assert.True(t, mat.EqualApprox(got32, &want, 1e-5))
}

// TestTable_Integral tests ∫φ_k dx = √(2πα)·(-i)^k·ψ_k(0) for low orders.
func TestTable_Integral(t *testing.T) {
	const alpha = 1.7
	x, dx := mustBasisGrid(t, 8, alpha, -4, 2001)
	table := mustTable(t, 8, alpha, -4, x)

	quarter := math.Pow(math.Pi, 0.25)
	assert.InDelta(t, math.Sqrt(2*alpha)*quarter, table.Integral(0, dx), 1e-10)
	assert.InDelta(t, math.Sqrt(alpha)*quarter, table.Integral(2, dx), 1e-10)
	for _, k := range []int{1, 3, 5, 7} {
		assert.InDelta(t, 0.0, table.Integral(k, dx), 1e-10, "order %d", k)
	}
}
