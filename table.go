package hermite

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-hermite/internal/simdops"
)

// Table holds φ_k(x_i) for orders 0..NMax and a vector of arguments.
// Values are stored row-major, one row per order.
type Table struct {
	nMax   int
	x      []float64
	values []float64
}

// newTable allocates a table and copies x.
func newTable(nMax int, x []float64) *Table {
	return &Table{
		nMax:   nMax,
		x:      append([]float64(nil), x...),
		values: make([]float64, (nMax+1)*len(x)),
	}
}

// NMax returns the highest order in the table.
func (t *Table) NMax() int { return t.nMax }

// Orders returns the number of rows, NMax+1.
func (t *Table) Orders() int { return t.nMax + 1 }

// Len returns the number of arguments.
func (t *Table) Len() int { return len(t.x) }

// X returns a copy of the arguments.
func (t *Table) X() []float64 {
	return append([]float64(nil), t.x...)
}

// At returns φ_order(x[i]).
func (t *Table) At(order, i int) float64 {
	t.check(order, i)
	return t.values[order*len(t.x)+i]
}

// Row returns a copy of the values of one order across all arguments.
func (t *Table) Row(order int) []float64 {
	return append([]float64(nil), t.row(order)...)
}

// Column returns a copy of the values of all orders at x[i].
func (t *Table) Column(i int) []float64 {
	t.check(0, i)
	col := make([]float64, t.Orders())
	for k := range col {
		col[k] = t.values[k*len(t.x)+i]
	}
	return col
}

// Dense returns the table as an (NMax+1) × Len matrix. The matrix owns a
// copy of the values.
func (t *Table) Dense() *mat.Dense {
	return mat.NewDense(t.Orders(), len(t.x), append([]float64(nil), t.values...))
}

// Gram returns the matrix G[j][k] = dx · Σ_i φ_j(x_i)·φ_k(x_i).
// On a uniform grid with spacing dx covering the support this approximates
// the identity, the discrete form of orthonormality.
func (t *Table) Gram(dx float64) *mat.SymDense {
	g := mat.NewSymDense(t.Orders(), nil)
	simdops.Gram(t.rows(), dx, g.SetSym)
	return g
}

// Gram32 is like Gram with float32 accumulation, for callers that trade
// accuracy for speed on large tables.
func (t *Table) Gram32(dx float32) *mat.SymDense {
	rows := make([][]float32, t.Orders())
	for k := range rows {
		src := t.row(k)
		rows[k] = make([]float32, len(src))
		for i, v := range src {
			rows[k][i] = float32(v)
		}
	}

	g := mat.NewSymDense(t.Orders(), nil)
	simdops.Gram(rows, dx, func(i, j int, v float32) {
		g.SetSym(i, j, float64(v))
	})
	return g
}

// Integral returns dx · Σ_i φ_order(x_i), the rectangle-rule integral of one
// order over a uniform grid.
func (t *Table) Integral(order int, dx float64) float64 {
	return dx * simdops.For[float64]().Sum(t.row(order))
}

func (t *Table) row(order int) []float64 {
	t.check(order, 0)
	n := len(t.x)
	return t.values[order*n : (order+1)*n]
}

func (t *Table) rows() [][]float64 {
	rows := make([][]float64, t.Orders())
	for k := range rows {
		rows[k] = t.row(k)
	}
	return rows
}

func (t *Table) check(order, i int) {
	if order < 0 || order > t.nMax {
		panic(fmt.Sprintf("hermite: order %d out of range [0, %d]", order, t.nMax))
	}
	if i < 0 || i >= len(t.x) {
		panic(fmt.Sprintf("hermite: index %d out of range [0, %d)", i, len(t.x)))
	}
}
