package hermite

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-hermite/internal/engine"
)

// TestSingle_MatchesTableRow tests that Single reproduces a table row bit for bit.
func TestSingle_MatchesTableRow(t *testing.T) {
	const nMax = 400
	x := make([]float64, 300)
	for i := range x {
		x[i] = -60 + 120*float64(i)/float64(len(x)-1)
	}
	table := mustTable(t, nMax, 1.25, 3, x)

	for _, n := range []int{0, 1, 2, 57, 399, nMax} {
		got, err := Single(n, 1.25, 3, x)
		require.NoError(t, err)
		assert.Equal(t, table.Row(n), got, "order %d", n)
	}
}

// TestSingle_Parallel tests that chunked evaluation of one order is identical.
func TestSingle_Parallel(t *testing.T) {
	x := make([]float64, 1000)
	for i := range x {
		x[i] = float64(i)*0.05 - 25
	}

	serial, err := New(&Config{})
	require.NoError(t, err)
	parallel, err := New(&Config{Workers: 3, ChunkSize: 100, EnableParallel: true})
	require.NoError(t, err)

	want, err := serial.Single(777, 1, 0, x)
	require.NoError(t, err)
	got, err := parallel.Single(777, 1, 0, x)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestSingle_Validation tests the shared precondition checks.
func TestSingle_Validation(t *testing.T) {
	_, err := Single(-1, 1, 0, []float64{0})
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Single(3, math.Inf(1), 0, []float64{0})
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Single(3, 1, 0, []float64{})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

// TestSingle_BatchError tests that a failure marks only the affected entry.
func TestSingle_BatchError(t *testing.T) {
	e, err := New(nil)
	require.NoError(t, err)
	e.final = func(n int, arg engine.Argument) (float64, error) {
		if arg.X < 0 {
			return 0, &engine.OrderError{Order: n, Err: engine.ErrNumericOverflow}
		}
		return engine.Final(n, arg)
	}

	got, err := e.Single(5, 1, 0, []float64{-1, 0.5, -2})
	var be *BatchError
	require.ErrorAs(t, err, &be)
	assert.ErrorIs(t, err, ErrNumericOverflow)
	require.Len(t, be.Failures, 2)
	assert.Equal(t, 0, be.Failures[0].Index)
	assert.Equal(t, 2, be.Failures[1].Index)
	assert.Equal(t, "single", be.Failures[0].Op)

	assert.True(t, math.IsNaN(got[0]))
	assert.True(t, math.IsNaN(got[2]))
	want, err := engine.Final(5, mustArg(t, 1, 0, 0.5))
	require.NoError(t, err)
	assert.Equal(t, want, got[1])
}

func mustArg(t *testing.T, alpha, mu, x float64) engine.Argument {
	t.Helper()
	s, err := engine.NewScale(alpha, mu)
	require.NoError(t, err)
	arg, err := s.Normalize(x)
	require.NoError(t, err)
	return arg
}
