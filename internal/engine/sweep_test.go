package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-hermite/internal/testutil"
)

const (
	// tolerances against the 512-bit reference
	referenceAtol = 1e-13
	referenceRtol = testutil.ReferenceTolerance

	// values below this are skipped by relative checks
	subnormalGuard = 1e-280
)

func mustArgument(t testing.TB, alpha, mu, x float64) Argument {
	t.Helper()
	s, err := NewScale(alpha, mu)
	require.NoError(t, err)
	arg, err := s.Normalize(x)
	require.NoError(t, err)
	return arg
}

// TestSweep_LowOrdersClosedForm compares orders 0..3 with their closed forms.
func TestSweep_LowOrdersClosedForm(t *testing.T) {
	c := math.Pow(math.Pi, -0.25)
	closed := []func(xi float64) float64{
		func(xi float64) float64 { return c * math.Exp(-xi*xi/2) },
		func(xi float64) float64 { return c * math.Sqrt2 * xi * math.Exp(-xi*xi/2) },
		func(xi float64) float64 { return c / math.Sqrt2 * (2*xi*xi - 1) * math.Exp(-xi*xi/2) },
		func(xi float64) float64 { return c / math.Sqrt(3) * (2*xi*xi*xi - 3*xi) * math.Exp(-xi*xi/2) },
	}

	for _, xi := range []float64{-6.0, -1.3, 0.0, 0.5, 1.0, 2.75, 9.0} {
		arg := mustArgument(t, 1, 0, xi)
		dst := make([]float64, len(closed))
		require.NoError(t, Sweep(dst, 1, len(closed)-1, arg))

		for k, f := range closed {
			testutil.AssertClose(t, f(xi), dst[k], 1e-15, 1e-13, "order %d xi=%v", k, xi)
		}
	}
}

// TestSweep_MatchesReference compares orders 0..50 with the arbitrary-precision reference.
func TestSweep_MatchesReference(t *testing.T) {
	const nMax = 50
	params := []struct {
		alpha, mu float64
	}{
		{1, 0},
		{0.5, 0},
		{2, -3},
		{20, 150},
	}
	xis := []float64{-12.0, -7.3, -2.5, -0.4, 0, 0.1, 1.9, 5.5, 8.25, 10.0, 14.0}

	for _, p := range params {
		for _, xi := range xis {
			x := p.mu + p.alpha*xi
			arg := mustArgument(t, p.alpha, p.mu, x)
			dst := make([]float64, nMax+1)
			require.NoError(t, Sweep(dst, 1, nMax, arg))

			for k := 0; k <= nMax; k++ {
				want := testutil.ReferenceHermiteFunction(k, p.alpha, p.mu, x)
				testutil.AssertClose(t, want, dst[k], referenceAtol, referenceRtol,
					"order %d alpha=%v mu=%v x=%v", k, p.alpha, p.mu, x)
			}
		}
	}
}

// TestSweep_RecurrenceConsistency verifies that consecutive outputs satisfy
// √((k+1)/2)·ψ_{k+1} = ξ·ψ_k - √(k/2)·ψ_{k-1}.
func TestSweep_RecurrenceConsistency(t *testing.T) {
	const nMax = 1500
	for _, xi := range []float64{-30.0, -3.3, 0.7, 12.0, 50.0} {
		arg := mustArgument(t, 1, 0, xi)
		dst := make([]float64, nMax+1)
		require.NoError(t, Sweep(dst, 1, nMax, arg))

		for k := 1; k < nMax; k++ {
			// subnormal values carry too few bits for a relative check
			if math.Min(math.Abs(dst[k-1]), math.Min(math.Abs(dst[k]), math.Abs(dst[k+1]))) < subnormalGuard {
				continue
			}
			lhs := math.Sqrt(float64(k+1)/2) * dst[k+1]
			rhs := xi*dst[k] - math.Sqrt(float64(k)/2)*dst[k-1]
			scale := math.Abs(xi*dst[k]) + math.Abs(math.Sqrt(float64(k)/2)*dst[k-1]) + 1e-300
			assert.LessOrEqual(t, math.Abs(lhs-rhs)/scale, 1e-12, "xi=%v k=%d", xi, k)
		}
	}
}

// TestSweep_Stride tests that strided output matches contiguous output.
func TestSweep_Stride(t *testing.T) {
	const (
		nMax   = 20
		stride = 3
	)
	arg := mustArgument(t, 1.5, 0.25, 2.0)

	contiguous := make([]float64, nMax+1)
	require.NoError(t, Sweep(contiguous, 1, nMax, arg))

	strided := make([]float64, nMax*stride+1)
	for i := range strided {
		strided[i] = -42
	}
	require.NoError(t, Sweep(strided, stride, nMax, arg))

	for k := 0; k <= nMax; k++ {
		assert.Equal(t, contiguous[k], strided[k*stride])
		if k < nMax {
			assert.Equal(t, -42.0, strided[k*stride+1], "gap overwritten at order %d", k)
		}
	}
}

// TestSweep_Vanishing tests that far-tail arguments are written as exact zeros.
func TestSweep_Vanishing(t *testing.T) {
	arg := mustArgument(t, 1, 0, 1e5)
	require.True(t, arg.Vanishes(100))

	dst := make([]float64, 101)
	for i := range dst {
		dst[i] = 1
	}
	require.NoError(t, Sweep(dst, 1, 100, arg))
	for k, v := range dst {
		assert.Equal(t, 0.0, v, "order %d", k)
	}
}

// TestSweep_HighOrderFinite tests n = 3000 across the oscillatory region and
// well beyond the fade-out point.
func TestSweep_HighOrderFinite(t *testing.T) {
	const nMax = 3000
	bound := math.Pow(math.Pi, -0.25)
	dst := make([]float64, nMax+1)

	for xi := -120.0; xi <= 120.0; xi += 0.37 {
		arg := mustArgument(t, 1, 0, xi)
		require.NoError(t, Sweep(dst, 1, nMax, arg), "xi=%v", xi)
		testutil.AssertNoNaNOrInf(t, dst)
		testutil.AssertAllInRange(t, dst, -bound*(1+1e-12), bound*(1+1e-12))
	}
}

// TestSweep_NegativeOrder tests that a negative order is rejected.
func TestSweep_NegativeOrder(t *testing.T) {
	arg := mustArgument(t, 1, 0, 0)
	assert.ErrorIs(t, Sweep(make([]float64, 1), 1, -1, arg), ErrInvalidParameter)

	_, err := Final(-2, arg)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

// TestFinal_MatchesSweep tests that Final reproduces the last sweep row bit for bit.
func TestFinal_MatchesSweep(t *testing.T) {
	const nMax = 333
	for _, xi := range []float64{-20.0, -1.0, 0.0, 4.4, 25.8, 40.0} {
		arg := mustArgument(t, 1, 0, xi)
		dst := make([]float64, nMax+1)
		require.NoError(t, Sweep(dst, 1, nMax, arg))

		for _, n := range []int{0, 1, 2, 57, nMax} {
			got, err := Final(n, arg)
			require.NoError(t, err)
			assert.Equal(t, dst[n], got, "xi=%v n=%d", xi, n)
		}
	}
}

// BenchmarkSweep2000 measures a full sweep to order 2000 at one argument.
func BenchmarkSweep2000(b *testing.B) {
	arg := mustArgument(b, 1, 0, 17.5)
	dst := make([]float64, 2001)
	for b.Loop() {
		if err := Sweep(dst, 1, 2000, arg); err != nil {
			b.Fatal(err)
		}
	}
}
