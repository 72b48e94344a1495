// Package testutil provides reusable test helper functions for Hermite function tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance   = 1e-10 // quadrature and discrete orthonormality
	ReferenceTolerance = 1e-10 // relative error against the 512-bit reference
	BoundTolerance     = 1e-13 // relative slack on the amplitude bound
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%g is outside range [%g, %g]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%g, actual=%g)",
		relError, tolerance, expected, actual)
}

// AssertClose verifies |actual - expected| ≤ atol + rtol·|expected|, the
// mixed criterion used for values that cross zero.
func AssertClose(t *testing.T, expected, actual, atol, rtol float64, msgAndArgs ...any) bool {
	t.Helper()
	diff := math.Abs(actual - expected)
	limit := atol + rtol*math.Abs(expected)
	if diff > limit {
		return assert.Fail(t, "values not close",
			"expected=%g actual=%g diff=%e limit=%e", expected, actual, diff, limit)
	}
	return true
}

// AssertIdentity verifies that a square matrix is the identity within atol.
func AssertIdentity(t *testing.T, m mat.Matrix, atol float64) bool {
	t.Helper()
	r, c := m.Dims()
	if !assert.Equal(t, r, c, "matrix is not square") {
		return false
	}
	if !mat.EqualApprox(m, identity(r), atol) {
		worst, wi, wj := 0.0, 0, 0
		for i := range r {
			for j := range c {
				want := 0.0
				if i == j {
					want = 1
				}
				if d := math.Abs(m.At(i, j) - want); d > worst {
					worst, wi, wj = d, i, j
				}
			}
		}
		return assert.Fail(t, "matrix is not the identity",
			"largest deviation %e at (%d,%d)", worst, wi, wj)
	}
	return true
}

func identity(n int) *mat.DiagDense {
	d := make([]float64, n)
	for i := range d {
		d[i] = 1
	}
	return mat.NewDiagDense(n, d)
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %g is outside range [%g, %g]", value, minVal, maxVal)
	}
	return true
}
