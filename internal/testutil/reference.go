package testutil

import (
	"math"
	"math/big"
)

// referencePrecision is the mantissa size in bits of the reference evaluator.
const referencePrecision = 512

// ReferenceMaxXi bounds the reference evaluator's |ξ| so that the float64
// Gaussian factor stays in the normal range.
const ReferenceMaxXi = 35.0

// ReferenceHermiteFunction evaluates α^(-1/2)·ψ_n((x-μ)/α) with the physicists'
// polynomial recurrence H_{k+1} = 2ξH_k - 2kH_{k-1} and the factorial
// normalization carried out in 512-bit arithmetic. It shares no code path
// with the log-domain engine and is slow; use it only in tests.
//
// Only the Gaussian factor is evaluated in float64, which limits the
// reference to |ξ| ≤ ReferenceMaxXi and a relative accuracy of about 1e-15.
func ReferenceHermiteFunction(n int, alpha, mu, x float64) float64 {
	xiF := (x - mu) / alpha
	if math.Abs(xiF) > ReferenceMaxXi {
		panic("testutil: reference argument out of range")
	}

	xi := newBig(xiF)
	two := newBig(2)
	twoXi := newBig(0).Mul(two, xi)

	// H_n(ξ)
	hPrev := newBig(0)
	hCurr := newBig(1)
	for k := range n {
		// H_{k+1} = 2ξH_k - 2kH_{k-1}
		next := newBig(0).Mul(twoXi, hCurr)
		sub := newBig(0).Mul(newBig(float64(2*k)), hPrev)
		next.Sub(next, sub)
		hPrev, hCurr = hCurr, next
	}

	// sqrt(2^n n!)
	norm := newBig(1)
	for k := 1; k <= n; k++ {
		norm.Mul(norm, newBig(float64(2*k)))
	}
	norm.Sqrt(norm)

	value := newBig(0).Quo(hCurr, norm)
	envelope := math.Pow(math.Pi, -0.25) * math.Exp(-xiF*xiF/2) / math.Sqrt(alpha)
	value.Mul(value, newBig(envelope))

	f, _ := value.Float64()
	return f
}

func newBig(v float64) *big.Float {
	return new(big.Float).SetPrec(referencePrecision).SetFloat64(v)
}
