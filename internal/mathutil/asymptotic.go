// Package mathutil provides asymptotic approximations for Hermite functions.
//
// All positions are on the dimensionless axis ξ of the standard Hermite
// functions ψ_n(ξ) and refer to the positive side; the negative side follows
// by symmetry. The estimates are closed-form and carry no convergence loop.
package mathutil

import "math"

// LargestZero approximates the outermost positive zero of ψ_n.
//
// It uses the Airy expansion of the Hermite polynomial near the turning point
// √h, h = 2n + 1:
//
//	ξ ≈ √h + 2^(-1/3)·a₁·h^(-1/6) - 2^(-2/3)·a₁²/10·h^(-5/6)
//
// The estimate lies slightly outside the true zero; the absolute error is
// below 0.05 at n = 1 and decays like n^(-5/6).
//
// Order 0 has no zero; 0 is returned.
func LargestZero(n int) float64 {
	if n < 1 {
		return 0
	}
	h := orderScale*float64(n) + 1
	a := airyFirstZero
	c1 := cubeRootHalf * a
	c2 := -cubeRootQuart * a * a / secondOrderDiv
	return edgeExpansion(h, c1, c2)
}

// LargestExtremum approximates the position of the outermost positive
// extremum of ψ_n.
//
// Same expansion as LargestZero with the first zero a₁' of Ai':
//
//	ξ ≈ √h + 2^(-1/3)·a₁'·h^(-1/6) - 2^(-2/3)·(a₁'³ - 1)/(10·a₁')·h^(-5/6)
//
// The absolute error is below 0.008 at n = 1 and decays like n^(-5/6).
//
// Order 0 is the Gaussian with its only extremum at 0.
func LargestExtremum(n int) float64 {
	if n < 1 {
		return 0
	}
	h := orderScale*float64(n) + 1
	a := airyFirstDerivZero
	c1 := cubeRootHalf * a
	c2 := -cubeRootQuart * (a*a*a - 1) / (secondOrderDiv * a)
	return edgeExpansion(h, c1, c2)
}

// edgeExpansion evaluates √h + c1·h^(-1/6) + c2·h^(-5/6).
func edgeExpansion(h, c1, c2 float64) float64 {
	return math.Sqrt(h) + c1*math.Pow(h, edgeTermPower1) + c2*math.Pow(h, edgeTermPower2)
}

// Fadeout approximates the position beyond which |ψ_n| stays below machine
// epsilon relative to its peak.
//
// Beyond the turning point T = √h the WKB approximation gives
//
//	ln(peak / |ψ_n(ξ)|) ≈ I(ξ) + ¼·ln((ξ² - T²) / h^(1/3)) + const
//	I(ξ) = ξ/2·√(ξ² - T²) - T²/2·ln((ξ + √(ξ² - T²)) / T)
//
// The equation is solved by a fixed number of Newton corrections started on
// the outer side of the root, so the result is never short of the true
// fade-out by more than rounding. The absolute error is below 0.03 for all
// orders (largest at n = 0) and decreases with n.
func Fadeout(n int) float64 {
	if n < 0 {
		n = 0
	}
	h := orderScale*float64(n) + 1
	t := math.Sqrt(h)

	// the Airy estimate is valid close to the turning point, the Gaussian bound
	// √(T² + 2L) holds for every order; the larger one is on the outer side
	xi := math.Max(
		t+airyFadeoutArg*cubeRootHalf*math.Pow(h, edgeTermPower1),
		math.Sqrt(h+halfDivisor*fadeoutTargetLog),
	)

	for range fadeoutNewtonSteps {
		g, dg := wkbTail(xi, h)
		xi -= (g - fadeoutTargetLog) / dg
	}
	return xi
}

// wkbTail returns the WKB tail functional and its derivative at ξ > √h.
func wkbTail(xi, h float64) (g, dg float64) {
	s2 := xi*xi - h
	s := math.Sqrt(s2)
	t := math.Sqrt(h)

	decay := xi/halfDivisor*s - h/halfDivisor*math.Log((xi+s)/t)
	amplitude := wkbAmplitudePower * math.Log(s2/math.Pow(h, wkbTurningPower))

	g = decay + amplitude
	dg = s + xi/(halfDivisor*s2)
	return g, dg
}
