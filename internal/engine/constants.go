package engine

import "math"

// Envelope constants
const (
	// logPiQuarter is ln(π)/4, the log of the inverse of the order-0 amplitude π^(-1/4).
	logPiQuarter = 0.28618247146235004

	// gaussianExponentDivisor appears in the Gaussian factor exp(-ξ²/2).
	gaussianExponentDivisor = 2.0

	// halfDivisor is used for the α^(-1/2) dilation factor.
	halfDivisor = 2.0
)

// Recurrence constants
const (
	// sqrt2 is the order-1 coefficient: ψ₁(ξ) = √2 ξ ψ₀(ξ).
	sqrt2 = math.Sqrt2

	// recurrenceNumerator is the numerator of the √(2/(k+1)) coefficient.
	recurrenceNumerator = 2.0
)

// Representable range of float64 in the natural-log domain.
const (
	// logUnderflow is ln(2^-1074), the log of the smallest subnormal.
	// Magnitudes below it round to exactly zero.
	logUnderflow = -744.4400719213812

	// logOverflow is ln(math.MaxFloat64).
	logOverflow = 709.782712893384
)
