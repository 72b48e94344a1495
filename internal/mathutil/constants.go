package mathutil

// Airy function constants
// From Abramowitz & Stegun, "Handbook of Mathematical Functions", Table 10.13

const (
	// airyFirstZero is a₁, the zero of Ai closest to the origin.
	airyFirstZero = -2.338107410459767

	// airyFirstDerivZero is a₁', the zero of Ai' closest to the origin.
	airyFirstDerivZero = -1.018792971647471

	// airyFadeoutArg is the Airy argument where Ai has decayed by machine
	// epsilon relative to its largest extremum. Used as the outer starting
	// point of the fade-out refinement.
	airyFadeoutArg = 14.3
)

// Edge expansion scaling for h = 2n + 1
const (
	cubeRootHalf   = 0.7937005259840998 // 2^(-1/3)
	cubeRootQuart  = 0.6299605249474366 // 2^(-2/3)
	edgeTermPower1 = -1.0 / 6.0         // exponent of the Airy term
	edgeTermPower2 = -5.0 / 6.0         // exponent of the second-order term
	secondOrderDiv = 10.0               // divisor in the second-order coefficients
	orderScale     = 2.0                // h = orderScale·n + 1
)

// WKB fade-out constants
const (
	// fadeoutTargetLog is the value of the WKB tail functional at which |ψ_n|
	// equals machine epsilon times its peak. It equals -ln(ε) - 0.5278, the
	// offset absorbing the Airy peak amplitude; calibrated against high
	// precision evaluations for orders 0..10000.
	fadeoutTargetLog = 35.5159

	// fadeoutNewtonSteps is the fixed number of Newton corrections applied to
	// the starting estimate. The functional is convex beyond the root, so the
	// corrections approach it monotonically from the outer side.
	fadeoutNewtonSteps = 3

	// wkbAmplitudePower is the 1/4 power of the WKB amplitude factor.
	wkbAmplitudePower = 0.25

	// wkbTurningPower is the exponent of h in the amplitude normalization.
	wkbTurningPower = 1.0 / 3.0

	halfDivisor = 2.0
)
