// Package hermite evaluates dilated and shifted Hermite functions to very
// high order without overflow or underflow.
//
// The functions are
//
//	φ_n(x; α, μ) = α^(-1/2) · ψ_n((x - μ) / α)
//	ψ_n(ξ)       = (2^n · n! · √π)^(-1/2) · H_n(ξ) · exp(-ξ²/2)
//
// and form an orthonormal basis of L²(ℝ) for fixed α and μ. They are the
// eigenfunctions of the Fourier transform, which makes them a natural basis
// for least-squares estimates of a spectrum from irregular samples.
//
// At order 2000 the Hermite polynomial, the Gaussian and the factorial
// normalizer each leave the float64 range. The evaluator never forms them:
// it runs the orthonormal three-term recurrence on a bounded mantissa with an
// exact binary exponent, keeps ln of the Gaussian envelope separately and
// leaves the log domain in a single final exponentiation per value.
//
// # Quick Start
//
// Evaluate orders 0..n at a vector of points:
//
//	table, err := hermite.Evaluate(100, 2.0, 0.5, x)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v := table.At(42, 0) // order 42 at x[0]
//
// Bundle the basis parameters and derive the meaningful evaluation window:
//
//	b, err := hermite.NewBasis(25, 20.0, 150.0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	grid, err := b.Grid(1000) // spans the mirrored fade-out points
//	if err != nil {
//	    log.Fatal(err)
//	}
//	table, err := b.Evaluate(grid)
//
// # Special Points
//
// [ApproximateLargestZeroX], [ApproximateLargestExtremumX] and
// [ApproximateFadeoutX] return closed-form estimates of the outermost zero,
// the outermost extremum and the point beyond which |φ_n| is below machine
// epsilon relative to its peak. All three lie on the right of the center;
// [Mirror] gives the left-side counterpart.
//
// # Concurrency
//
// Distinct x values are independent. An [Evaluator] created with
// EnableParallel splits the argument vector into chunks processed by a
// bounded pool of goroutines; the order loop inside one x stays sequential.
// Results are bit-identical to a serial run.
//
// # Errors
//
// Precondition violations fail the whole call with [ErrInvalidParameter]
// before any work is done. Numeric failures are reported per x in a
// [*BatchError]; the affected table column is NaN and all other columns are
// valid.
package hermite
