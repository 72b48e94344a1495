// Package engine implements the log-domain evaluation of Hermite functions.
//
// A Hermite function of order k is represented as
//
//	ψ_k(ξ) = Sign · Curr · 2^Exponent · exp(LogPrefactor)
//
// where Curr is kept bounded by one, Exponent absorbs the growth and decay of
// the orthonormal recurrence, and LogPrefactor carries the Gaussian and the
// dilation envelope. Only the final Combine step leaves the log domain.
package engine

import (
	"fmt"
	"math"
)

// Scale holds the dilation metadata shared by every x of one call.
// It depends on α and μ only, never on the order.
type Scale struct {
	Alpha float64
	Mu    float64

	// LogEnvelope is ln(π^(-1/4) · α^(-1/2)).
	LogEnvelope float64
}

// NewScale validates α and μ and precomputes the envelope.
func NewScale(alpha, mu float64) (Scale, error) {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return Scale{}, fmt.Errorf("%w: alpha must be finite, got %v", ErrInvalidParameter, alpha)
	}
	if alpha <= 0 {
		return Scale{}, fmt.Errorf("%w: alpha must be positive, got %v", ErrInvalidParameter, alpha)
	}
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return Scale{}, fmt.Errorf("%w: mu must be finite, got %v", ErrInvalidParameter, mu)
	}

	return Scale{
		Alpha:       alpha,
		Mu:          mu,
		LogEnvelope: -logPiQuarter - math.Log(alpha)/halfDivisor,
	}, nil
}

// Argument is one normalized x value.
type Argument struct {
	// X is the raw argument.
	X float64

	// Xi is the dimensionless recurrence variable (x - μ) / α.
	Xi float64

	// LogPrefactor is ln(π^(-1/4) · α^(-1/2) · exp(-ξ²/2)).
	LogPrefactor float64
}

// Normalize maps x onto the recurrence axis.
func (s Scale) Normalize(x float64) (Argument, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Argument{}, fmt.Errorf("%w: x must be finite, got %v", ErrInvalidParameter, x)
	}

	xi := (x - s.Mu) / s.Alpha

	return Argument{
		X:            x,
		Xi:           xi,
		LogPrefactor: s.LogEnvelope - xi*xi/gaussianExponentDivisor,
	}, nil
}

// Vanishes reports whether every order 0..nMax underflows to exactly zero at
// this argument.
//
// Each recurrence step grows the bounded pair by at most √2·|ξ| + 1, so
// ln|ψ_k| ≤ LogPrefactor + k·ln(1 + √2·|ξ|) for all k. When that bound is
// below the subnormal range no order can be represented.
func (a Argument) Vanishes(nMax int) bool {
	if math.IsInf(a.Xi, 0) || math.IsInf(a.LogPrefactor, -1) {
		return true
	}
	growth := float64(nMax) * math.Log1p(sqrt2*math.Abs(a.Xi))
	return a.LogPrefactor+growth < logUnderflow
}
