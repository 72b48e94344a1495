package engine

import (
	"fmt"
	"math"
)

// State is the working state of the orthonormal Hermite recurrence at one ξ.
//
// The envelope-free value of order Order is Sign · Curr · 2^Exponent, the value
// of order Order-1 is Sign · Prev · 2^Exponent. After every step
// max(|Prev|, |Curr|) lies in [0.5, 1) and the dominant one is non-negative.
type State struct {
	Order int

	// Prev and Curr are the bounded values for orders Order-1 and Order.
	Prev float64
	Curr float64

	// Exponent is the binary log-correction shared by Prev and Curr.
	Exponent int

	// Sign is the running sign of the correction factor, +1 or -1.
	Sign float64
}

// Start returns the order-0 state. With the envelope factored out ψ₀ is 1.
func Start() State {
	return State{
		Order: 0,
		Prev:  0,
		Curr:  1,
		Sign:  1,
	}
}

// LogCorrection returns the natural-log magnitude of the shared correction factor.
func (s *State) LogCorrection() float64 {
	return float64(s.Exponent) * math.Ln2
}

// ValueSign returns the sign of the current order's value: -1, 0 or +1.
func (s *State) ValueSign() float64 {
	switch {
	case s.Curr > 0:
		return s.Sign
	case s.Curr < 0:
		return -s.Sign
	default:
		return 0
	}
}

// Step advances the state by one order at ξ.
//
// Order 1 uses the direct formula √2·ξ. Higher orders use
//
//	ψ_{k+1} = √(2/(k+1))·ξ·ψ_k - √(k/(k+1))·ψ_{k-1}
func (s *State) Step(xi float64) error {
	var raw float64
	if s.Order == 0 {
		raw = sqrt2 * xi * s.Curr
	} else {
		k := float64(s.Order)
		a := math.Sqrt(recurrenceNumerator / (k + 1))
		b := math.Sqrt(k / (k + 1))
		raw = a*xi*s.Curr - b*s.Prev
	}

	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return fmt.Errorf("%w: non-finite recurrence value at order %d (xi=%v)",
			ErrNumericInstability, s.Order+1, xi)
	}

	s.Prev, s.Curr = s.Curr, raw
	s.Order++

	return s.renormalize()
}

// renormalize rescales Prev and Curr by a power of two so the larger magnitude
// lands in [0.5, 1). Power-of-two scaling is exact, so no rounding is added.
func (s *State) renormalize() error {
	dominant := s.Curr
	if math.Abs(s.Prev) > math.Abs(s.Curr) {
		dominant = s.Prev
	}
	if dominant == 0 {
		return fmt.Errorf("%w: recurrence collapsed to zero at order %d",
			ErrNumericInstability, s.Order)
	}

	_, exp := math.Frexp(dominant)
	if exp != 0 {
		s.Prev = math.Ldexp(s.Prev, -exp)
		s.Curr = math.Ldexp(s.Curr, -exp)
		s.Exponent += exp
	}

	if dominant < 0 {
		s.Prev, s.Curr = -s.Prev, -s.Curr
		s.Sign = -s.Sign
	}

	return nil
}
