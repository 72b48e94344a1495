package engine

import (
	"fmt"
	"math"
)

// Combine turns a recurrence state and the argument's log-prefactor into the
// final signed value.
//
// The prefactor is split into q·ln2 + r with |r| ≤ ln2/2 so that only the small
// remainder is exponentiated and the power of two is applied exactly through
// math.Ldexp. Magnitudes below the subnormal range return exactly 0; magnitudes
// above math.MaxFloat64 return ErrNumericOverflow.
func Combine(s *State, logPrefactor float64) (float64, error) {
	if s.Curr == 0 || math.IsInf(logPrefactor, -1) {
		return 0, nil
	}
	if math.IsNaN(logPrefactor) || math.IsInf(logPrefactor, 1) {
		return 0, fmt.Errorf("%w: invalid log-prefactor %v at order %d",
			ErrNumericInstability, logPrefactor, s.Order)
	}

	q := math.Round(logPrefactor / math.Ln2)
	r := logPrefactor - q*math.Ln2

	// the log magnitude is checked before anything is exponentiated
	logMag := (float64(s.Exponent)+q)*math.Ln2 + r + math.Log(math.Abs(s.Curr))
	if logMag < logUnderflow {
		return 0, nil
	}
	if logMag > logOverflow {
		return 0, fmt.Errorf("%w: log-magnitude %v at order %d", ErrNumericOverflow, logMag, s.Order)
	}

	value := math.Ldexp(s.Sign*s.Curr*math.Exp(r), s.Exponent+int(q))
	if math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: log-magnitude %v at order %d", ErrNumericOverflow, logMag, s.Order)
	}
	return value, nil
}
