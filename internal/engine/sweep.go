package engine

import "fmt"

// Sweep evaluates orders 0..nMax at one argument and writes order k to
// dst[k*stride]. dst must hold at least nMax*stride+1 elements.
//
// On error the remaining orders are left untouched and the returned
// *OrderError names the failing order; the caller owns the policy for the
// affected column.
func Sweep(dst []float64, stride, nMax int, arg Argument) error {
	if nMax < 0 {
		return fmt.Errorf("%w: order must be non-negative, got %d", ErrInvalidParameter, nMax)
	}

	if arg.Vanishes(nMax) {
		for k := 0; k <= nMax; k++ {
			dst[k*stride] = 0
		}
		return nil
	}

	s := Start()
	for k := 0; ; k++ {
		v, err := Combine(&s, arg.LogPrefactor)
		if err != nil {
			return &OrderError{Order: k, Err: err}
		}
		dst[k*stride] = v

		if k == nMax {
			return nil
		}
		if err := s.Step(arg.Xi); err != nil {
			return &OrderError{Order: k + 1, Err: err}
		}
	}
}

// Final evaluates only order n at one argument, keeping O(1) state.
func Final(n int, arg Argument) (float64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: order must be non-negative, got %d", ErrInvalidParameter, n)
	}
	if arg.Vanishes(n) {
		return 0, nil
	}

	s := Start()
	for s.Order < n {
		if err := s.Step(arg.Xi); err != nil {
			return 0, &OrderError{Order: s.Order + 1, Err: err}
		}
	}
	v, err := Combine(&s, arg.LogPrefactor)
	if err != nil {
		return 0, &OrderError{Order: n, Err: err}
	}
	return v, nil
}
