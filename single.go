package hermite

import (
	"fmt"
	"math"
)

// Single computes φ_n(x_i; α, μ) for one order n with the default
// configuration. It keeps only two recurrence values per x, so memory is
// O(len(x)) regardless of n.
func Single(n int, alpha, mu float64, x []float64) ([]float64, error) {
	e, err := New(nil)
	if err != nil {
		return nil, err
	}
	return e.Single(n, alpha, mu, x)
}

// Single computes φ_n(x_i; α, μ) for one order n. The result equals
// row n of Evaluate bit for bit. Failure handling matches Evaluate: failed
// entries are NaN and a *BatchError is returned alongside the values.
func (e *Evaluator) Single(n int, alpha, mu float64, x []float64) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: order must be non-negative, got %d", ErrInvalidParameter, n)
	}
	scale, args, err := normalizeAll(alpha, mu, x)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	errs := e.forEach(len(args), func(i int) error {
		v, err := e.final(n, args[i])
		if err != nil {
			out[i] = math.NaN()
			return err
		}
		out[i] = v
		return nil
	})

	return out, e.collect("single", n, scale, args, errs)
}
