package hermite

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-hermite/internal/engine"
)

// Basis bundles the parameters of a Hermite function basis: orders 0..N
// dilated by Alpha and centered at Mu.
type Basis struct {
	N     int
	Alpha float64
	Mu    float64
}

// NewBasis validates the parameters and returns a Basis.
func NewBasis(n int, alpha, mu float64) (Basis, error) {
	b := Basis{N: n, Alpha: alpha, Mu: mu}
	if err := b.Validate(); err != nil {
		return Basis{}, err
	}
	return b, nil
}

// Validate checks the basis parameters.
func (b Basis) Validate() error {
	if b.N < 0 {
		return fmt.Errorf("%w: order must be non-negative, got %d", ErrInvalidParameter, b.N)
	}
	_, err := engine.NewScale(b.Alpha, b.Mu)
	return err
}

// Evaluate computes orders 0..N at x with the default configuration.
func (b Basis) Evaluate(x []float64) (*Table, error) {
	return Evaluate(b.N, b.Alpha, b.Mu, x)
}

// Single computes order N alone at x.
func (b Basis) Single(x []float64) ([]float64, error) {
	return Single(b.N, b.Alpha, b.Mu, x)
}

// Fourier returns the Fourier transform of orders 0..N at angular
// frequencies omega.
func (b Basis) Fourier(omega []float64) (*SpectralTable, error) {
	return EvaluateFourier(b.N, b.Alpha, b.Mu, omega)
}

// LargestZeroX returns the estimated outermost zero of order N.
func (b Basis) LargestZeroX() (float64, error) {
	return ApproximateLargestZeroX(b.N, b.Alpha, b.Mu)
}

// LargestExtremumX returns the estimated outermost extremum of order N.
func (b Basis) LargestExtremumX() (float64, error) {
	return ApproximateLargestExtremumX(b.N, b.Alpha, b.Mu)
}

// FadeoutX returns the estimated fade-out point of order N.
func (b Basis) FadeoutX() (float64, error) {
	return ApproximateFadeoutX(b.N, b.Alpha, b.Mu)
}

// Support returns the interval outside of which every order up to N is below
// machine epsilon relative to its peak. The fade-out point grows with the
// order, so order N bounds the whole basis.
func (b Basis) Support() (lo, hi float64, err error) {
	hi, err = b.FadeoutX()
	if err != nil {
		return 0, 0, err
	}
	return Mirror(hi, b.Mu), hi, nil
}

// Grid returns num evenly spaced points spanning Support, endpoints included.
// num must be at least 2.
func (b Basis) Grid(num int) ([]float64, error) {
	if num < 2 {
		return nil, fmt.Errorf("%w: grid needs at least 2 points, got %d", ErrInvalidParameter, num)
	}
	lo, hi, err := b.Support()
	if err != nil {
		return nil, err
	}
	return floats.Span(make([]float64, num), lo, hi), nil
}
