package hermite

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/tphakala/go-hermite/internal/engine"
)

// SpectralTable holds the Fourier transform of orders 0..NMax at a vector of
// angular frequencies, row-major like Table.
type SpectralTable struct {
	nMax   int
	omega  []float64
	values []complex128
}

// NMax returns the highest order in the table.
func (s *SpectralTable) NMax() int { return s.nMax }

// Len returns the number of frequencies.
func (s *SpectralTable) Len() int { return len(s.omega) }

// Omega returns a copy of the angular frequencies.
func (s *SpectralTable) Omega() []float64 {
	return append([]float64(nil), s.omega...)
}

// At returns the transform of order n at omega[i].
func (s *SpectralTable) At(order, i int) complex128 {
	if order < 0 || order > s.nMax || i < 0 || i >= len(s.omega) {
		panic(fmt.Sprintf("hermite: spectral index (%d, %d) out of range", order, i))
	}
	return s.values[order*len(s.omega)+i]
}

// Row returns a copy of the transform of one order across all frequencies.
func (s *SpectralTable) Row(order int) []complex128 {
	if order < 0 || order > s.nMax {
		panic(fmt.Sprintf("hermite: order %d out of range [0, %d]", order, s.nMax))
	}
	n := len(s.omega)
	return append([]complex128(nil), s.values[order*n:(order+1)*n]...)
}

// EvaluateFourier computes the continuous Fourier transform of φ_k(·; α, μ)
// for k in 0..nMax with the default configuration.
func EvaluateFourier(nMax int, alpha, mu float64, omega []float64) (*SpectralTable, error) {
	e, err := New(nil)
	if err != nil {
		return nil, err
	}
	return e.EvaluateFourier(nMax, alpha, mu, omega)
}

// EvaluateFourier computes the continuous Fourier transform of φ_k(·; α, μ)
// for k in 0..nMax at the angular frequencies omega.
//
// With the unitary convention F[f](ω) = (2π)^(-1/2) ∫ f(x)·exp(-iωx) dx the
// transform is known in closed form:
//
//	F[φ_k](ω) = (-i)^k · exp(-iωμ) · √α · ψ_k(αω) = (-i)^k · exp(-iωμ) · φ_k(ω; 1/α, 0)
//
// so the magnitudes come from the same stable evaluation as Evaluate.
func (e *Evaluator) EvaluateFourier(nMax int, alpha, mu float64, omega []float64) (*SpectralTable, error) {
	if _, err := engine.NewScale(alpha, mu); err != nil {
		return nil, err
	}
	if 1/alpha > math.MaxFloat64 {
		return nil, fmt.Errorf("%w: alpha %v too small for a spectral scale", ErrInvalidParameter, alpha)
	}

	mag, err := e.Evaluate(nMax, 1/alpha, 0, omega)
	if mag == nil {
		return nil, err
	}

	n := len(omega)
	s := &SpectralTable{
		nMax:   nMax,
		omega:  mag.x,
		values: make([]complex128, len(mag.values)),
	}

	shift := make([]complex128, n)
	for i, w := range omega {
		shift[i] = cmplx.Exp(complex(0, -w*mu))
	}

	for k := 0; k <= nMax; k++ {
		phase := orderPhase(k)
		row := mag.values[k*n : (k+1)*n]
		for i, v := range row {
			s.values[k*n+i] = phase * shift[i] * complex(v, 0)
		}
	}

	// a *BatchError from the magnitude pass carries over with NaN columns
	return s, err
}

// orderPhase returns (-i)^k.
func orderPhase(k int) complex128 {
	switch k % phaseCycle {
	case 0:
		return 1
	case 1:
		return -1i
	case 2:
		return -1
	default:
		return 1i
	}
}
