package hermite

import (
	"fmt"
	"math"

	"github.com/tphakala/go-hermite/internal/mathutil"
)

// ApproximateLargestZeroX estimates the outermost zero of φ_n(·; α, xCenter)
// on the right of the center. Order 0 has no zero and returns xCenter.
//
// The estimate is closed-form and not an exact root; its error on the
// dimensionless axis is below 0.05 and decreases with n.
func ApproximateLargestZeroX(n int, alpha, xCenter float64) (float64, error) {
	if err := validatePoint(n, alpha, xCenter); err != nil {
		return 0, err
	}
	return xCenter + alpha*mathutil.LargestZero(n), nil
}

// ApproximateLargestExtremumX estimates the position of the outermost
// extremum of φ_n(·; α, xCenter) on the right of the center. It lies between
// the largest zero and the turning point. Order 0 returns xCenter.
func ApproximateLargestExtremumX(n int, alpha, xCenter float64) (float64, error) {
	if err := validatePoint(n, alpha, xCenter); err != nil {
		return 0, err
	}
	return xCenter + alpha*mathutil.LargestExtremum(n), nil
}

// ApproximateFadeoutX estimates the position on the right of the center
// beyond which |φ_n| stays below machine epsilon relative to its peak.
// The estimate errs on the outer side, so [xCenter-d, xCenter+d] with
// d = result - xCenter covers the numerically meaningful support.
func ApproximateFadeoutX(n int, alpha, xCenter float64) (float64, error) {
	if err := validatePoint(n, alpha, xCenter); err != nil {
		return 0, err
	}
	return xCenter + alpha*mathutil.Fadeout(n), nil
}

// Mirror returns the point symmetric to x about xCenter. Hermite functions
// are even or odd about their center, so every special point has a mirrored
// counterpart on the left side.
func Mirror(x, xCenter float64) float64 {
	return 2*xCenter - x
}

func validatePoint(n int, alpha, xCenter float64) error {
	if n < 0 {
		return fmt.Errorf("%w: order must be non-negative, got %d", ErrInvalidParameter, n)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) || alpha <= 0 {
		return fmt.Errorf("%w: alpha must be positive and finite, got %v", ErrInvalidParameter, alpha)
	}
	if math.IsNaN(xCenter) || math.IsInf(xCenter, 0) {
		return fmt.Errorf("%w: x center must be finite, got %v", ErrInvalidParameter, xCenter)
	}
	return nil
}
