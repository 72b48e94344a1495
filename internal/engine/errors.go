package engine

import (
	"errors"
	"fmt"
)

// Error taxonomy shared with the public package.
var (
	// ErrInvalidParameter indicates a violated precondition: non-positive or
	// non-finite α, non-finite μ or x, or a negative order.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNumericInstability indicates that a recurrence state became non-finite
	// or degenerate.
	ErrNumericInstability = errors.New("numeric instability")

	// ErrNumericOverflow indicates that a combined value would exceed the
	// float64 range.
	ErrNumericOverflow = errors.New("numeric overflow")
)

// OrderError records the order at which a sweep failed.
type OrderError struct {
	Order int
	Err   error
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("order %d: %v", e.Order, e.Err)
}

func (e *OrderError) Unwrap() error {
	return e.Err
}
