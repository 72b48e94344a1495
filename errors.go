package hermite

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-hermite/internal/engine"
)

// Common errors returned by the evaluator. Check them with errors.Is.
var (
	// ErrInvalidParameter indicates a violated precondition: a negative order,
	// a non-positive or non-finite alpha, a non-finite mu or x, or an empty
	// argument vector.
	ErrInvalidParameter = engine.ErrInvalidParameter

	// ErrNumericInstability indicates that a recurrence state became
	// non-finite or degenerate.
	ErrNumericInstability = engine.ErrNumericInstability

	// ErrNumericOverflow indicates that a value would exceed the float64 range.
	ErrNumericOverflow = engine.ErrNumericOverflow

	// ErrInvalidConfig indicates invalid evaluator configuration.
	ErrInvalidConfig = errors.New("invalid evaluator configuration")
)

// EvalError describes a numeric failure at one argument with enough context
// to reproduce it.
type EvalError struct {
	// Op is the operation that failed, e.g. "evaluate" or "single".
	Op string

	// Order is the order at which the failure occurred.
	Order int

	// Index is the position of X in the argument vector.
	Index int

	X     float64
	Alpha float64
	Mu    float64

	Err error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("hermite: %s: order %d at x[%d]=%v (alpha=%v, mu=%v): %v",
		e.Op, e.Order, e.Index, e.X, e.Alpha, e.Mu, e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

// BatchError aggregates the per-argument failures of one batch call.
// The failed columns of the returned table are NaN.
type BatchError struct {
	// Failures lists the failed arguments in index order.
	Failures []*EvalError

	// Total is the number of arguments in the call.
	Total int
}

func (e *BatchError) Error() string {
	if len(e.Failures) == 0 {
		return "hermite: batch failed"
	}
	return fmt.Sprintf("hermite: %d of %d arguments failed, first: %v",
		len(e.Failures), e.Total, e.Failures[0])
}

// Unwrap exposes every failure to errors.Is and errors.As.
func (e *BatchError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}

// newEvalError converts a sweep failure into an EvalError.
func newEvalError(op string, order int, arg engine.Argument, index int, scale engine.Scale, err error) *EvalError {
	var oe *engine.OrderError
	if errors.As(err, &oe) {
		order = oe.Order
		err = oe.Err
	}
	return &EvalError{
		Op:    op,
		Order: order,
		Index: index,
		X:     arg.X,
		Alpha: scale.Alpha,
		Mu:    scale.Mu,
		Err:   err,
	}
}
