package lp

import "errors"

var (
	// ErrEmptyModel indicates a solve of a model with no variables.
	ErrEmptyModel = errors.New("lp: model has no variables")
	// ErrDuplicateName indicates two variables or two constraints share a name.
	ErrDuplicateName = errors.New("lp: duplicate name")
	// ErrCoeffCount indicates a constraint whose coefficient vector does not
	// have one entry per variable.
	ErrCoeffCount = errors.New("lp: coefficient count does not match variable count")
	// ErrUnknownName indicates an edit addressed to a name the model does not contain.
	ErrUnknownName = errors.New("lp: unknown name")
	// ErrNotOptimal indicates the solver terminated without an optimal
	// solution (infeasible, unbounded, or a solver-internal failure).
	ErrNotOptimal = errors.New("lp: solver did not reach an optimal solution")
)

// StatusError reports a solve that ended with a definite non-optimal
// determination. It unwraps to ErrNotOptimal, so callers can match the
// sentinel with errors.Is or pull out the Status with errors.As.
type StatusError struct {
	Status Status
}

func (e *StatusError) Error() string {
	return "lp: solver finished " + e.Status.String()
}

func (e *StatusError) Unwrap() error { return ErrNotOptimal }
