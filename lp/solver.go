package lp

// Solver is the external linear-programming capability. A Solve call
// blocks until the backend returns a determination. Implementations
// return an error wrapping ErrNotOptimal when the model is infeasible,
// unbounded, or the backend fails internally; definite infeasible and
// unbounded determinations carry their Status in a StatusError. A
// non-nil Solution is always optimal.
type Solver interface {
	Solve(Model) (*Solution, error)
}
