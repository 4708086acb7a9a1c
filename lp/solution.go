package lp

import "gonum.org/v1/gonum/mat"

// Status represents the outcome of a solve.
type Status int

const (
	// StatusUnknown indicates the solver gave no usable determination.
	StatusUnknown Status = iota
	// StatusOptimal indicates an optimal solution was found.
	StatusOptimal
	// StatusInfeasible indicates no point satisfies the constraints.
	StatusInfeasible
	// StatusUnbounded indicates the objective can improve without limit.
	StatusUnbounded
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "Optimal"
	case StatusInfeasible:
		return "Infeasible"
	case StatusUnbounded:
		return "Unbounded"
	}
	return "Unknown"
}

// Solution is a read-only snapshot of one solve. It is valid only for
// the exact Model value that produced it; after any SetRHS or SetCost
// the new model must be solved again.
type Solution struct {
	// Status indicates the outcome of the solve.
	Status Status

	// Objective is the value of the objective function at the solution.
	Objective float64

	// Values contains the primal solution, one entry per variable.
	Values []float64

	// ReducedCosts contains the dual value of each variable's bounds:
	// how much the variable's objective coefficient would have to
	// improve before the variable takes a nonzero value.
	ReducedCosts []float64

	// Duals contains the shadow price of each constraint: the marginal
	// change in the optimal objective per unit relaxation of the
	// right-hand side.
	Duals []float64

	// Activities contains each constraint's left-hand-side value at the
	// solution, for slack reporting against the right-hand side.
	Activities []float64

	varIndex map[string]int
	conIndex map[string]int
}

// newSolution assembles the snapshot, deriving row activities A·x from
// the lowered constraint matrix and the primal point.
func newSolution(m Model, low *lowered, status Status, objective float64, values, reducedCosts, duals []float64) *Solution {
	s := &Solution{
		Status:       status,
		Objective:    objective,
		Values:       values,
		ReducedCosts: reducedCosts,
		Duals:        duals,
		varIndex:     make(map[string]int, len(m.Variables)),
		conIndex:     make(map[string]int, len(m.Constraints)),
	}
	for i, v := range m.Variables {
		s.varIndex[v.Name] = i
	}
	for i, c := range m.Constraints {
		s.conIndex[c.Name] = i
	}
	if low.matrix != nil && len(values) > 0 {
		var act mat.VecDense
		act.MulVec(low.matrix, mat.NewVecDense(len(values), values))
		s.Activities = make([]float64, len(m.Constraints))
		for i := range s.Activities {
			s.Activities[i] = act.AtVec(i)
		}
	}
	return s
}

// IsOptimal returns true if the solution is optimal.
func (s *Solution) IsOptimal() bool {
	return s.Status == StatusOptimal
}

// Value returns the solved quantity of the named variable.
// Returns 0 if the name is unknown.
func (s *Solution) Value(name string) float64 {
	if i, ok := s.varIndex[name]; ok && i < len(s.Values) {
		return s.Values[i]
	}
	return 0
}

// ReducedCost returns the reduced cost of the named variable.
// Returns 0 if the name is unknown.
func (s *Solution) ReducedCost(name string) float64 {
	if i, ok := s.varIndex[name]; ok && i < len(s.ReducedCosts) {
		return s.ReducedCosts[i]
	}
	return 0
}

// Dual returns the dual value of the named constraint.
// Returns 0 if the name is unknown.
func (s *Solution) Dual(name string) float64 {
	if i, ok := s.conIndex[name]; ok && i < len(s.Duals) {
		return s.Duals[i]
	}
	return 0
}

// Activity returns the named constraint's left-hand-side value at the
// solution. Returns 0 if the name is unknown.
func (s *Solution) Activity(name string) float64 {
	if i, ok := s.conIndex[name]; ok && i < len(s.Activities) {
		return s.Activities[i]
	}
	return 0
}
