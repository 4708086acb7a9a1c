package lp

import (
	"github.com/bartolsthoorn/gohighs/highs"
	"github.com/pkg/errors"
)

// HiGHS solves models with the HiGHS solver.
type HiGHS struct {
	// Options are passed through to every solve.
	Options []highs.SolveOption
}

var _ Solver = (*HiGHS)(nil)

// NewHiGHS returns a HiGHS-backed solver with solver output disabled.
func NewHiGHS() *HiGHS {
	return &HiGHS{Options: []highs.SolveOption{highs.WithOutput(false)}}
}

// Solve lowers the model to a HiGHS model, runs it, and snapshots the
// result. HiGHS row duals are the constraint shadow prices and column
// duals are the variable reduced costs.
func (h *HiGHS) Solve(m Model) (*Solution, error) {
	low, err := m.lower()
	if err != nil {
		return nil, err
	}

	hm := highs.Model{
		Maximize: m.Maximize,
		ColCosts: low.costs,
		ColLower: low.varLB,
		ColUpper: low.varUB,
	}
	for i := range m.Constraints {
		hm.AddDenseRow(low.rowLB[i], low.row(i), low.rowUB[i])
	}

	sol, err := hm.Solve(h.Options...)
	if err != nil {
		return nil, errors.Wrap(err, "highs")
	}
	switch {
	case sol.IsOptimal():
	case sol.IsInfeasible():
		return nil, errors.Wrap(&StatusError{Status: StatusInfeasible}, "highs")
	case sol.IsUnbounded():
		return nil, errors.Wrap(&StatusError{Status: StatusUnbounded}, "highs")
	default:
		return nil, errors.Wrapf(ErrNotOptimal, "highs: %s", sol.Status)
	}

	return newSolution(m, low, StatusOptimal, sol.Objective, sol.ColValues, sol.ColDuals, sol.RowDuals), nil
}
