package lp

import (
	"github.com/lanl/clp"
	"github.com/pkg/errors"
)

// CLP solves models with the COIN-OR CLP simplex solver.
type CLP struct{}

var _ Solver = (*CLP)(nil)

// NewCLP returns a CLP-backed solver.
func NewCLP() *CLP {
	return &CLP{}
}

// Solve lowers the model to CLP's dense form, runs the primal simplex,
// and snapshots the result. CLP's dual row solution carries the
// constraint shadow prices and its dual column solution the reduced
// costs.
func (c *CLP) Solve(m Model) (*Solution, error) {
	low, err := m.lower()
	if err != nil {
		return nil, err
	}

	simp := clp.NewSimplex()
	if m.Maximize {
		simp.SetOptimizationDirection(clp.Maximize)
	} else {
		simp.SetOptimizationDirection(clp.Minimize)
	}

	bounds := make([][2]float64, len(m.Variables))
	for j := range bounds {
		bounds[j] = [2]float64{low.varLB[j], low.varUB[j]}
	}
	rows := make([][]float64, len(m.Constraints))
	for i := range rows {
		row := make([]float64, 0, len(m.Variables)+2)
		row = append(row, low.rowLB[i])
		row = append(row, low.row(i)...)
		row = append(row, low.rowUB[i])
		rows[i] = row
	}
	simp.EasyLoadDenseProblem(low.costs, bounds, rows)

	switch status := simp.Primal(clp.NoValuesPass, clp.NoStartFinishOptions); status {
	case clp.Optimal:
	case clp.Infeasible:
		return nil, errors.Wrap(&StatusError{Status: StatusInfeasible}, "clp")
	case clp.Unbounded:
		return nil, errors.Wrap(&StatusError{Status: StatusUnbounded}, "clp")
	default:
		return nil, errors.Wrapf(ErrNotOptimal, "clp: simplex status %d", status)
	}

	return newSolution(m, low, StatusOptimal,
		simp.ObjectiveValue(),
		simp.PrimalColumnSolution(),
		simp.DualColumnSolution(),
		simp.DualRowSolution()), nil
}
