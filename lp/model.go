// Package lp models small linear programs as immutable values and solves
// them with an external LP solver.
//
// A Model is built once from named variables and named constraints:
//
//	Minimize (or Maximize): sum(Variable.Cost * x)
//	Subject to:             Constraint.Coeffs · x  (Sense)  Constraint.RHS
//	And:                    Variable.Lower ≤ x ≤ Variable.Upper
//
// Edits such as SetRHS and SetCost return a new Model and leave the
// receiver untouched, so a solved Solution always refers to exactly the
// model value it was produced from.
package lp

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Sense is the relational operator of a constraint.
type Sense int

const (
	// GreaterEqual constrains the row to Coeffs · x >= RHS.
	GreaterEqual Sense = iota
	// LessEqual constrains the row to Coeffs · x <= RHS.
	LessEqual
	// Equal constrains the row to Coeffs · x == RHS.
	Equal
)

func (s Sense) String() string {
	switch s {
	case GreaterEqual:
		return ">="
	case LessEqual:
		return "<="
	case Equal:
		return "="
	}
	return "?"
}

// Variable is a decision variable with simple bounds and an objective
// coefficient.
type Variable struct {
	Name  string
	Lower float64
	Upper float64
	Cost  float64
}

// Constraint is one linear row. Coeffs is dense and aligned with the
// model's variable order.
type Constraint struct {
	Name   string
	Coeffs []float64
	Sense  Sense
	RHS    float64
}

// Model is a linear program. The zero value is an empty minimization
// model ready for AddVariable and AddConstraint.
type Model struct {
	// Maximize indicates whether to maximize (true) or minimize (false).
	Maximize bool

	Variables   []Variable
	Constraints []Constraint
}

// clone returns a deep copy so that edits never alias the receiver's
// backing slices.
func (m Model) clone() Model {
	n := Model{Maximize: m.Maximize}
	n.Variables = append([]Variable(nil), m.Variables...)
	n.Constraints = make([]Constraint, len(m.Constraints))
	for i, c := range m.Constraints {
		c.Coeffs = append([]float64(nil), c.Coeffs...)
		n.Constraints[i] = c
	}
	return n
}

// AddVariable returns a copy of the model with one more variable.
// Variables must all be added before the first constraint so that
// constraint coefficient vectors line up.
func (m Model) AddVariable(name string, lower, upper, cost float64) Model {
	n := m.clone()
	n.Variables = append(n.Variables, Variable{Name: name, Lower: lower, Upper: upper, Cost: cost})
	return n
}

// AddConstraint returns a copy of the model with one more row. coeffs
// must have one entry per variable; that is checked at solve time, not
// here.
func (m Model) AddConstraint(name string, coeffs []float64, sense Sense, rhs float64) Model {
	n := m.clone()
	n.Constraints = append(n.Constraints, Constraint{
		Name:   name,
		Coeffs: append([]float64(nil), coeffs...),
		Sense:  sense,
		RHS:    rhs,
	})
	return n
}

// SetRHS returns a copy of the model with the named constraint's
// right-hand side replaced. The receiver is not modified.
func (m Model) SetRHS(name string, rhs float64) (Model, error) {
	n := m.clone()
	for i := range n.Constraints {
		if n.Constraints[i].Name == name {
			n.Constraints[i].RHS = rhs
			return n, nil
		}
	}
	return Model{}, errors.Wrapf(ErrUnknownName, "constraint %q", name)
}

// SetCost returns a copy of the model with the named variable's
// objective coefficient replaced. The receiver is not modified.
func (m Model) SetCost(name string, cost float64) (Model, error) {
	n := m.clone()
	for i := range n.Variables {
		if n.Variables[i].Name == name {
			n.Variables[i].Cost = cost
			return n, nil
		}
	}
	return Model{}, errors.Wrapf(ErrUnknownName, "variable %q", name)
}

// Validate reports whether the model can be handed to a solver: at
// least one variable, unique names, and one coefficient per variable in
// every constraint. Bound consistency and feasibility are left to the
// solver.
func (m Model) Validate() error {
	_, err := m.lower()
	return err
}

// lowered is the dense bound/matrix form both solver backends consume.
type lowered struct {
	costs  []float64
	varLB  []float64
	varUB  []float64
	rowLB  []float64
	rowUB  []float64
	matrix *mat.Dense // nil when the model has no constraints
}

// row returns the dense coefficient vector of row i.
func (l *lowered) row(i int) []float64 {
	return mat.Row(nil, i, l.matrix)
}

func (m Model) lower() (*lowered, error) {
	if len(m.Variables) == 0 {
		return nil, ErrEmptyModel
	}

	names := make(map[string]bool, len(m.Variables))
	for _, v := range m.Variables {
		if names[v.Name] {
			return nil, errors.Wrapf(ErrDuplicateName, "variable %q", v.Name)
		}
		names[v.Name] = true
	}

	low := &lowered{
		costs: make([]float64, len(m.Variables)),
		varLB: make([]float64, len(m.Variables)),
		varUB: make([]float64, len(m.Variables)),
		rowLB: make([]float64, len(m.Constraints)),
		rowUB: make([]float64, len(m.Constraints)),
	}
	for j, v := range m.Variables {
		low.costs[j] = v.Cost
		low.varLB[j] = v.Lower
		low.varUB[j] = v.Upper
	}

	if len(m.Constraints) == 0 {
		return low, nil
	}

	rows := make(map[string]bool, len(m.Constraints))
	low.matrix = mat.NewDense(len(m.Constraints), len(m.Variables), nil)
	for i, c := range m.Constraints {
		if rows[c.Name] {
			return nil, errors.Wrapf(ErrDuplicateName, "constraint %q", c.Name)
		}
		rows[c.Name] = true
		if len(c.Coeffs) != len(m.Variables) {
			return nil, errors.Wrapf(ErrCoeffCount,
				"constraint %q has %d coefficients for %d variables",
				c.Name, len(c.Coeffs), len(m.Variables))
		}
		low.matrix.SetRow(i, c.Coeffs)
		switch c.Sense {
		case GreaterEqual:
			low.rowLB[i], low.rowUB[i] = c.RHS, math.Inf(1)
		case LessEqual:
			low.rowLB[i], low.rowUB[i] = math.Inf(-1), c.RHS
		case Equal:
			low.rowLB[i], low.rowUB[i] = c.RHS, c.RHS
		}
	}
	return low, nil
}
