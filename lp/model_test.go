package lp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildModel() Model {
	var m Model
	m = m.AddVariable("x", 0, 4, 1)
	m = m.AddVariable("y", 1, 10, 2)
	m = m.AddConstraint("cap", []float64{1, 2}, LessEqual, 15)
	m = m.AddConstraint("floor", []float64{3, 2}, GreaterEqual, 6)
	return m
}

func TestBuild(t *testing.T) {
	m := buildModel()
	require.Len(t, m.Variables, 2)
	require.Len(t, m.Constraints, 2)
	require.Equal(t, "y", m.Variables[1].Name)
	require.Equal(t, GreaterEqual, m.Constraints[1].Sense)
	require.NoError(t, m.Validate())
}

func TestSetRHSCopies(t *testing.T) {
	m := buildModel()
	n, err := m.SetRHS("cap", 12)
	require.NoError(t, err)
	require.Equal(t, 12.0, n.Constraints[0].RHS)
	require.Equal(t, 15.0, m.Constraints[0].RHS, "receiver must not change")
}

func TestSetCostCopies(t *testing.T) {
	m := buildModel()
	n, err := m.SetCost("y", 7)
	require.NoError(t, err)
	require.Equal(t, 7.0, n.Variables[1].Cost)
	require.Equal(t, 2.0, m.Variables[1].Cost, "receiver must not change")
}

func TestEditUnknownName(t *testing.T) {
	m := buildModel()
	_, err := m.SetRHS("nope", 1)
	require.ErrorIs(t, err, ErrUnknownName)
	_, err = m.SetCost("nope", 1)
	require.ErrorIs(t, err, ErrUnknownName)
}

func TestEditsDoNotAlias(t *testing.T) {
	m := buildModel()
	n, err := m.SetRHS("cap", 12)
	require.NoError(t, err)
	n.Constraints[0].Coeffs[0] = 99
	require.Equal(t, 1.0, m.Constraints[0].Coeffs[0], "coefficient slices must not be shared")
}

func TestValidateEmptyModel(t *testing.T) {
	var m Model
	require.ErrorIs(t, m.Validate(), ErrEmptyModel)
}

func TestValidateDuplicateName(t *testing.T) {
	var m Model
	m = m.AddVariable("x", 0, 1, 1)
	m = m.AddVariable("x", 0, 1, 1)
	require.ErrorIs(t, m.Validate(), ErrDuplicateName)
}

func TestValidateCoeffCount(t *testing.T) {
	var m Model
	m = m.AddVariable("x", 0, 1, 1)
	m = m.AddConstraint("short", []float64{1, 2}, Equal, 3)
	require.ErrorIs(t, m.Validate(), ErrCoeffCount)
}

func TestSenseString(t *testing.T) {
	require.Equal(t, ">=", GreaterEqual.String())
	require.Equal(t, "<=", LessEqual.String())
	require.Equal(t, "=", Equal.String())
}
