package diet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bartolsthoorn/godiet/lp"
)

// Lowering the binding energy requirement by one kilocalorie saves
// exactly its shadow price.
func TestEnergyDualPredictsSaving(t *testing.T) {
	base, baseSol := solveBase(t)

	m, err := ReduceEnergyRequirement(base)
	require.NoError(t, err)
	sol, err := lp.NewHiGHS().Solve(m)
	require.NoError(t, err)

	require.InDelta(t, baseSol.Objective-baseSol.Dual(Energy), sol.Objective, tol)
	require.InDelta(t, 92.44375, sol.Objective, tol)
}

// Relaxing requirements with zero shadow prices changes nothing.
func TestSlackRequirementsCostNothing(t *testing.T) {
	base, baseSol := solveBase(t)

	m, err := RelaxSlackRequirements(base)
	require.NoError(t, err)
	require.InDelta(t, 54.0, m.Constraints[1].RHS, tol)
	require.InDelta(t, 799.0, m.Constraints[2].RHS, tol)

	sol, err := lp.NewHiGHS().Solve(m)
	require.NoError(t, err)
	require.InDelta(t, baseSol.Objective, sol.Objective, tol)
}

// Cutting the price of eggs by more than their reduced cost brings
// them into the diet: at price 8 they displace milk as the cheapest
// energy source up to their cap.
func TestEggsDiscountEntersDiet(t *testing.T) {
	base, baseSol := solveBase(t)

	m, err := DiscountEggs(base)
	require.NoError(t, err)
	sol, err := lp.NewHiGHS().Solve(m)
	require.NoError(t, err)

	require.Greater(t, sol.Value(Eggs), 0.0)
	require.InDelta(t, 2.0, sol.Value(Eggs), tol)
	require.Less(t, sol.Objective, baseSol.Objective)
	require.InDelta(t, 90.5, sol.Objective, tol)
}

// The perturbations derive new models; the base model value never
// changes, so re-solving it reproduces the original cost exactly.
func TestRestoreIsIdempotent(t *testing.T) {
	base, baseSol := solveBase(t)

	_, err := ReduceEnergyRequirement(base)
	require.NoError(t, err)
	_, err = RelaxSlackRequirements(base)
	require.NoError(t, err)
	_, err = DiscountEggs(base)
	require.NoError(t, err)

	require.Equal(t, EnergyRequired, base.Constraints[0].RHS)
	require.Equal(t, 13.0, base.Variables[2].Cost)

	sol, err := lp.NewHiGHS().Solve(base)
	require.NoError(t, err)
	require.Equal(t, baseSol.Objective, sol.Objective)
}

func TestRunSensitivityNarration(t *testing.T) {
	base, baseSol := solveBase(t)

	var buf bytes.Buffer
	require.NoError(t, RunSensitivity(&buf, lp.NewHiGHS(), base, baseSol))

	out := buf.String()
	require.Contains(t, out, "SENSITIVITY ANALYSIS")
	require.Contains(t, out, "Energy requirement 2000 -> 1999 kcal.")
	require.Contains(t, out, "a change of -0.05625")
	require.Contains(t, out, "Price of eggs 13 -> 8")
	require.Contains(t, out, "optimal cost is 92.50000 again")
}
