package diet

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/bartolsthoorn/godiet/lp"
)

// The what-if passes below each derive a fresh model from the one they
// are given; nothing is edited in place, so the base model and its
// solution stay valid throughout.

// ReduceEnergyRequirement lowers the energy requirement by one
// kilocalorie, from 2000 to 1999.
func ReduceEnergyRequirement(m lp.Model) (lp.Model, error) {
	return m.SetRHS(Energy, EnergyRequired-1)
}

// RelaxSlackRequirements lowers the protein requirement to 54 g and the
// calcium requirement to 799 mg, one unit each. Both requirements are
// exceeded at the base optimum, so their shadow prices are zero.
func RelaxSlackRequirements(m lp.Model) (lp.Model, error) {
	n, err := m.SetRHS(Protein, ProteinRequired-1)
	if err != nil {
		return lp.Model{}, err
	}
	return n.SetRHS(Calcium, CalciumRequired-1)
}

// DiscountEggs cuts the price of eggs from 13 to 8, a drop of 5 that
// exceeds the reduced cost of eggs at the base optimum.
func DiscountEggs(m lp.Model) (lp.Model, error) {
	return m.SetCost(Eggs, 8)
}

// RunSensitivity performs the scripted sensitivity-analysis passes
// against the already-solved base model: relax the binding energy
// requirement by one unit, relax the two slack requirements, discount
// eggs past their reduced cost, then re-solve the untouched base model
// to show the original cost reappear. Each pass re-solves the derived
// model and narrates the change in the optimal cost.
func RunSensitivity(w io.Writer, solver lp.Solver, base lp.Model, baseSol *lp.Solution) error {
	fmt.Fprintln(w, "SENSITIVITY ANALYSIS")

	m, err := ReduceEnergyRequirement(base)
	if err != nil {
		return err
	}
	sol, err := solver.Solve(m)
	if err != nil {
		return errors.Wrap(err, "energy requirement pass")
	}
	fmt.Fprintf(w, "\nEnergy requirement %.0f -> %.0f kcal.\n", EnergyRequired, EnergyRequired-1)
	fmt.Fprintf(w, "Optimal cost %.5f -> %.5f, a change of %.5f.\n",
		baseSol.Objective, sol.Objective, sol.Objective-baseSol.Objective)
	fmt.Fprintf(w, "The energy shadow price %.5f predicted exactly that saving.\n",
		baseSol.Dual(Energy))

	m, err = RelaxSlackRequirements(base)
	if err != nil {
		return err
	}
	sol, err = solver.Solve(m)
	if err != nil {
		return errors.Wrap(err, "slack requirements pass")
	}
	fmt.Fprintf(w, "\nProtein requirement %.0f -> %.0f g, calcium %.0f -> %.0f mg.\n",
		ProteinRequired, ProteinRequired-1, CalciumRequired, CalciumRequired-1)
	fmt.Fprintf(w, "Optimal cost %.5f -> %.5f.\n", baseSol.Objective, sol.Objective)
	fmt.Fprintln(w, "Both requirements were already exceeded, so their zero shadow")
	fmt.Fprintln(w, "prices predicted no change at all.")

	m, err = DiscountEggs(base)
	if err != nil {
		return err
	}
	sol, err = solver.Solve(m)
	if err != nil {
		return errors.Wrap(err, "eggs discount pass")
	}
	fmt.Fprintf(w, "\nPrice of eggs 13 -> 8, a cut larger than their reduced cost %.4f.\n",
		baseSol.ReducedCost(Eggs))
	fmt.Fprintf(w, "Eggs enter the diet at %.4f servings and the optimal cost\n", sol.Value(Eggs))
	fmt.Fprintf(w, "drops from %.5f to %.5f.\n", baseSol.Objective, sol.Objective)

	// Restore pass: the base model was never touched, so re-solving it
	// must reproduce the original cost exactly.
	sol, err = solver.Solve(base)
	if err != nil {
		return errors.Wrap(err, "restore pass")
	}
	fmt.Fprintf(w, "\nWith every edit undone the optimal cost is %.5f again.\n", sol.Objective)
	return nil
}
