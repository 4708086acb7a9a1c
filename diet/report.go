package diet

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/bartolsthoorn/godiet/lp"
)

const dualProse = `A constraint's dual value (shadow price) is the marginal change in the
optimal daily cost per unit relaxation of its right-hand side. A binding
requirement has a positive shadow price: meeting one more unit of it
costs that much. A requirement already exceeded at the optimum has a
shadow price of zero, so small changes to it cost nothing.`

const reducedCostProse = `A variable's reduced cost is how much its price would have to drop
before buying any of it could lower the total cost. Foods left out of
the optimal diet have a positive reduced cost; foods bought up to their
serving cap have a negative one, measuring what one more allowed
serving would save.`

// Report writes the solved diet in a fixed layout: the optimal cost,
// the servings bought, then the dual values and reduced costs with the
// prose explaining how to read them.
func Report(w io.Writer, m lp.Model, s *lp.Solution) {
	rule := strings.Repeat("=", 80)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Cheapest acceptable diet costs %.4f per day.\n\n", s.Objective)

	for _, v := range m.Variables {
		fmt.Fprintf(w, "Buy %.4f servings of %s\n", s.Value(v.Name), v.Name)
	}

	fmt.Fprintf(w, "\n%s\n\n", dualProse)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "REQUIREMENT\tSENSE\tRHS\tACTIVITY\tDUAL VALUE")
	for _, c := range m.Constraints {
		fmt.Fprintf(tw, "%s\t%s\t%.1f\t%.4f\t%.5f\n",
			c.Name, c.Sense, c.RHS, s.Activity(c.Name), s.Dual(c.Name))
	}
	tw.Flush()

	fmt.Fprintf(w, "\n%s\n\n", reducedCostProse)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FOOD\tPRICE\tSERVINGS\tREDUCED COST")
	for _, v := range m.Variables {
		fmt.Fprintf(tw, "%s\t%.1f\t%.4f\t%.4f\n",
			v.Name, v.Cost, s.Value(v.Name), s.ReducedCost(v.Name))
	}
	tw.Flush()
	fmt.Fprintln(w)
}
