// Package diet formulates the classic diet problem from pages 3-5 of
// Chvátal, "Linear Programming" (W. H. Freeman, 1983), solves it with
// an external LP solver, and reports the solution together with its
// dual values and reduced costs.
//
// Polly wants the cheapest daily diet that provides all the energy
// (2,000 kcal), protein (55 g), and calcium (800 mg) she needs, choosing
// among six foods with a servings-per-day cap on each:
//
//	                  Energy  Protein  Calcium  Price  Cap
//	Oatmeal              110        4        2      3    4
//	Chicken              205       32       12     24    3
//	Eggs                 160       13       54     13    2
//	Whole milk           160        8      285      9    8
//	Cherry pie           420        4       22     20    2
//	Pork with beans      260       14       80     19    2
package diet

import "github.com/bartolsthoorn/godiet/lp"

// Food names double as variable names in the LP.
const (
	Oatmeal   = "oatmeal"
	Chicken   = "chicken"
	Eggs      = "eggs"
	WholeMilk = "whole milk"
	CherryPie = "cherry pie"
	PorkBeans = "pork with beans"
)

// Nutritional requirement names double as constraint names in the LP.
const (
	Energy  = "energy"
	Protein = "protein"
	Calcium = "calcium"
)

// Daily requirements.
const (
	EnergyRequired  = 2000.0 // kcal
	ProteinRequired = 55.0   // g
	CalciumRequired = 800.0  // mg
)

var (
	foods  = []string{Oatmeal, Chicken, Eggs, WholeMilk, CherryPie, PorkBeans}
	prices = []float64{3, 24, 13, 9, 20, 19}
	caps   = []float64{4, 3, 2, 8, 2, 2}

	// Nutrient content per serving, aligned with foods.
	energy  = []float64{110, 205, 160, 160, 420, 260}
	protein = []float64{4, 32, 13, 8, 4, 14}
	calcium = []float64{2, 12, 54, 285, 22, 80}
)

// Problem builds the diet LP: minimize the total price of the servings
// bought, subject to the three nutritional lower bounds, with each
// food's servings between zero and its cap.
func Problem() lp.Model {
	var m lp.Model
	for i, f := range foods {
		m = m.AddVariable(f, 0, caps[i], prices[i])
	}
	m = m.AddConstraint(Energy, energy, lp.GreaterEqual, EnergyRequired)
	m = m.AddConstraint(Protein, protein, lp.GreaterEqual, ProteinRequired)
	m = m.AddConstraint(Calcium, calcium, lp.GreaterEqual, CalciumRequired)
	return m
}
