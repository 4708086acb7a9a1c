package main

import (
	"log"
	"os"

	"github.com/bartolsthoorn/godiet/diet"
	"github.com/bartolsthoorn/godiet/lp"
)

func main() {
	solver := lp.NewHiGHS()
	model := diet.Problem()

	sol, err := solver.Solve(model)
	if err != nil {
		log.Fatal(err)
	}

	diet.Report(os.Stdout, model, sol)
	if err := diet.RunSensitivity(os.Stdout, solver, model, sol); err != nil {
		log.Fatal(err)
	}
}
