package solution_test

import (
	"fmt"

	"github.com/katalvlaran/planopt/model"
	"github.com/katalvlaran/planopt/scenario"
	"github.com/katalvlaran/planopt/solution"
	"github.com/katalvlaran/planopt/solve"
)

// ExampleNormalize cleans a solver result that carries typical floating-point
// noise: a hair of negative inventory and a near-integral setup indicator.
func ExampleNormalize() {
	cfg := scenario.DefaultConfig(2)
	cfg.Demand = []float64{100, 100}
	sc, _ := scenario.Generate(cfg)
	m, _ := model.Build(model.MILP, sc)

	raw := solve.RawResult{
		Status: solve.StatusSolved,
		Values: map[string]float64{
			"x_1": 200, "x_2": 0,
			"s_1": 100, "s_2": -1e-9,
			"y_1": 0.9999999, "y_2": 1e-8,
		},
	}

	rec, _ := solution.Normalize(raw, m, solution.DefaultTolerance())
	fmt.Println(rec.Feasible)
	fmt.Println(rec.Inventory[1])
	fmt.Println(rec.Setup)
	fmt.Printf("%.0f\n", rec.Cost)
	// Output:
	// true
	// 0
	// [true false]
	// 2700
}
