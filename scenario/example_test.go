package scenario_test

import (
	"fmt"

	"github.com/katalvlaran/planopt/scenario"
)

// ExampleGenerate shows deterministic generation of a seasonal instance.
func ExampleGenerate() {
	cfg := scenario.DefaultConfig(6)
	cfg.Pattern = scenario.PatternSeasonal
	cfg.BaseDemand = 100

	sc, err := scenario.Generate(cfg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sc.Demand)
	fmt.Println(sc.TotalDemand())
	// Output:
	// [100 90 90 100 100 120]
	// 600
}
