// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/katalvlaran/planopt/scenario"
	"github.com/katalvlaran/planopt/solve"
)

// Run is one comparison run as described by a config file.
type Run struct {
	Scenario scenario.Config `mapstructure:"scenario"`
	Solve    solve.Options   `mapstructure:"solve"`

	// Eps is the relative feasibility tolerance; zero keeps the default.
	Eps float64 `mapstructure:"eps"`
}

// Load reads a run file. Missing keys keep the reference defaults
// (scenario.DefaultConfig over twelve periods, solve.DefaultOptions); the
// file's extension selects the format.
//
// Load performs no semantic validation: scenario.Generate and compare.Run
// reject bad values with their own sentinels.
func Load(path string) (Run, error) {
	v := viper.New()
	v.SetConfigFile(path)

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Run{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var run Run
	if err := v.Unmarshal(&run); err != nil {
		return Run{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return run, nil
}

func setDefaults(v *viper.Viper) {
	def := scenario.DefaultConfig(12)
	v.SetDefault("scenario.periods", def.Periods)
	v.SetDefault("scenario.pattern", string(def.Pattern))
	v.SetDefault("scenario.basedemand", def.BaseDemand)
	v.SetDefault("scenario.capacity", def.Capacity)
	v.SetDefault("scenario.costs.production", def.Costs.Production)
	v.SetDefault("scenario.costs.holding", def.Costs.Holding)
	v.SetDefault("scenario.costs.setup", def.Costs.Setup)
	v.SetDefault("scenario.costs.smoothweight", def.Costs.SmoothWeight)
	v.SetDefault("scenario.costs.concavecoeff", def.Costs.ConcaveCoeff)
	v.SetDefault("scenario.costs.concaveexponent", def.Costs.ConcaveExponent)

	opts := solve.DefaultOptions()
	v.SetDefault("solve.timelimit", opts.TimeLimit)
	v.SetDefault("eps", 1e-6)
}
