// Package scenario defines the immutable planning instance consumed by every
// model formulation, and a deterministic generator for such instances.
//
// A Scenario fixes the horizon (number of periods), the demand series, the
// cost coefficients (production, holding, setup), the per-period capacity and
// the initial inventory. The same Scenario value is shared read-only by all
// four formulations, which guarantees they optimize over the same data.
//
// Generation is fully deterministic: the same Config (including Seed) always
// yields a byte-identical Scenario, so solver comparisons are reproducible.
// Seed 0 selects a fixed default seed rather than a time-based source.
//
// Use this package when you need a planning instance:
//
//	sc, err := scenario.Generate(scenario.Config{
//	  Periods:    12,
//	  Pattern:    scenario.PatternSeasonal,
//	  BaseDemand: 120,
//	  Variance:   20,
//	  Seed:       42,
//	  Costs:      scenario.DefaultCosts(),
//	})
//
// Errors: all validation failures wrap ErrConfig; match with errors.Is.
package scenario
