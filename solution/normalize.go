// SPDX-License-Identifier: MIT

package solution

import (
	"fmt"
	"math"

	"github.com/katalvlaran/planopt/model"
	"github.com/katalvlaran/planopt/solve"
)

// Normalize converts a raw solver result into a validated Record.
//
// Contracts:
//   - Pure: neither raw nor m is mutated, and equal inputs yield equal
//     Records (idempotent on already-clean values).
//   - A raw result without a solution (infeasible, timeout, error) yields a
//     status-only Record with Feasible == false and no error.
//   - A raw result that claims a solution but lacks a model variable fails
//     with ErrMissingVariable.
//   - Feasibility is re-checked here against the formulation's rows under
//     tol; the solver's own status is recorded but not trusted for it.
//
// Normalization rules:
//   - Values within tol of zero are snapped to exactly zero in the series.
//   - Setup indicators are snapped to booleans (≥ 0.5 means on); the linkage
//     check uses the solver's fractional value, so a relaxed y = 0.4 with
//     production at 100 is still flagged.
//   - Cost is recomputed from the snapped series via the formulation's
//     objective; the solver-reported objective is discarded.
//
// Complexity: O(T) time and space.
func Normalize(raw solve.RawResult, m *model.Model, tol Tolerance) (Record, error) {
	rec := Record{
		ModelName:  m.Name(),
		ScenarioID: m.Scenario.ID(),
		Backend:    raw.Backend,
		Status:     raw.Status,
		SolveTime:  raw.SolveTime,
	}
	if raw.Values == nil {
		return rec, nil
	}

	T := m.T()
	eps := tol.Absolute(m)

	x, err := series(raw.Values, model.ProductionVar, T)
	if err != nil {
		return Record{}, err
	}
	s, err := series(raw.Values, model.InventoryVar, T)
	if err != nil {
		return Record{}, err
	}
	var y []float64
	if m.Kind == model.MILP {
		if y, err = series(raw.Values, model.SetupVar, T); err != nil {
			return Record{}, err
		}
	}

	rec.Violations = validate(m, x, s, y, eps)
	rec.Feasible = len(rec.Violations) == 0

	rec.Production = snap(x, eps)
	rec.Inventory = snap(s, eps)
	full := make([]float64, m.NumVars())
	copy(full, rec.Production)
	copy(full[T:], rec.Inventory)
	if y != nil {
		rec.Setup = make([]bool, T)
		for t := 0; t < T; t++ {
			if y[t] >= 0.5 {
				rec.Setup[t] = true
				full[2*T+t] = 1
			}
		}
	}
	rec.Breakdown = m.CostBreakdown(full)
	rec.Cost = rec.Breakdown.Total
	return rec, nil
}

// series extracts one named family of per-period values.
func series(values map[string]float64, name func(int) string, T int) ([]float64, error) {
	out := make([]float64, T)
	for t := 1; t <= T; t++ {
		v, ok := values[name(t)]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingVariable, name(t))
		}
		out[t-1] = v
	}
	return out, nil
}

// snap zeroes values within eps of zero. Values further out are kept in
// solver precision.
func snap(v []float64, eps float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		if math.Abs(x) > eps {
			out[i] = x
		}
	}
	return out
}

// validate checks the raw (un-snapped) series against the formulation's
// constraints. y is nil for formulations without setup decisions.
func validate(m *model.Model, x, s, y []float64, eps float64) []Violation {
	var out []Violation
	sc := m.Scenario

	prev := sc.InitialInventory
	for t := 0; t < m.T(); t++ {
		if r := math.Abs(prev + x[t] - sc.Demand[t] - s[t]); r > eps {
			out = append(out, Violation{Period: t + 1, Kind: ViolationBalance, Magnitude: r})
		}
		prev = s[t]

		bound := sc.Capacity
		if y != nil {
			bound = m.BigM * y[t]
		}
		if r := x[t] - bound; r > eps {
			out = append(out, Violation{Period: t + 1, Kind: ViolationCapacity, Magnitude: r})
		}

		if x[t] < -eps {
			out = append(out, Violation{Period: t + 1, Kind: ViolationNegativity, Magnitude: -x[t]})
		}
		if s[t] < -eps {
			out = append(out, Violation{Period: t + 1, Kind: ViolationNegativity, Magnitude: -s[t]})
		}
	}
	return out
}
