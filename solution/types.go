// SPDX-License-Identifier: MIT

package solution

import (
	"errors"
	"math"
	"time"

	"github.com/katalvlaran/planopt/model"
	"github.com/katalvlaran/planopt/solve"
)

// ErrMissingVariable is returned when a raw result claims a solution but
// carries no value for one of the model's variables. It marks a broken
// backend contract, not an infeasible plan.
var ErrMissingVariable = errors.New("solution: raw result is missing a model variable")

// ViolationKind classifies a constraint breach found during validation.
type ViolationKind string

const (
	// ViolationBalance marks a period whose inventory flow does not close:
	// opening stock plus production minus demand differs from closing stock.
	ViolationBalance ViolationKind = "balance"

	// ViolationCapacity marks production above the per-period cap, or above
	// the setup linkage bound when the formulation carries setup decisions.
	ViolationCapacity ViolationKind = "capacity"

	// ViolationNegativity marks a production or inventory value below zero.
	ViolationNegativity ViolationKind = "negativity"
)

// Violation is one constraint breach. Magnitude is the absolute residual in
// demand units, already past the tolerance: it is always positive.
type Violation struct {
	Period    int
	Kind      ViolationKind
	Magnitude float64
}

// Tolerance controls feasibility checking. Eps is a relative base; the
// effective absolute tolerance scales with the instance,
//
//	eps_abs = Eps * max(1, capacity, max demand),
//
// so a plan for demand in the thousands is not held to the same absolute
// residual as one for demand in the tens.
type Tolerance struct {
	Eps float64
}

// DefaultTolerance is tight enough to catch real constraint breaches and
// loose enough to absorb penalty-method residuals.
func DefaultTolerance() Tolerance { return Tolerance{Eps: 1e-6} }

// Absolute resolves the effective absolute tolerance for a model's instance.
func (tol Tolerance) Absolute(m *model.Model) float64 {
	scale := math.Max(1, m.Scenario.Capacity)
	for _, d := range m.Scenario.Demand {
		scale = math.Max(scale, d)
	}
	return tol.Eps * scale
}

// Record is one normalized, validated solve outcome. It is the unit of
// comparison downstream: the analyzer consumes Records and nothing else.
//
// Production and Inventory are indexed by period offset (entry 0 is period 1)
// and are present only when the backend produced a solution. Setup is non-nil
// only for formulations with setup decisions. Cost is recomputed from the
// normalized series via the formulation's own objective, so it is comparable
// across backends regardless of their reported objectives.
type Record struct {
	ModelName  string
	ScenarioID string
	Backend    string
	Status     solve.Status
	SolveTime  time.Duration

	Production []float64
	Inventory  []float64
	Setup      []bool

	Cost      float64
	Breakdown model.Breakdown

	Feasible   bool
	Violations []Violation
}

// HasSolution reports whether the record carries a plan at all. Infeasible
// and failed solves produce status-only records.
func (r Record) HasSolution() bool { return r.Production != nil }
