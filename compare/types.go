// SPDX-License-Identifier: MIT

package compare

import (
	"errors"

	"github.com/katalvlaran/planopt/analyze"
	"github.com/katalvlaran/planopt/solution"
	"github.com/katalvlaran/planopt/solve"
)

var (
	// ErrNoKinds is returned when Run is asked to compare nothing.
	ErrNoKinds = errors.New("compare: at least one formulation kind required")

	// ErrDuplicateKind is returned when the same formulation kind appears
	// twice in one run; each kind maps to exactly one record slot.
	ErrDuplicateKind = errors.New("compare: duplicate formulation kind")
)

// Options configures one comparison run.
//
//   - Solve is passed through to every adapter call.
//   - Tolerance governs feasibility validation of every result.
//   - Workers bounds solver parallelism; values ≤ 0 mean one worker per
//     available CPU.
type Options struct {
	Solve     solve.Options
	Tolerance solution.Tolerance
	Workers   int
}

// DefaultOptions pairs the adapter and validation defaults.
func DefaultOptions() Options {
	return Options{
		Solve:     solve.DefaultOptions(),
		Tolerance: solution.DefaultTolerance(),
	}
}

// Outcome is the per-formulation verdict of a run. Err is non-nil when the
// formulation never produced a record (build failure, no usable backend,
// broken backend contract, recovered panic); otherwise Status echoes the
// record's status.
type Outcome struct {
	Model  string
	Status solve.Status
	Err    error
}

// Report is the result of one comparison run. Records and Outcomes are
// index-aligned with the kinds passed to Run; Records entries are zero
// (no ScenarioID) where the matching Outcome carries an error.
type Report struct {
	Records  []solution.Record
	Outcomes []Outcome
	Analyzer *analyze.Analyzer
}

// Best returns the cheapest feasible record of the run.
func (r Report) Best(scenarioID string) (solution.Record, bool) {
	return r.Analyzer.Best(scenarioID)
}
