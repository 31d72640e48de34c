// SPDX-License-Identifier: MIT

package analyze

import (
	"errors"
	"sync"
	"time"

	"github.com/katalvlaran/planopt/solution"
	"github.com/katalvlaran/planopt/solve"
)

// ErrDuplicateRecord is returned by Add when a record for the same
// formulation/scenario pair is already present. AddOrReplace lifts the
// restriction.
var ErrDuplicateRecord = errors.New("analyze: duplicate record for model/scenario pair")

// key identifies one record slot: one formulation applied to one scenario.
type key struct {
	model    string
	scenario string
}

// failure is an attempt that produced no record at all, kept so attempt
// counts include it.
type failure struct {
	key
	status solve.Status
}

// Summary is the per-formulation aggregate over everything an Analyzer has
// seen.
//
// Attempts counts records plus noted failures. Solved counts records whose
// plan passed validation; Infeasible counts proven-infeasible outcomes and
// solver-claimed solutions the validator overruled; NoResult counts
// timeouts, solver errors and noted failures — attempts that ended without
// a verdict either way. Cost and timing statistics cover feasible records
// only; BestCost is +Inf when there are none.
type Summary struct {
	Model string

	Attempts   int
	Solved     int
	Infeasible int
	NoResult   int

	FeasibleRate float64
	BestCost     float64
	MeanTime     time.Duration
	StdDevTime   time.Duration
}

// Analyzer accumulates records and failures. The zero value is not usable;
// construct with New.
type Analyzer struct {
	mu       sync.Mutex
	records  []solution.Record
	index    map[key]int
	failures []failure
}

// New returns an empty Analyzer.
func New() *Analyzer {
	return &Analyzer{index: make(map[key]int)}
}

// Len reports the number of stored records.
func (a *Analyzer) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.records)
}
