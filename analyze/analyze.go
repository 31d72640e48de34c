// SPDX-License-Identifier: MIT

package analyze

import (
	"fmt"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/planopt/solution"
	"github.com/katalvlaran/planopt/solve"
)

// Add stores rec. A second record for the same formulation/scenario pair
// fails with ErrDuplicateRecord; this catches double-feeding a comparison
// run into one Analyzer.
func (a *Analyzer) Add(rec solution.Record) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	k := key{model: rec.ModelName, scenario: rec.ScenarioID}
	if _, dup := a.index[k]; dup {
		return fmt.Errorf("%w: %s on %s", ErrDuplicateRecord, rec.ModelName, rec.ScenarioID)
	}
	a.index[k] = len(a.records)
	a.records = append(a.records, rec)
	return nil
}

// AddOrReplace stores rec, overwriting any previous record for the pair.
func (a *Analyzer) AddOrReplace(rec solution.Record) {
	a.mu.Lock()
	defer a.mu.Unlock()
	k := key{model: rec.ModelName, scenario: rec.ScenarioID}
	if i, dup := a.index[k]; dup {
		a.records[i] = rec
		return
	}
	a.index[k] = len(a.records)
	a.records = append(a.records, rec)
}

// NoteFailure counts an attempt that produced no record — typically a solve
// call that found no usable backend. It keeps Attempts and NoResult honest
// without fabricating an empty record.
func (a *Analyzer) NoteFailure(modelName, scenarioID string, status solve.Status) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failures = append(a.failures, failure{
		key:    key{model: modelName, scenario: scenarioID},
		status: status,
	})
}

// Rank returns every stored record, best first: feasible records before
// infeasible ones regardless of scenario, then by cost, solve time and
// formulation name. The returned slice is a copy.
func (a *Analyzer) Rank() []solution.Record {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]solution.Record, len(a.records))
	copy(out, a.records)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// RankScenario is Rank restricted to one scenario's records.
func (a *Analyzer) RankScenario(scenarioID string) []solution.Record {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]solution.Record, 0, len(a.records))
	for _, r := range a.records {
		if r.ScenarioID == scenarioID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Best returns the top-ranked feasible record for a scenario; ok is false
// when no formulation produced a feasible plan.
func (a *Analyzer) Best(scenarioID string) (solution.Record, bool) {
	ranked := a.RankScenario(scenarioID)
	if len(ranked) == 0 || !ranked[0].Feasible {
		return solution.Record{}, false
	}
	return ranked[0], true
}

// less orders records best-first. Feasibility dominates cost: an infeasible
// plan never outranks a feasible one.
func less(x, y solution.Record) bool {
	if x.Feasible != y.Feasible {
		return x.Feasible
	}
	if x.Feasible && x.Cost != y.Cost {
		return x.Cost < y.Cost
	}
	if x.SolveTime != y.SolveTime {
		return x.SolveTime < y.SolveTime
	}
	return x.ModelName < y.ModelName
}

// Summaries aggregates per formulation, sorted by formulation name.
func (a *Analyzer) Summaries() []Summary {
	a.mu.Lock()
	defer a.mu.Unlock()

	type bucket struct {
		attempts, solved, infeasible, noResult int
		bestCost                               float64
		times                                  []float64 // seconds, feasible only
	}
	buckets := map[string]*bucket{}
	get := func(name string) *bucket {
		b, ok := buckets[name]
		if !ok {
			b = &bucket{bestCost: math.Inf(1)}
			buckets[name] = b
		}
		return b
	}

	for _, r := range a.records {
		b := get(r.ModelName)
		b.attempts++
		switch {
		case r.Feasible:
			b.solved++
			b.bestCost = math.Min(b.bestCost, r.Cost)
			b.times = append(b.times, r.SolveTime.Seconds())
		case r.Status == solve.StatusInfeasible, r.Status == solve.StatusSolved:
			// Proven infeasible, or claimed solved and overruled by the
			// validator: both are verdicts, not absent results.
			b.infeasible++
		default:
			b.noResult++
		}
	}
	for _, f := range a.failures {
		b := get(f.model)
		b.attempts++
		b.noResult++
	}

	names := make([]string, 0, len(buckets))
	for n := range buckets {
		names = append(names, n)
	}
	sort.Strings(names)

	out := make([]Summary, 0, len(names))
	for _, n := range names {
		b := buckets[n]
		s := Summary{
			Model:      n,
			Attempts:   b.attempts,
			Solved:     b.solved,
			Infeasible: b.infeasible,
			NoResult:   b.noResult,
			BestCost:   b.bestCost,
		}
		if b.attempts > 0 {
			s.FeasibleRate = float64(b.solved) / float64(b.attempts)
		}
		if len(b.times) > 0 {
			mean, std := stat.MeanStdDev(b.times, nil)
			s.MeanTime = time.Duration(mean * float64(time.Second))
			if !math.IsNaN(std) {
				s.StdDevTime = time.Duration(std * float64(time.Second))
			}
		}
		out = append(out, s)
	}
	return out
}

// SpeedRank orders formulation names by mean solve time over feasible
// records, fastest first; formulations with no feasible record sort last,
// alphabetically.
func (a *Analyzer) SpeedRank() []string {
	sums := a.Summaries()
	sort.SliceStable(sums, func(i, j int) bool {
		si, sj := sums[i], sums[j]
		if (si.Solved > 0) != (sj.Solved > 0) {
			return si.Solved > 0
		}
		if si.Solved > 0 && si.MeanTime != sj.MeanTime {
			return si.MeanTime < sj.MeanTime
		}
		return si.Model < sj.Model
	})
	names := make([]string, len(sums))
	for i, s := range sums {
		names[i] = s.Model
	}
	return names
}
