// SPDX-License-Identifier: MIT

package compare

import (
	"context"
	"fmt"
	"runtime"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/planopt/analyze"
	"github.com/katalvlaran/planopt/model"
	"github.com/katalvlaran/planopt/scenario"
	"github.com/katalvlaran/planopt/solution"
	"github.com/katalvlaran/planopt/solve"
)

// Run compares the given formulation kinds on one scenario.
//
// Contracts:
//   - kinds must be non-empty and free of duplicates; the scenario must
//     validate. These are the only conditions under which Run errors.
//   - Formulations solve concurrently, at most opts.Workers at a time.
//     Each failure — build, solve, normalize, even a panicking backend —
//     is contained in that formulation's Outcome.
//   - Report.Records and Report.Outcomes are index-aligned with kinds, and
//     the Analyzer is fed in kinds order after all workers finish, so a run
//     is deterministic apart from solve timings.
//
// Complexity: O(len(kinds)) solver calls; memory O(len(kinds) * T).
func Run(ctx context.Context, sc scenario.Scenario, kinds []model.Kind, opts Options) (Report, error) {
	if len(kinds) == 0 {
		return Report{}, ErrNoKinds
	}
	seen := map[model.Kind]bool{}
	for _, k := range kinds {
		if seen[k] {
			return Report{}, fmt.Errorf("%w: %s", ErrDuplicateKind, k)
		}
		seen[k] = true
	}
	if err := sc.Validate(); err != nil {
		return Report{}, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	records := make([]solution.Record, len(kinds))
	outcomes := make([]Outcome, len(kinds))

	p := pool.New().WithMaxGoroutines(workers)
	for i, k := range kinds {
		i, k := i, k // per-iteration copies; the go directive predates Go 1.22 loop scoping
		p.Go(func() {
			records[i], outcomes[i] = runOne(ctx, sc, k, opts)
		})
	}
	p.Wait()

	a := analyze.New()
	for i, rec := range records {
		if outcomes[i].Err != nil {
			a.NoteFailure(kinds[i].String(), sc.ID(), solve.StatusError)
			continue
		}
		// Pairs are unique by the duplicate-kind check above.
		_ = a.Add(rec)
	}

	return Report{Records: records, Outcomes: outcomes, Analyzer: a}, nil
}

// runOne takes one formulation from build to normalized record. It never
// lets a failure escape: panics and errors both land in the Outcome.
func runOne(ctx context.Context, sc scenario.Scenario, kind model.Kind, opts Options) (rec solution.Record, out Outcome) {
	out.Model = kind.String()
	defer func() {
		if r := recover(); r != nil {
			out.Status = solve.StatusError
			out.Err = fmt.Errorf("compare: %s backend panic: %v", kind, r)
			rec = solution.Record{}
		}
	}()

	m, err := model.Build(kind, sc)
	if err != nil {
		out.Status = solve.StatusError
		out.Err = err
		return solution.Record{}, out
	}

	raw, err := solve.Solve(ctx, m, opts.Solve)
	if err != nil {
		out.Status = solve.StatusError
		out.Err = err
		return solution.Record{}, out
	}

	rec, err = solution.Normalize(raw, m, opts.Tolerance)
	if err != nil {
		out.Status = solve.StatusError
		out.Err = err
		return solution.Record{}, out
	}
	out.Status = rec.Status
	return rec, out
}
