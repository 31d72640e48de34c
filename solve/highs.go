//go:build highs

package solve

import (
	"context"
	"fmt"

	"github.com/bartolsthoorn/gohighs/highs"

	"github.com/katalvlaran/planopt/model"
)

func init() { Register(highsBackend{}) }

// highsBackend wraps the HiGHS solver (cgo). It is the only backend that
// handles the MILP formulation; it also covers LP and, through a Hessian,
// QP. Built only under the `highs` build tag so the pure-Go backends remain
// usable without the shared library.
type highsBackend struct{}

func (highsBackend) Name() string { return "highs" }

func (highsBackend) Supports(kind model.Kind) bool {
	return kind == model.MILP || kind == model.LP || kind == model.QP
}

func (highsBackend) Solve(ctx context.Context, m *model.Model, opts Options) (RawResult, error) {
	if err := ctx.Err(); err != nil {
		return RawResult{Status: StatusTimeout}, nil
	}

	hm := highs.Model{
		ColCosts: m.LinearCosts(),
		ColLower: m.Lower(),
		ColUpper: m.Upper(),
	}
	for _, r := range m.Rows() {
		hm.AddSparseRow(r.Lo, r.Cols, r.Coefs, r.Hi)
	}
	if m.Kind == model.MILP {
		types := make([]highs.VariableType, m.NumVars())
		for i, isInt := range m.IntegerMask() {
			if isInt {
				types[i] = highs.VariableTypeInteger
			}
		}
		hm.VarTypes = types
	}
	for _, q := range m.QuadraticTerms() {
		hm.Hessian = append(hm.Hessian, highs.Nonzero{Row: q.I, Col: q.J, Val: q.V})
	}

	solveOpts := []highs.SolveOption{highs.WithOutput(false)}
	if opts.TimeLimit > 0 {
		solveOpts = append(solveOpts, highs.WithTimeLimit(opts.TimeLimit.Seconds()))
	}
	if opts.Tolerance > 0 && m.Kind == model.MILP {
		solveOpts = append(solveOpts, highs.WithMIPRelGap(opts.Tolerance))
	}

	sol, err := hm.Solve(solveOpts...)
	if err != nil {
		return RawResult{}, fmt.Errorf("highs: %w", err)
	}

	switch {
	case sol.IsInfeasible():
		return RawResult{Status: StatusInfeasible}, nil
	case sol.IsTimeLimit():
		return RawResult{Status: StatusTimeout}, nil
	case sol.IsUnbounded():
		return RawResult{}, fmt.Errorf("highs: unbounded planning problem")
	case !sol.HasSolution():
		return RawResult{}, fmt.Errorf("highs: terminated with status %v", sol.Status)
	}

	names := m.VarNames()
	values := make(map[string]float64, len(names))
	for i, name := range names {
		values[name] = sol.ColValues[i]
	}
	return RawResult{
		Status:    StatusSolved,
		Values:    values,
		Objective: sol.Objective,
	}, nil
}
