package solve

import (
	"context"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/planopt/model"
)

func init() { Register(simplexBackend{}) }

// defaultSimplexTol matches gonum's documented default pivot tolerance.
const defaultSimplexTol = 1e-10

// simplexBackend solves the LP formulation with gonum's dense simplex
// method. The bounded-row model is converted to gonum's standard form
// (min cᵀv, A·v = b, v ≥ 0) by adding one slack column per capacity row;
// the conversion is pure problem construction, the solving is gonum's.
type simplexBackend struct{}

func (simplexBackend) Name() string { return "simplex" }

func (simplexBackend) Supports(kind model.Kind) bool { return kind == model.LP }

func (simplexBackend) Solve(ctx context.Context, m *model.Model, opts Options) (RawResult, error) {
	if err := ctx.Err(); err != nil {
		return RawResult{Status: StatusTimeout}, nil
	}

	sc := m.Scenario
	T := sc.Periods

	// Columns: x_1..x_T, s_1..s_T, then one slack per capacity row.
	n := 3 * T
	rows := m.Rows()
	a := mat.NewDense(len(rows), n, nil)
	b := make([]float64, len(rows))
	slack := 2 * T
	for i, r := range rows {
		for j, c := range r.Cols {
			a.Set(i, c, r.Coefs[j])
		}
		switch r.Kind {
		case model.RowBalance:
			b[i] = r.Hi // equality, emitted as-is
		case model.RowCapacity:
			a.Set(i, slack, 1) // x_t + u_t = capacity
			b[i] = r.Hi
			slack++
		}
	}

	c := make([]float64, n)
	copy(c, m.LinearCosts()) // slack columns stay at zero cost

	tol := opts.Tolerance
	if tol <= 0 {
		tol = defaultSimplexTol
	}

	opt, v, err := lp.Simplex(c, a, b, tol, nil)
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return RawResult{Status: StatusInfeasible}, nil
	case errors.Is(err, lp.ErrUnbounded):
		// Cannot happen with non-negative costs; surfaced as a solver error.
		return RawResult{}, fmt.Errorf("simplex: unbounded planning problem: %w", err)
	case err != nil:
		return RawResult{}, fmt.Errorf("simplex: %w", err)
	}

	values := make(map[string]float64, 2*T)
	for t := 1; t <= T; t++ {
		values[model.ProductionVar(t)] = v[t-1]
		values[model.InventoryVar(t)] = v[T+t-1]
	}
	return RawResult{
		Status:    StatusSolved,
		Values:    values,
		Objective: opt,
	}, nil
}
