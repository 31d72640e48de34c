package solve

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/planopt/model"
)

func init() { Register(descentBackend{}) }

// penaltyWeight scales the quadratic penalties that replace the inequality
// constraints in the reduced problem. Large enough that residuals at the
// minimizer stay well below the validator's scaled tolerance, small enough
// not to swamp finite-difference gradients.
const penaltyWeight = 1e6

// descentBackend solves the smooth formulations (QP, NLP) with gonum's
// L-BFGS minimizer.
//
// Reformulation (construction only, no solving logic):
//   - the balance equalities are eliminated by expressing each inventory
//     level through the production vector z: s_t = s_{t-1} + z_t - d_t;
//   - the remaining constraints (z ≥ 0, z ≤ capacity, s(z) ≥ 0) become
//     smooth quadratic penalties added to the objective.
//
// The NLP objective is non-convex; a stalled line search is therefore
// accepted as a local-optimum result and left to the independent validator,
// which judges feasibility regardless of what the solver claims.
type descentBackend struct{}

func (descentBackend) Name() string { return "descent" }

func (descentBackend) Supports(kind model.Kind) bool {
	return kind == model.QP || kind == model.NLP
}

func (db descentBackend) Solve(ctx context.Context, m *model.Model, opts Options) (RawResult, error) {
	if err := ctx.Err(); err != nil {
		return RawResult{Status: StatusTimeout}, nil
	}

	sc := m.Scenario
	T := sc.Periods

	inv := func(z []float64, out []float64) {
		s := sc.InitialInventory
		for t := 0; t < T; t++ {
			s += z[t] - sc.Demand[t]
			out[t] = s
		}
	}

	sBuf := make([]float64, T)
	objective := func(z []float64) float64 {
		inv(z, sBuf)
		var f float64
		for t := 0; t < T; t++ {
			f += sc.ProductionCost * z[t]
			f += sc.HoldingCost * sBuf[t]
			switch m.Kind {
			case model.QP:
				if t > 0 {
					d := z[t] - z[t-1]
					f += sc.SmoothWeight * d * d
				}
			case model.NLP:
				if z[t] > 0 {
					f += sc.ConcaveCoeff * math.Pow(z[t], sc.ConcaveExponent)
				}
			}
			// Penalties for z_t < 0, z_t > capacity, s_t < 0.
			if z[t] < 0 {
				f += penaltyWeight * z[t] * z[t]
			}
			if over := z[t] - sc.Capacity; over > 0 {
				f += penaltyWeight * over * over
			}
			if sBuf[t] < 0 {
				f += penaltyWeight * sBuf[t] * sBuf[t]
			}
		}
		return f
	}

	// Initial point: level production at the average demand rate, clamped
	// to capacity.
	avg := sc.TotalDemand() / float64(T)
	if avg > sc.Capacity {
		avg = sc.Capacity
	}
	z0 := make([]float64, T)
	for t := range z0 {
		z0[t] = avg
	}

	settings := &optimize.Settings{
		MajorIterations: 5000,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-10,
			Relative:   1e-12,
			Iterations: 100,
		},
	}
	if deadline, ok := ctx.Deadline(); ok {
		settings.Runtime = time.Until(deadline)
	}

	// L-BFGS demands a gradient; the penalized objective gets one by central
	// finite differences, like driving a generic NLP method without analytic
	// derivatives.
	problem := optimize.Problem{
		Func: objective,
		Grad: func(grad, z []float64) {
			fd.Gradient(grad, objective, z, nil)
		},
	}

	res, err := optimize.Minimize(problem, z0, settings, &optimize.LBFGS{})
	if err != nil &&
		!errors.Is(err, optimize.ErrLinesearcherFailure) &&
		!errors.Is(err, optimize.ErrNoProgress) {
		return RawResult{}, fmt.Errorf("descent: %w", err)
	}
	if res == nil || len(res.X) != T {
		return RawResult{}, fmt.Errorf("descent: minimizer returned no point")
	}
	if res.Status == optimize.RuntimeLimit {
		return RawResult{Status: StatusTimeout}, nil
	}
	for _, z := range res.X {
		if math.IsNaN(z) || math.IsInf(z, 0) {
			return RawResult{}, fmt.Errorf("descent: non-finite solution value")
		}
	}

	inv(res.X, sBuf)
	values := make(map[string]float64, 2*T)
	full := make([]float64, m.NumVars())
	for t := 1; t <= T; t++ {
		values[model.ProductionVar(t)] = res.X[t-1]
		values[model.InventoryVar(t)] = sBuf[t-1]
		ix, _ := m.Index(model.ProductionVar(t))
		is, _ := m.Index(model.InventoryVar(t))
		full[ix] = res.X[t-1]
		full[is] = sBuf[t-1]
	}

	// Objective reported on the model's own formula (penalties excluded).
	return RawResult{
		Status:    StatusSolved,
		Values:    values,
		Objective: m.ObjectiveValue(full),
	}, nil
}
