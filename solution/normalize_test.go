package solution_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/planopt/model"
	"github.com/katalvlaran/planopt/scenario"
	"github.com/katalvlaran/planopt/solution"
	"github.com/katalvlaran/planopt/solve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildModel(t *testing.T, kind model.Kind, demand []float64) *model.Model {
	t.Helper()
	cfg := scenario.DefaultConfig(len(demand))
	cfg.Demand = demand
	sc, err := scenario.Generate(cfg)
	require.NoError(t, err)
	m, err := model.Build(kind, sc)
	require.NoError(t, err)
	return m
}

// values assembles a raw value map from per-period series; y may be nil.
func values(x, s, y []float64) map[string]float64 {
	out := make(map[string]float64, 3*len(x))
	for t := 1; t <= len(x); t++ {
		out[model.ProductionVar(t)] = x[t-1]
		out[model.InventoryVar(t)] = s[t-1]
		if y != nil {
			out[model.SetupVar(t)] = y[t-1]
		}
	}
	return out
}

func TestNormalize_CleanLPPlan(t *testing.T) {
	m := buildModel(t, model.LP, []float64{100, 100, 100})
	raw := solve.RawResult{
		Status:    solve.StatusSolved,
		Values:    values([]float64{100, 100, 100}, []float64{0, 0, 0}, nil),
		Backend:   "simplex",
		SolveTime: 3 * time.Millisecond,
	}

	rec, err := solution.Normalize(raw, m, solution.DefaultTolerance())
	require.NoError(t, err)
	assert.True(t, rec.Feasible)
	assert.Empty(t, rec.Violations)
	assert.Equal(t, "LP", rec.ModelName)
	assert.Equal(t, m.Scenario.ID(), rec.ScenarioID)
	assert.Equal(t, "simplex", rec.Backend)
	assert.Equal(t, 3*time.Millisecond, rec.SolveTime)
	assert.Equal(t, []float64{100, 100, 100}, rec.Production)
	assert.Nil(t, rec.Setup)
	assert.InDelta(t, 3000.0, rec.Cost, 1e-9)
}

// TestNormalize_SnapsSolverNoise: tiny negatives and near-integral binaries
// are cleaned up without flagging violations.
func TestNormalize_SnapsSolverNoise(t *testing.T) {
	m := buildModel(t, model.MILP, []float64{100, 100})
	raw := solve.RawResult{
		Status: solve.StatusSolved,
		Values: values(
			[]float64{100, 99.9999999},
			[]float64{-1e-9, 2e-10},
			[]float64{0.9999999, 1.0000001},
		),
	}

	rec, err := solution.Normalize(raw, m, solution.DefaultTolerance())
	require.NoError(t, err)
	assert.True(t, rec.Feasible)
	assert.Equal(t, []float64{0, 0}, rec.Inventory)
	assert.Equal(t, []bool{true, true}, rec.Setup)
	// Cost comes from the snapped series: 200*10 production + 2*500 setups.
	assert.InDelta(t, 3000.0, rec.Cost, 1e-4)
}

// TestNormalize_CostRecomputedNotCopied: the solver-reported objective is
// ignored in favor of the formulation's own cost of the returned plan.
func TestNormalize_CostRecomputedNotCopied(t *testing.T) {
	m := buildModel(t, model.LP, []float64{100})
	raw := solve.RawResult{
		Status:    solve.StatusSolved,
		Values:    values([]float64{100}, []float64{0}, nil),
		Objective: 123456, // wrong on purpose
	}

	rec, err := solution.Normalize(raw, m, solution.DefaultTolerance())
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, rec.Cost, 1e-9)
	assert.InDelta(t, rec.Breakdown.Total, rec.Cost, 1e-12)
}

func TestNormalize_FlagsBalanceBreach(t *testing.T) {
	m := buildModel(t, model.LP, []float64{100, 100})
	raw := solve.RawResult{
		Status: solve.StatusSolved,
		Values: values([]float64{100, 50}, []float64{0, 0}, nil),
	}

	rec, err := solution.Normalize(raw, m, solution.DefaultTolerance())
	require.NoError(t, err)
	assert.False(t, rec.Feasible)
	require.Len(t, rec.Violations, 1)
	v := rec.Violations[0]
	assert.Equal(t, solution.ViolationBalance, v.Kind)
	assert.Equal(t, 2, v.Period)
	assert.InDelta(t, 50.0, v.Magnitude, 1e-9)
}

func TestNormalize_FlagsCapacityBreach(t *testing.T) {
	m := buildModel(t, model.LP, []float64{100, 100})
	raw := solve.RawResult{
		Status: solve.StatusSolved,
		Values: values([]float64{250, 100}, []float64{150, 150}, nil),
	}

	rec, err := solution.Normalize(raw, m, solution.DefaultTolerance())
	require.NoError(t, err)
	assert.False(t, rec.Feasible)
	require.Len(t, rec.Violations, 1)
	assert.Equal(t, solution.ViolationCapacity, rec.Violations[0].Kind)
	assert.InDelta(t, 50.0, rec.Violations[0].Magnitude, 1e-9) // 250 over a 200 cap
}

func TestNormalize_FlagsNegativity(t *testing.T) {
	m := buildModel(t, model.LP, []float64{100, 100})
	raw := solve.RawResult{
		Status: solve.StatusSolved,
		Values: values([]float64{150, 25}, []float64{50, -25}, nil),
	}

	rec, err := solution.Normalize(raw, m, solution.DefaultTolerance())
	require.NoError(t, err)
	assert.False(t, rec.Feasible)
	kinds := map[solution.ViolationKind]bool{}
	for _, v := range rec.Violations {
		kinds[v.Kind] = true
	}
	assert.True(t, kinds[solution.ViolationNegativity])
}

// TestNormalize_FractionalSetupLinkage: a relaxed setup indicator that does
// not cover production is a capacity violation even though the snapped Setup
// reads false.
func TestNormalize_FractionalSetupLinkage(t *testing.T) {
	m := buildModel(t, model.MILP, []float64{80})
	raw := solve.RawResult{
		Status: solve.StatusSolved,
		Values: values([]float64{80}, []float64{0}, []float64{0.2}),
	}

	rec, err := solution.Normalize(raw, m, solution.DefaultTolerance())
	require.NoError(t, err)
	assert.False(t, rec.Feasible)
	require.Len(t, rec.Violations, 1)
	assert.Equal(t, solution.ViolationCapacity, rec.Violations[0].Kind)
	assert.InDelta(t, 40.0, rec.Violations[0].Magnitude, 1e-9) // 80 - 200*0.2
	assert.Equal(t, []bool{false}, rec.Setup)
}

func TestNormalize_StatusOnlyResults(t *testing.T) {
	m := buildModel(t, model.LP, []float64{100})
	for _, st := range []solve.Status{solve.StatusInfeasible, solve.StatusTimeout, solve.StatusError} {
		rec, err := solution.Normalize(solve.RawResult{Status: st}, m, solution.DefaultTolerance())
		require.NoError(t, err, st)
		assert.Equal(t, st, rec.Status)
		assert.False(t, rec.Feasible)
		assert.False(t, rec.HasSolution())
	}
}

func TestNormalize_MissingVariable(t *testing.T) {
	m := buildModel(t, model.LP, []float64{100, 100})
	vals := values([]float64{100, 100}, []float64{0, 0}, nil)
	delete(vals, model.InventoryVar(2))

	_, err := solution.Normalize(solve.RawResult{Status: solve.StatusSolved, Values: vals}, m, solution.DefaultTolerance())
	assert.ErrorIs(t, err, solution.ErrMissingVariable)
}

// TestNormalize_Idempotent: normalizing a record's own series again changes
// nothing.
func TestNormalize_Idempotent(t *testing.T) {
	m := buildModel(t, model.MILP, []float64{100, 100})
	raw := solve.RawResult{
		Status: solve.StatusSolved,
		Values: values([]float64{100.0000001, 100}, []float64{1e-9, 0}, []float64{0.999, 1}),
	}

	first, err := solution.Normalize(raw, m, solution.DefaultTolerance())
	require.NoError(t, err)

	again := solve.RawResult{Status: solve.StatusSolved, Values: map[string]float64{}}
	for tt := 1; tt <= 2; tt++ {
		again.Values[model.ProductionVar(tt)] = first.Production[tt-1]
		again.Values[model.InventoryVar(tt)] = first.Inventory[tt-1]
		y := 0.0
		if first.Setup[tt-1] {
			y = 1.0
		}
		again.Values[model.SetupVar(tt)] = y
	}
	second, err := solution.Normalize(again, m, solution.DefaultTolerance())
	require.NoError(t, err)
	assert.Equal(t, first.Production, second.Production)
	assert.Equal(t, first.Inventory, second.Inventory)
	assert.Equal(t, first.Setup, second.Setup)
	assert.Equal(t, first.Cost, second.Cost)
}

// TestNormalize_RelaxedFeasibilityCarriesOver: a plan feasible for the LP
// with every setup on is feasible for the discrete formulation too.
func TestNormalize_RelaxedFeasibilityCarriesOver(t *testing.T) {
	demand := []float64{100, 50, 150}
	lp := buildModel(t, model.LP, demand)
	milp := buildModel(t, model.MILP, demand)

	x := []float64{120, 60, 120}
	s := []float64{20, 30, 0}

	lpRec, err := solution.Normalize(solve.RawResult{
		Status: solve.StatusSolved,
		Values: values(x, s, nil),
	}, lp, solution.DefaultTolerance())
	require.NoError(t, err)
	require.True(t, lpRec.Feasible)

	milpRec, err := solution.Normalize(solve.RawResult{
		Status: solve.StatusSolved,
		Values: values(x, s, []float64{1, 1, 1}),
	}, milp, solution.DefaultTolerance())
	require.NoError(t, err)
	assert.True(t, milpRec.Feasible)
}

func TestTolerance_ScalesWithInstance(t *testing.T) {
	small := buildModel(t, model.LP, []float64{10, 10})
	big := buildModel(t, model.LP, []float64{10, 10})
	big.Scenario.Capacity = 1e6

	tol := solution.DefaultTolerance()
	assert.InDelta(t, 1e-6*200, tol.Absolute(small), 1e-15) // capacity dominates
	assert.InDelta(t, 1.0, tol.Absolute(big), 1e-12)
}
