package model_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/planopt/model"
	"github.com/katalvlaran/planopt/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refScenario(t *testing.T) scenario.Scenario {
	t.Helper()
	cfg := scenario.DefaultConfig(3)
	cfg.Demand = []float64{100, 100, 100}
	cfg.Capacity = 150
	sc, err := scenario.Generate(cfg)
	require.NoError(t, err)
	return sc
}

// TestBuild_VariableLayout checks names, bounds and the integer mask for
// every kind.
func TestBuild_VariableLayout(t *testing.T) {
	sc := refScenario(t)

	for _, kind := range model.Kinds() {
		m, err := model.Build(kind, sc)
		require.NoError(t, err, kind)

		wantVars := 6
		if kind == model.MILP {
			wantVars = 9
		}
		assert.Equal(t, wantVars, m.NumVars(), kind)

		ix, ok := m.Index(model.ProductionVar(2))
		require.True(t, ok, kind)
		assert.Equal(t, 150.0, m.Upper()[ix], "production bounded by capacity")
		assert.Equal(t, 0.0, m.Lower()[ix])

		is, ok := m.Index(model.InventoryVar(3))
		require.True(t, ok, kind)
		assert.True(t, math.IsInf(m.Upper()[is], 1), "inventory unbounded above")

		if kind == model.MILP {
			iy, ok := m.Index(model.SetupVar(1))
			require.True(t, ok)
			assert.True(t, m.IntegerMask()[iy], "setup indicator is integral")
			assert.Equal(t, 1.0, m.Upper()[iy])
		} else {
			_, ok := m.Index(model.SetupVar(1))
			assert.False(t, ok, "%s has no setup variables", kind)
			for _, isInt := range m.IntegerMask() {
				assert.False(t, isInt)
			}
		}
	}
}

// TestBuild_InitialInventoryInFirstBalance verifies that period 1's balance
// row uses the configured initial inventory (folded into its right-hand
// side) for every formulation.
func TestBuild_InitialInventoryInFirstBalance(t *testing.T) {
	cfg := scenario.DefaultConfig(3)
	cfg.Demand = []float64{100, 100, 100}
	cfg.InitialInventory = 40
	sc, err := scenario.Generate(cfg)
	require.NoError(t, err)

	for _, kind := range model.Kinds() {
		m, err := model.Build(kind, sc)
		require.NoError(t, err, kind)

		first := m.Rows()[0]
		require.Equal(t, model.RowBalance, first.Kind)
		require.Equal(t, 1, first.Period)
		assert.Equal(t, 100.0-40.0, first.Lo, kind)
		assert.Equal(t, first.Lo, first.Hi, "balance is an equality")
	}
}

// TestBuild_RowCounts verifies that no period is dropped: T balance rows and
// T capacity rows, period-ascending.
func TestBuild_RowCounts(t *testing.T) {
	cfg := scenario.DefaultConfig(7)
	sc, err := scenario.Generate(cfg)
	require.NoError(t, err)

	for _, kind := range model.Kinds() {
		m, err := model.Build(kind, sc)
		require.NoError(t, err, kind)
		rows := m.Rows()
		require.Len(t, rows, 14, kind)
		for i := 0; i < 7; i++ {
			assert.Equal(t, model.RowBalance, rows[i].Kind)
			assert.Equal(t, i+1, rows[i].Period)
			assert.Equal(t, model.RowCapacity, rows[7+i].Kind)
			assert.Equal(t, i+1, rows[7+i].Period)
		}
	}
}

// TestBuild_RelaxedRegionIdentical is the cross-model invariant: the MILP
// capacity rows evaluated at y_t = 1 equal the LP capacity rows on every
// production vector.
func TestBuild_RelaxedRegionIdentical(t *testing.T) {
	sc := refScenario(t)

	milp, err := model.Build(model.MILP, sc)
	require.NoError(t, err)
	lp, err := model.Build(model.LP, sc)
	require.NoError(t, err)

	mrows := milp.RelaxedRows()
	lrows := lp.RelaxedRows()
	require.Len(t, mrows, len(lrows))

	probe := []float64{130, 20, 150, 0, 0, 0} // x then s, shared layout prefix
	for i := range mrows {
		assert.Equal(t, lrows[i].Hi, mrows[i].Hi, "period %d bound", i+1)
		assert.Equal(t, lrows[i].Eval(probe), mrows[i].Eval(probe), "period %d", i+1)
	}
}

// TestBuild_BigMEqualsCapacity pins the deliberate coupling: no silently
// widened M.
func TestBuild_BigMEqualsCapacity(t *testing.T) {
	sc := refScenario(t)
	m, err := model.Build(model.MILP, sc)
	require.NoError(t, err)
	assert.Equal(t, sc.Capacity, m.BigM)

	// The linkage row itself carries -M on y.
	link := m.Rows()[3] // first capacity row
	require.Equal(t, model.RowCapacity, link.Kind)
	assert.Equal(t, []float64{1, -sc.Capacity}, link.Coefs)
}

// TestBuild_Errors covers the rejection paths.
func TestBuild_Errors(t *testing.T) {
	sc := refScenario(t)

	_, err := model.Build(model.Kind(99), sc)
	assert.ErrorIs(t, err, model.ErrUnknownKind)
	assert.ErrorIs(t, err, model.ErrConstruction)

	bad := sc
	bad.Demand = sc.Demand[:2]
	_, err = model.Build(model.LP, bad)
	assert.ErrorIs(t, err, model.ErrBadScenario)
	assert.ErrorIs(t, err, scenario.ErrDemandLength, "scenario cause surfaces through the wrap")
}

// TestParseKind round-trips all names and rejects unknowns.
func TestParseKind(t *testing.T) {
	for _, k := range model.Kinds() {
		got, err := model.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := model.ParseKind("SOCP")
	assert.ErrorIs(t, err, model.ErrUnknownKind)
}
