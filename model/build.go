package model

import (
	"fmt"

	"github.com/katalvlaran/planopt/scenario"
)

// Model is one solver-ready formulation. It references its Scenario
// read-only; two Models built from the same Scenario share data but never
// mutate it. Treat every slice returned by accessors as read-only.
type Model struct {
	Kind     Kind
	Scenario scenario.Scenario

	// BigM is the linkage constant of the MILP capacity row, deliberately
	// equal to Scenario.Capacity: when per-period demand exceeds capacity
	// this keeps the relaxed feasible region identical across formulations
	// (all four go infeasible together) instead of silently widening the
	// MILP one.
	BigM float64

	names   []string
	index   map[string]int
	lower   []float64
	upper   []float64
	integer []bool
	rows    []Row
}

// Build constructs the formulation of the given kind over sc.
//
// Contracts:
//   - sc is validated first; a malformed scenario fails with ErrConstruction
//     (wrapping the scenario sentinel) before any row is emitted.
//   - Exactly T balance rows and T capacity rows are emitted, one per period;
//     a period is never silently dropped.
//
// Complexity: O(T) time and space.
func Build(kind Kind, sc scenario.Scenario) (*Model, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadScenario, err)
	}

	T := sc.Periods
	cols := 2 * T
	if kind == MILP {
		cols = 3 * T
	}

	m := &Model{
		Kind:     kind,
		Scenario: sc,
		BigM:     sc.Capacity,
		names:    make([]string, cols),
		index:    make(map[string]int, cols),
		lower:    make([]float64, cols),
		upper:    make([]float64, cols),
		integer:  make([]bool, cols),
		rows:     make([]Row, 0, 2*T),
	}

	for t := 1; t <= T; t++ {
		m.defineVar(m.xIdx(t), ProductionVar(t), 0, sc.Capacity, false)
		m.defineVar(m.sIdx(t), InventoryVar(t), 0, noBound, false)
		if kind == MILP {
			m.defineVar(m.yIdx(t), SetupVar(t), 0, 1, true)
		}
	}

	// Balance: s_{t-1} + x_t - s_t = d_t, with s_0 folded into the first
	// right-hand side.
	for t := 1; t <= T; t++ {
		rhs := sc.Demand[t-1]
		cIdx := []int{m.xIdx(t), m.sIdx(t)}
		coef := []float64{1, -1}
		if t == 1 {
			rhs -= sc.InitialInventory
		} else {
			cIdx = append(cIdx, m.sIdx(t-1))
			coef = append(coef, 1)
		}
		m.rows = append(m.rows, Row{
			Kind: RowBalance, Period: t,
			Cols: cIdx, Coefs: coef,
			Lo: rhs, Hi: rhs,
		})
	}

	// Capacity: x_t ≤ capacity, or the big-M linkage for MILP.
	for t := 1; t <= T; t++ {
		r := Row{Kind: RowCapacity, Period: t, Lo: -noBound}
		if kind == MILP {
			r.Cols = []int{m.xIdx(t), m.yIdx(t)}
			r.Coefs = []float64{1, -m.BigM}
			r.Hi = 0
		} else {
			r.Cols = []int{m.xIdx(t)}
			r.Coefs = []float64{1}
			r.Hi = sc.Capacity
		}
		m.rows = append(m.rows, r)
	}

	return m, nil
}

func (m *Model) defineVar(idx int, name string, lo, hi float64, isInt bool) {
	m.names[idx] = name
	m.index[name] = idx
	m.lower[idx] = lo
	m.upper[idx] = hi
	m.integer[idx] = isInt
}

// Column layout: x_1..x_T, s_1..s_T, then y_1..y_T for MILP. t is 1-based.
func (m *Model) xIdx(t int) int { return t - 1 }
func (m *Model) sIdx(t int) int { return m.Scenario.Periods + t - 1 }
func (m *Model) yIdx(t int) int { return 2*m.Scenario.Periods + t - 1 }

// T returns the planning horizon length.
func (m *Model) T() int { return m.Scenario.Periods }

// Name returns the formulation name used as the record key ("MILP", ...).
func (m *Model) Name() string { return m.Kind.String() }

// NumVars returns the number of columns.
func (m *Model) NumVars() int { return len(m.names) }

// VarNames returns the column names in layout order. Read-only.
func (m *Model) VarNames() []string { return m.names }

// Index resolves a variable name to its column.
func (m *Model) Index(name string) (int, bool) {
	i, ok := m.index[name]
	return i, ok
}

// Lower returns the per-column lower bounds. Read-only.
func (m *Model) Lower() []float64 { return m.lower }

// Upper returns the per-column upper bounds (inventory is unbounded above,
// expressed as +Inf). Read-only.
func (m *Model) Upper() []float64 { return m.upper }

// IntegerMask marks the binary setup columns; all false except MILP's y.
// Read-only.
func (m *Model) IntegerMask() []bool { return m.integer }

// Rows returns the constraint rows: T balance equalities followed by T
// capacity rows, period-ascending within each family. Read-only.
func (m *Model) Rows() []Row { return m.rows }

// RelaxedRows returns the capacity rows with the setup indicator fixed to 1:
// for MILP the big-M linkage collapses to x_t ≤ M, for the other kinds the
// rows are returned unchanged. Every formulation built from one Scenario
// yields the same relaxed rows — the cross-model equivalence invariant.
func (m *Model) RelaxedRows() []Row {
	out := make([]Row, 0, m.T())
	for _, r := range m.rows {
		if r.Kind != RowCapacity {
			continue
		}
		if m.Kind != MILP {
			out = append(out, r)
			continue
		}
		out = append(out, Row{
			Kind: RowCapacity, Period: r.Period,
			Cols:  []int{r.Cols[0]},
			Coefs: []float64{1},
			Lo:    -noBound, Hi: m.BigM,
		})
	}
	return out
}
