package model

import "math"

// LinearCosts returns the linear objective coefficients per column:
// production cost on x, holding cost on s, setup cost on y (MILP).
// For QP and NLP this is the linear portion only; ObjectiveValue is the
// authoritative objective.
func (m *Model) LinearCosts() []float64 {
	sc := m.Scenario
	c := make([]float64, m.NumVars())
	for t := 1; t <= sc.Periods; t++ {
		c[m.xIdx(t)] = sc.ProductionCost
		c[m.sIdx(t)] = sc.HoldingCost
		if m.Kind == MILP {
			c[m.yIdx(t)] = sc.SetupCost
		}
	}
	return c
}

// QuadraticTerms returns the upper-triangular Hessian of the QP smoothing
// penalty under the 0.5·vᵀHv convention, so that
//
//	0.5·vᵀHv = w·Σ_{t=2..T} (x_t - x_{t-1})²
//
// Empty for every other kind and for single-period horizons. The Hessian is
// positive semidefinite by construction (a weighted graph Laplacian of the
// period chain), so the QP stays convex.
func (m *Model) QuadraticTerms() []QuadTerm {
	T := m.Scenario.Periods
	w := m.Scenario.SmoothWeight
	if m.Kind != QP || T < 2 || w == 0 {
		return nil
	}
	terms := make([]QuadTerm, 0, 2*T-1)
	for t := 1; t <= T; t++ {
		d := 4 * w
		if t == 1 || t == T {
			d = 2 * w
		}
		terms = append(terms, QuadTerm{I: m.xIdx(t), J: m.xIdx(t), V: d})
		if t < T {
			terms = append(terms, QuadTerm{I: m.xIdx(t), J: m.xIdx(t + 1), V: -2 * w})
		}
	}
	return terms
}

// ObjectiveValue evaluates the formulation's objective at the full column
// vector v (layout per VarNames). This is the reference formula the
// normalizer's round-trip check recomputes against.
func (m *Model) ObjectiveValue(v []float64) float64 {
	return m.CostBreakdown(v).Total
}

// CostBreakdown decomposes the objective at v into its components.
func (m *Model) CostBreakdown(v []float64) Breakdown {
	sc := m.Scenario
	var b Breakdown
	for t := 1; t <= sc.Periods; t++ {
		x := v[m.xIdx(t)]
		b.Production += sc.ProductionCost * x
		b.Holding += sc.HoldingCost * v[m.sIdx(t)]
		switch m.Kind {
		case MILP:
			b.Setup += sc.SetupCost * v[m.yIdx(t)]
		case QP:
			if t > 1 {
				d := x - v[m.xIdx(t-1)]
				b.Smoothing += sc.SmoothWeight * d * d
			}
		case NLP:
			if x > 0 {
				b.Concave += sc.ConcaveCoeff * math.Pow(x, sc.ConcaveExponent)
			}
		}
	}
	b.Total = b.Production + b.Holding + b.Setup + b.Smoothing + b.Concave
	return b
}
