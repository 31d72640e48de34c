// Package model builds the four formulations of the production-planning
// problem — MILP, LP, QP and NLP — from a shared constraint skeleton.
//
// Every formulation built from the same scenario.Scenario optimizes over the
// same data and, once the MILP setup indicator is relaxed to 1 everywhere,
// over the identical feasible region:
//
//			balance:   s_{t-1} + x_t = d_t + s_t   (s_0 = initial inventory)
//			capacity:  x_t ≤ capacity              (LP / QP / NLP)
//	                x_t ≤ M·y_t, M = capacity   (MILP, y_t ∈ {0,1})
//			domain:    x_t ≥ 0, s_t ≥ 0
//
// The variants diverge only in objective curvature and variable domains:
//
//   - MILP — linear objective with a fixed setup charge per producing period.
//   - LP   — linear objective, no setup term, all variables continuous.
//   - QP   — LP plus a convex quadratic penalty on production changes
//     (positive semidefinite, so the problem stays convex).
//   - NLP  — LP with a concave production-cost term (diminishing marginal
//     cost), non-convex in general; solvers may return local optima.
//
// Constraints are emitted as bounded rows lo ≤ a·v ≤ hi over a fixed column
// layout (x_1..x_T, s_1..s_T, then y_1..y_T for MILP), the form every solver
// backend consumes directly. Construction never drops a period: a malformed
// scenario fails with ErrConstruction before any row is emitted.
package model
