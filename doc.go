// Package planopt compares optimization formulations of the multi-period
// production planning problem: decide how much to produce each period so
// demand is always met, capacity is never exceeded, and total cost is
// minimal.
//
// 🚀 What is planopt?
//
//	One planning problem, four mathematical lenses:
//		• MILP — linear costs plus a fixed setup charge per producing period
//		• LP   — the continuous relaxation, linear production & holding cost
//		• QP   — linear costs plus a quadratic production-smoothing penalty
//		• NLP  — concave production cost (economies of scale)
//
//	planopt builds all four from one scenario, solves them through
//	pluggable backends, validates every answer independently of the
//	solver's claims, and ranks the outcomes.
//
// ✨ Why choose planopt?
//
//   - Deterministic – seeded scenario generation, content-derived IDs,
//     reproducible rankings
//   - Honest results – feasibility is re-checked here; a cheap plan that
//     violates its constraints never wins
//   - Pure Go by default – gonum-powered simplex and descent backends;
//     the HiGHS solver is an opt-in build tag, never a requirement
//   - Failure-isolated – one formulation failing never stops the others
//
// Everything is organized under six subpackages:
//
//	scenario/ — demand patterns, costs, deterministic instance generation
//	model/    — the four formulation builders over one shared scenario
//	solve/    — backend registry, preference fallback, bundled backends
//	solution/ — normalization, snapping, independent feasibility checking
//	analyze/  — per-formulation statistics and cost/speed rankings
//	compare/  — the parallel run-them-all entry point
//	config/   — run files for everything above
//
// Quick sketch of one period t:
//
//	s[t-1] + x[t] = d[t] + s[t],   0 ≤ x[t] ≤ capacity
//
//	produce x, carry s, meet d — the four formulations only disagree
//	about what producing costs.
//
// Dive into the package docs for contracts, tolerances and backend
// details.
//
//	go get github.com/katalvlaran/planopt
package planopt
