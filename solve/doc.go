// Package solve wraps heterogeneous optimization backends behind one
// adapter contract and encodes every solve outcome — including infeasibility,
// timeout and solver failure — as data rather than Go errors.
//
// A Backend accepts a *model.Model and returns a RawResult holding the
// solver-native status, variable values (by model variable name), objective
// and nothing else; values are reported in the solver's native precision,
// never rounded here. Backends register themselves by name; Solve walks the
// caller's ordered preference list and falls back to the next entry when a
// backend is unregistered or reports itself unavailable, so a missing
// backend is not a solve failure.
//
// Built-in backends:
//
//   - "simplex" — gonum's dense simplex method; LP only.
//   - "descent" — gonum's L-BFGS over a smooth penalty reformulation;
//     QP and NLP. The NLP objective is non-convex, so a local optimum is an
//     accepted outcome.
//   - "highs"   — the HiGHS solver via cgo bindings; MILP, LP and QP.
//     Compiled in only under the `highs` build tag; without the tag the
//     name simply stays unregistered and the fallback path applies.
//
// Wall-clock timing covers the backend call only, never model construction.
// The context governs cancellation; an expired deadline yields a
// StatusTimeout result instead of blocking indefinitely.
package solve
