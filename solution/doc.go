// Package solution turns solver-native results into validated, comparable
// plan records.
//
// Solvers disagree about what a solution looks like: continuous backends
// return binaries like 0.9999999, penalty methods leave microscopic negative
// inventory, and objectives drift in the last few digits. Normalize reconciles
// all of that into one Record shape: production and inventory series indexed
// by period, setup decisions snapped to booleans, and the cost recomputed
// from the formulation's own objective so records from different backends are
// comparable.
//
// Feasibility is judged here, independently of solver status claims, against
// the formulation's constraints under a scaled tolerance. Every breach is
// reported as a Violation with its period and magnitude; an infeasible plan
// is a valid Record with Feasible == false, never a Go error. Errors are
// reserved for malformed input — a result that names no value for a model
// variable (ErrMissingVariable).
//
// Normalize is pure and deterministic: the same raw result, model and
// tolerance always produce the same Record, and normalizing an already-clean
// record's values changes nothing.
package solution
