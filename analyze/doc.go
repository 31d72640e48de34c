// Package analyze aggregates normalized plan records across formulations and
// scenarios and answers the comparison questions: which formulation found
// the cheapest feasible plan, how often each one solved at all, and how fast.
//
// An Analyzer is an accumulator. Records enter through Add (which rejects a
// duplicate formulation/scenario pair) or AddOrReplace; attempts that never
// produced a record — no usable backend, for instance — are counted through
// NoteFailure so the per-formulation attempt totals stay honest.
//
// Rankings put feasible records strictly before infeasible ones regardless
// of cost: a cheap plan that violates its constraints never outranks an
// expensive one that holds. Ties break by cost, then solve time, then
// formulation name, so a ranking is deterministic for a given record set.
//
// An Analyzer is safe for concurrent use.
package analyze
