// Package compare runs every requested formulation of one planning scenario,
// in parallel, and collects the normalized outcomes into a single Report.
//
// Run builds one model per formulation kind, dispatches each to the solver
// adapter on a bounded worker pool, normalizes whatever comes back, and
// feeds an Analyzer. Models are independent by construction — the only
// shared state is the scenario they read — so the pool needs no locking
// beyond the Analyzer's own.
//
// Failure isolation: one formulation failing to build, solve or normalize
// never aborts the run. Its Outcome carries the error, the remaining
// formulations complete, and Run returns an error only when the inputs are
// unusable before any solving starts (no kinds, a duplicate kind, an
// invalid scenario).
package compare
