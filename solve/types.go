package solve

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/katalvlaran/planopt/model"
)

var (
	// ErrBackendUnavailable marks a backend that cannot run in this process
	// (missing shared library, unsupported platform). The adapter treats it
	// as a fallback trigger, never as a solve failure.
	ErrBackendUnavailable = errors.New("solve: backend unavailable")

	// ErrNoBackend is returned when every entry of the preference list is
	// either unregistered, unavailable or does not support the model's kind.
	ErrNoBackend = errors.New("solve: no usable backend for model")

	// ErrNilModel guards the adapter entry point.
	ErrNilModel = errors.New("solve: model must be non-nil")
)

// Status is the normalized outcome of one solve attempt.
type Status string

const (
	StatusSolved     Status = "solved"
	StatusInfeasible Status = "infeasible"
	StatusTimeout    Status = "timeout"
	StatusError      Status = "error"
)

// RawResult is the solver-native outcome of one attempt. It is transient:
// the normalizer consumes it and nothing persists it.
//
// Values maps model variable names to solver-native floating-point values;
// it is nil when the backend produced no assignment (infeasible, error).
type RawResult struct {
	Status    Status
	Values    map[string]float64
	Objective float64
	SolveTime time.Duration
	Backend   string
}

// Options configures one adapter call.
//
//   - TimeLimit: wall-clock budget for the backend call; 0 means no limit.
//   - Tolerance: solver-native optimality/feasibility tolerance; 0 lets each
//     backend use its own default.
//   - Prefer: ordered backend preference; empty selects
//     DefaultPreference(kind).
type Options struct {
	TimeLimit time.Duration
	Tolerance float64
	Prefer    []string
}

// DefaultOptions returns a five-minute budget and backend defaults for
// tolerances.
func DefaultOptions() Options {
	return Options{TimeLimit: 5 * time.Minute}
}

// Backend is one wrapped solver. Implementations must be safe for concurrent
// use: one Backend value serves all parallel solves.
//
// Solve returns an error only for infrastructure failures
// (ErrBackendUnavailable to trigger fallback, anything else to surface
// StatusError); problem outcomes — optimal, infeasible, timeout — are
// encoded in the RawResult status.
type Backend interface {
	Name() string
	Supports(kind model.Kind) bool
	Solve(ctx context.Context, m *model.Model, opts Options) (RawResult, error)
}

// registry of named backends. Register replaces silently so tests can stub
// a backend name.
var (
	regMu    sync.RWMutex
	registry = map[string]Backend{}
)

// Register adds b under its name, replacing any previous registration.
func Register(b Backend) {
	regMu.Lock()
	defer regMu.Unlock()
	registry[b.Name()] = b
}

// Unregister removes a backend by name. Intended for tests.
func Unregister(name string) {
	regMu.Lock()
	defer regMu.Unlock()
	delete(registry, name)
}

// Lookup resolves a backend name.
func Lookup(name string) (Backend, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	b, ok := registry[name]
	return b, ok
}

// Backends lists the registered names, sorted.
func Backends() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// DefaultPreference is the ordered backend list per formulation kind. HiGHS
// leads wherever it applies; the pure-Go backends follow so every
// continuous formulation stays solvable without cgo.
func DefaultPreference(kind model.Kind) []string {
	switch kind {
	case model.MILP:
		return []string{"highs"}
	case model.LP:
		return []string{"highs", "simplex"}
	case model.QP:
		return []string{"highs", "descent"}
	case model.NLP:
		return []string{"descent"}
	default:
		return nil
	}
}
