package solve

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/planopt/model"
)

// Solve runs m through the first usable backend of the preference list.
//
// Fallback policy (strict, no same-backend retries):
//   - unregistered name, unsupported kind, ErrBackendUnavailable → next entry;
//   - any other backend error → the attempt is spent: a StatusError result is
//     returned and no further backend is tried. A panicking backend is
//     recovered and treated as such an error;
//   - StatusInfeasible / StatusTimeout are valid outcomes, returned as-is.
//
// The returned error is non-nil only when the whole list is exhausted
// without a single callable backend (ErrNoBackend) or m is nil.
//
// SolveTime covers the backend call alone; model construction happened
// before this function and normalization happens after it.
func Solve(ctx context.Context, m *model.Model, opts Options) (RawResult, error) {
	if m == nil {
		return RawResult{}, ErrNilModel
	}
	if ctx == nil {
		ctx = context.Background()
	}

	prefer := opts.Prefer
	if len(prefer) == 0 {
		prefer = DefaultPreference(m.Kind)
	}

	for _, name := range prefer {
		b, ok := Lookup(name)
		if !ok || !b.Supports(m.Kind) {
			continue
		}

		raw, err := runOne(ctx, b, m, opts)
		if errors.Is(err, ErrBackendUnavailable) {
			continue
		}
		if err != nil {
			raw.Status = StatusError
			raw.Values = nil
			raw.Backend = name
			return raw, nil
		}
		raw.Backend = name
		return raw, nil
	}

	return RawResult{}, ErrNoBackend
}

// runOne times one backend call and enforces the wall-clock budget: if the
// deadline fires first, a StatusTimeout result is returned immediately and
// the backend goroutine is abandoned (backends also receive the deadline via
// ctx and their native limit, so a well-behaved one stops on its own).
func runOne(ctx context.Context, b Backend, m *model.Model, opts Options) (RawResult, error) {
	cctx := ctx
	var cancel context.CancelFunc
	if opts.TimeLimit > 0 {
		cctx, cancel = context.WithTimeout(ctx, opts.TimeLimit)
		defer cancel()
	}

	type outcome struct {
		raw RawResult
		err error
	}
	done := make(chan outcome, 1)
	start := time.Now()
	go func() {
		// A panicking backend must not take the process down; it becomes a
		// spent attempt like any other backend error.
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("solve: backend %s panic: %v", b.Name(), r)}
			}
		}()
		raw, err := b.Solve(cctx, m, opts)
		done <- outcome{raw, err}
	}()

	select {
	case o := <-done:
		o.raw.SolveTime = time.Since(start)
		if o.err == nil && o.raw.Status == "" {
			o.raw.Status = StatusError
		}
		return o.raw, o.err
	case <-cctx.Done():
		return RawResult{
			Status:    StatusTimeout,
			SolveTime: time.Since(start),
		}, nil
	}
}
