// Package iddfs defines types, sentinel errors, and configuration
// options for the iterative deepening depth-first maze solver.
package iddfs

import (
	"errors"
)

// Sentinel errors returned by the solver.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Solve.
	ErrNilGrid = errors.New("iddfs: grid is nil")

	// ErrNoSolution indicates the driver exhausted every depth limit up to
	// its ceiling without finding a path. This is a legitimate negative
	// search outcome, distinct from malformed input.
	ErrNoSolution = errors.New("iddfs: no solution found within the depth limit")

	// ErrBadDepthLimit indicates WithDepthLimit was given a limit below 1,
	// which would forbid even a single-step path.
	ErrBadDepthLimit = errors.New("iddfs: depth limit must be at least 1")
)

// Option configures optional behavior of Solve.
// Use with Solve(g, opts...).
type Option func(*Options)

// Options holds configurable parameters for the iterative deepening driver.
// It controls the depth ceiling and the per-attempt diagnostic hook.
type Options struct {
	// DepthLimit caps the deepening loop. Zero (the default) means the
	// natural ceiling rows*cols — a simple path cannot revisit more cells
	// than exist.
	DepthLimit int

	// OnAttempt, if non-nil, is invoked with the depth limit of each
	// depth-limited attempt, just before the attempt runs.
	// Returning an error aborts the solve with that error.
	OnAttempt func(depth int) error
}

// DefaultOptions returns an Options struct with:
//   - DepthLimit 0 (use the rows*cols ceiling)
//   - No per-attempt hook
func DefaultOptions() Options {
	return Options{
		DepthLimit: 0,
		OnAttempt:  nil,
	}
}

// WithDepthLimit returns an Option that caps the deepening loop at limit.
// Must pass a value ≥ 1; smaller values cause ErrBadDepthLimit.
func WithDepthLimit(limit int) Option {
	return func(o *Options) {
		if limit < 1 {
			// Panic to signal invalid configuration early.
			panic(ErrBadDepthLimit.Error())
		}
		o.DepthLimit = limit
	}
}

// WithOnAttempt returns an Option that installs fn as a per-attempt hook.
// The hook is called before each depth-limited exploration with the depth
// limit about to be tried (1, 2, 3, …).
func WithOnAttempt(fn func(depth int) error) Option {
	return func(o *Options) {
		o.OnAttempt = fn
	}
}
