// Package iddfs solves colored grid mazes with iterative deepening
// depth-first search (IDDFS): a depth-limited explorer on an explicit
// stack, driven by an incrementally increasing depth limit, with a
// Manhattan-distance heuristic pruning branches that cannot reach the
// target within the remaining depth budget.
//
// Key features:
//   - Solve(g, opts...): deepen from limit 1 up to rows×cols (or a
//     WithDepthLimit override) until a path is found
//   - Forced movement: each cell mandates a single exit direction;
//     steps are recorded only at color-change boundaries
//   - Hook: WithOnAttempt observes every deepening round, with error abort
//
// Complexity:
//
//   - Each attempt re-traverses from scratch (no memoization across depth
//     increases); worst case exponential in the depth limit, bounded in
//     practice by the Manhattan pruning and the per-path visited set.
//   - Memory: O(stack × depth) — every stack node privately owns its
//     visited set and path labels.
//
// Errors:
//
//   - ErrNilGrid     if g is nil.
//   - ErrNoSolution  if every depth up to the ceiling is exhausted.
//   - any error returned by the OnAttempt hook.
package iddfs

import (
	"fmt"

	"github.com/katalvlaran/chromaze/grid"
)

// Solve finds a path from the origin (0,0) to the target
// (rows-1, cols-1) of g by iterative deepening: it runs the depth-limited
// explorer with limits 1, 2, 3, … up to rows×cols (or the WithDepthLimit
// override) and returns the first path found as a space-separated
// sequence of step labels, e.g. "1S 1E 2E 1S".
//
// Outcomes:
//   - (path, nil) on success at the shallowest successful depth limit.
//   - ("", nil) when the grid is 1×1: the origin already is the target,
//     so the path is empty — zero steps needed.
//   - ("", ErrNoSolution) when every depth up to the ceiling fails. This
//     is a normal terminal outcome, not a fault.
//
// Solve is deterministic: the same grid always yields the same path.
func Solve(g *grid.Grid, opts ...Option) (string, error) {
	// 1) Validate input grid.
	if g == nil {
		return "", ErrNilGrid
	}

	// 2) Apply options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 3) Trivial boundary: origin and target coincide (1×1 grid).
	targetRow, targetCol := g.Target()
	if targetRow == 0 && targetCol == 0 {
		return "", nil
	}

	// 4) Resolve the depth ceiling: a simple path cannot revisit more
	//    cells than exist, so rows*cols is a safe upper bound.
	limit := cfg.DepthLimit
	if limit == 0 {
		limit = g.Rows() * g.Cols()
	}

	// 5) Deepening loop: Searching(d) → Found on explorer success,
	//    Searching(d) → Searching(d+1) on failure, Searching(limit) →
	//    Exhausted on the final failure.
	for depth := 1; depth <= limit; depth++ {
		if cfg.OnAttempt != nil {
			if err := cfg.OnAttempt(depth); err != nil {
				return "", fmt.Errorf("iddfs: OnAttempt hook at depth %d: %w", depth, err)
			}
		}
		if path, found := exploreDepthLimited(g, depth); found {
			return path, nil
		}
	}

	return "", ErrNoSolution
}
