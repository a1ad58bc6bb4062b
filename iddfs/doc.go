// Package iddfs implements iterative deepening depth-first search over a
// colored maze grid with forced per-cell movement directions.
//
// What:
//
//   - Solve: the deepening driver — repeated depth-limited exploration
//     with limits 1 up to rows×cols, returning the first path found.
//   - Depth-limited explorer: an explicit stack of copy-on-extend search
//     nodes; each popped node walks its cell's forced direction one unit
//     at a time, recording a step only when the color changes, and prunes
//     any branch whose Manhattan distance to the target exceeds the
//     remaining depth budget.
//
// Why:
//
//   - Iterative deepening finds the shallowest successful depth limit
//     while keeping memory linear in the current path.
//   - Color-change branching matches the maze's semantics: only a
//     transition between cells of differing color marks a turn worth
//     recording.
//
// Key Types & Options:
//
//   - Option / Options: functional options for Solve
//   - WithDepthLimit(limit): override the rows×cols depth ceiling
//   - WithOnAttempt(fn): per-deepening-round hook with error abort
//
// Semantics worth knowing:
//
//   - The target check precedes the color-change check, so the final step
//     of a path may land on a same-color target cell.
//   - An out-of-bounds step silently ends one branch; it is pruning, not
//     an error.
//   - A cell whose exit is the origin marker "O" can never make forward
//     progress and is treated as an immediate dead branch.
//   - Paths never revisit a position, and each depth attempt restarts
//     from scratch.
//
// Errors:
//
//   - ErrNilGrid       grid pointer is nil
//   - ErrNoSolution    depth ceiling exhausted — a normal negative
//     outcome, never a fault
//   - ErrBadDepthLimit WithDepthLimit given a limit below 1 (panic)
//   - hook errors      propagated from OnAttempt
//
// Functions:
//
//   - Solve(g *grid.Grid, opts ...Option) (string, error)
//     find a path as space-separated step labels, e.g. "1S 1E 2E 1S"
//   - DefaultOptions(), WithDepthLimit(), WithOnAttempt()
package iddfs
