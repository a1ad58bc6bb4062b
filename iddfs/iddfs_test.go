package iddfs_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromaze/grid"
	"github.com/katalvlaran/chromaze/iddfs"
)

// referenceMaze builds the 3×4 maze whose documented solution is
// "1S 1E 2E 1S".
func referenceMaze(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(3, 4, []string{
		"B-S", "R-E", "B-SE", "B-SW",
		"R-E", "B-E", "R-S", "R-S",
		"R-N", "R-NE", "B-N", "O",
	})
	require.NoError(t, err)

	return g
}

// TestSolve_NilGrid verifies Solve rejects a nil grid with ErrNilGrid.
func TestSolve_NilGrid(t *testing.T) {
	path, err := iddfs.Solve(nil)
	assert.ErrorIs(t, err, iddfs.ErrNilGrid)
	assert.Empty(t, path)
}

// TestSolve_ReferenceMaze checks the documented end-to-end scenario.
func TestSolve_ReferenceMaze(t *testing.T) {
	g := referenceMaze(t)

	path, err := iddfs.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, "1S 1E 2E 1S", path)
}

// TestSolve_SingleCell covers the 1×1 boundary: the origin already is the
// target, so the path is empty and no error is reported.
func TestSolve_SingleCell(t *testing.T) {
	g, err := grid.New(1, 1, []string{"O"})
	require.NoError(t, err)

	path, err := iddfs.Solve(g)
	assert.NoError(t, err)
	assert.Empty(t, path)
}

// TestSolve_SameColorTarget verifies that the target check takes priority
// over the color-change check: the final step may land on a same-color
// target cell.
func TestSolve_SameColorTarget(t *testing.T) {
	g, err := grid.New(1, 2, []string{"B-E", "B-N"})
	require.NoError(t, err)

	path, err := iddfs.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, "1E", path)
}

// TestSolve_MonochromaticRun verifies that same-color runs are walked
// over without recording separate steps: a 1×3 single-color corridor
// solves with the single label "2E".
func TestSolve_MonochromaticRun(t *testing.T) {
	g, err := grid.New(1, 3, []string{"B-E", "B-E", "O"})
	require.NoError(t, err)

	var attempts []int
	path, err := iddfs.Solve(g, iddfs.WithOnAttempt(func(depth int) error {
		attempts = append(attempts, depth)

		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, "2E", path)
	// Depth 1 cannot extend two units; depth 2 succeeds.
	assert.Equal(t, []int{1, 2}, attempts)
}

// TestSolve_NoSolution verifies the distinct terminal outcome when no
// color-changing path exists within the rows*cols depth ceiling.
func TestSolve_NoSolution(t *testing.T) {
	// Every reachable exit leads straight out of bounds.
	g, err := grid.New(2, 2, []string{"B-W", "B-W", "B-W", "O"})
	require.NoError(t, err)

	path, err := iddfs.Solve(g)
	assert.ErrorIs(t, err, iddfs.ErrNoSolution)
	assert.Empty(t, path)
}

// TestSolve_NoExitCellMidPath verifies that a branch landing on a cell
// whose exit is the origin marker dies without progress (and without
// stalling the solver).
func TestSolve_NoExitCellMidPath(t *testing.T) {
	g, err := grid.New(2, 2, []string{"B-S", "R-W", "R-O", "O"})
	require.NoError(t, err)

	path, err := iddfs.Solve(g)
	assert.ErrorIs(t, err, iddfs.ErrNoSolution)
	assert.Empty(t, path)
}

// TestSolve_Deterministic verifies repeated solves yield the same path.
func TestSolve_Deterministic(t *testing.T) {
	g := referenceMaze(t)

	first, err := iddfs.Solve(g)
	require.NoError(t, err)
	second, err := iddfs.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestSolve_ShallowestDepth verifies the driver tries every depth in
// order and only succeeds at the genuine shallowest one: the reference
// maze needs a depth limit of 5 (the Manhattan distance from the first
// branch point already consumes the budget of shallower limits).
func TestSolve_ShallowestDepth(t *testing.T) {
	g := referenceMaze(t)

	var attempts []int
	_, err := iddfs.Solve(g, iddfs.WithOnAttempt(func(depth int) error {
		attempts = append(attempts, depth)

		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, attempts)

	// Capping the ceiling just below the shallowest successful depth must
	// yield ErrNoSolution, never a false positive from under-deep search.
	_, err = iddfs.Solve(g, iddfs.WithDepthLimit(4))
	assert.ErrorIs(t, err, iddfs.ErrNoSolution)

	// The exact shallowest depth still succeeds.
	path, err := iddfs.Solve(g, iddfs.WithDepthLimit(5))
	require.NoError(t, err)
	assert.Equal(t, "1S 1E 2E 1S", path)
}

// TestSolve_OnAttemptAbort verifies a hook error aborts the solve and is
// propagated wrapped.
func TestSolve_OnAttemptAbort(t *testing.T) {
	g := referenceMaze(t)
	boom := errors.New("boom")

	_, err := iddfs.Solve(g, iddfs.WithOnAttempt(func(depth int) error {
		if depth == 3 {
			return boom
		}

		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

// TestWithDepthLimit_Panics verifies invalid limits are rejected eagerly.
func TestWithDepthLimit_Panics(t *testing.T) {
	assert.Panics(t, func() { iddfs.WithDepthLimit(0) })
	assert.Panics(t, func() { iddfs.WithDepthLimit(-3) })
}

// TestSolve_PathReplay replays the returned path step by step and checks
// the structural properties of a valid solution: every intermediate unit
// step stays in bounds, every recorded step except possibly the last
// lands on a strict color change, no landing position repeats, and the
// final position is exactly the target.
func TestSolve_PathReplay(t *testing.T) {
	g := referenceMaze(t)

	path, err := iddfs.Solve(g)
	require.NoError(t, err)
	replayPath(t, g, path)
}

// replayPath walks a space-separated label sequence from the origin and
// asserts the validity properties above.
func replayPath(t *testing.T, g *grid.Grid, path string) {
	t.Helper()

	labels := strings.Fields(path)
	row, col := 0, 0
	seen := map[[2]int]bool{{0, 0}: true}
	for i, label := range labels {
		count, dir := parseLabel(t, label)
		fromColor := g.CellAt(row, col).Color

		dRow, dCol := dir.Delta()
		for step := 0; step < count; step++ {
			row, col = row+dRow, col+dCol
			require.Truef(t, g.InBounds(row, col), "label %q leaves the grid at (%d,%d)", label, row, col)
		}

		assert.Falsef(t, seen[[2]int{row, col}], "position (%d,%d) repeats within the path", row, col)
		seen[[2]int{row, col}] = true

		if i < len(labels)-1 {
			assert.NotEqualf(t, fromColor, g.CellAt(row, col).Color,
				"label %q does not cross a color-change boundary", label)
		}
	}

	targetRow, targetCol := g.Target()
	assert.Equal(t, [2]int{targetRow, targetCol}, [2]int{row, col}, "replay must land on the target")
}

// parseLabel splits "<distance><direction>" into its parts.
func parseLabel(t *testing.T, label string) (int, grid.Direction) {
	t.Helper()

	i := 0
	for i < len(label) && label[i] >= '0' && label[i] <= '9' {
		i++
	}
	require.Greaterf(t, i, 0, "label %q has no distance prefix", label)

	count, err := strconv.Atoi(label[:i])
	require.NoError(t, err)
	dir, err := grid.ParseDirection(label[i:])
	require.NoError(t, err)

	return count, dir
}
