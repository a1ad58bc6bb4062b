package iddfs

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/chromaze/grid"
)

// position identifies one grid cell during traversal.
type position struct {
	row, col int
}

// searchNode is one entry on the explorer's explicit stack: a position,
// the set of positions already visited along this path, the ordered step
// labels recorded so far, and the path depth (count of recorded steps,
// starting at 1 for the origin node).
//
// Each searchNode privately owns its visited set and path slice — a
// sibling branch must never observe mutations from another branch, so
// extension always copies (copy-on-extend) and a node is never mutated
// after creation.
type searchNode struct {
	row, col int
	visited  map[position]struct{}
	path     []string
	depth    int
}

// extend returns the successor of n at (row, col): the new position added
// to a fresh copy of the visited set, the step label appended to a fresh
// copy of the path, depth incremented.
func (n searchNode) extend(row, col int, label string) searchNode {
	visited := make(map[position]struct{}, len(n.visited)+1)
	for p := range n.visited {
		visited[p] = struct{}{}
	}
	visited[position{row, col}] = struct{}{}

	path := make([]string, len(n.path), len(n.path)+1)
	copy(path, n.path)
	path = append(path, label)

	return searchNode{row: row, col: col, visited: visited, path: path, depth: n.depth + 1}
}

// stepLabel formats one recorded step: the distance traveled concatenated
// with the direction label, e.g. "2E".
func stepLabel(count int, dir grid.Direction) string {
	return strconv.Itoa(count) + dir.String()
}

// manhattan returns the Manhattan distance between (row, col) and
// (targetRow, targetCol): the sum of absolute row and column differences.
func manhattan(row, col, targetRow, targetCol int) int {
	return abs(targetRow-row) + abs(targetCol-col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// exploreDepthLimited performs one bounded depth-first traversal of g
// from the origin (0,0), honoring each cell's forced exit direction, and
// returns the first path reaching the target together with found=true.
// If the stack empties without success it returns ("", false) — "not
// found at this depth", which is distinct from "not found ever".
//
// Traversal rules, per popped node:
//  1. Read the forced direction and color of the node's cell once; both
//     stay fixed for the whole stepping loop.
//  2. Step one unit at a time in that direction, count = 1..maxDepth:
//     - Out of bounds: the branch dies silently (break, no error).
//     - Target reached: append "{count}{direction}" to the node's path
//     and return immediately, bypassing all remaining stack entries.
//     The target check runs before the color-change check, so the
//     final step may land on a same-color target cell.
//     - Color change onto an unvisited cell while depth < maxDepth:
//     branch via copy-on-extend, but admit the branch onto the stack
//     only if the Manhattan distance from the stepped-to position to
//     the target is ≤ maxDepth-count (otherwise the target is
//     unreachable within the remaining depth budget and the branch is
//     pruned without being pushed).
//     - Same-color cells are walked over without recording a step: only
//     color-change boundaries mark a turn worth recording.
//
// Complexity: worst case exponential in maxDepth (bounded by the pruning
// heuristic and the visited set); each node owns O(maxDepth) state, so
// memory is O(stack × maxDepth).
func exploreDepthLimited(g *grid.Grid, maxDepth int) (string, bool) {
	targetRow, targetCol := g.Target()

	// 1) Seed the stack with the origin node: visited holds only the
	//    origin, the path is empty, depth starts at 1.
	stack := []searchNode{{
		row:     0,
		col:     0,
		visited: map[position]struct{}{{0, 0}: {}},
		path:    nil,
		depth:   1,
	}}

	var current searchNode
	var cell grid.Cell
	var row, col, nextRow, nextCol int
	for len(stack) > 0 {
		// 2) Pop the most recent node and read its cell's direction
		//    and color.
		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cell = g.CellAt(current.row, current.col)

		// A cell with no exit makes zero-length steps: the stepping loop
		// below would retest the same position maxDepth times without
		// ever branching or reaching the target. Dead branch.
		if cell.Exit == grid.Origin {
			continue
		}
		dRow, dCol := cell.Exit.Delta()

		// 3) Step repeatedly in the forced direction.
		row, col = current.row, current.col
		for count := 1; count <= maxDepth; count++ {
			nextRow, nextCol = row+dRow, col+dCol

			// Out of bounds: stop extending in this direction.
			if !g.InBounds(nextRow, nextCol) {
				break
			}

			// Target reached: build the final path and terminate the
			// whole search successfully.
			if nextRow == targetRow && nextCol == targetCol {
				final := make([]string, len(current.path), len(current.path)+1)
				copy(final, current.path)
				final = append(final, stepLabel(count, cell.Exit))

				return strings.Join(final, " "), true
			}

			// Branch on a color change onto an unvisited cell, while the
			// popped node still has depth budget left.
			if _, seen := current.visited[position{nextRow, nextCol}]; !seen &&
				g.CellAt(nextRow, nextCol).Color != cell.Color &&
				current.depth < maxDepth {
				// Admit only branches that can still reach the target
				// within the remaining depth budget.
				if manhattan(nextRow, nextCol, targetRow, targetCol) <= maxDepth-count {
					stack = append(stack, current.extend(nextRow, nextCol, stepLabel(count, cell.Exit)))
				}
			}

			// Advance the stepping cursor whether or not a branch was
			// created for this cell.
			row, col = nextRow, nextCol
		}
	}

	// 4) Stack exhausted without reaching the target at this depth.
	return "", false
}
