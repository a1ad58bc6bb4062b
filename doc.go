// Package chromaze solves color-routed grid mazes with iterative
// deepening depth-first search — from the immutable grid model to the
// depth-limited explorer and the deepening driver.
//
// 🚀 What is chromaze?
//
//	A small, focused library that brings together:
//		• Grid model: rows×cols cells, each with a color and a forced exit direction
//		• Directions: the 9-label compass (N, NE, NW, S, SE, SW, E, W, O) with delta lookup
//		• Explorer: depth-limited DFS on an explicit stack with Manhattan-distance pruning
//		• Driver: iterative deepening from depth 1 up to rows×cols
//		• File format: the "<rows> <cols>" + "<Color>-<Direction>" textual maze format
//
// ✨ Why choose chromaze?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – same grid, same path, every time
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – attach an OnAttempt hook to observe each deepening round
//
// Under the hood, everything is organized under three subpackages:
//
//	grid/     — immutable Cell, Direction and Grid types + token parsing
//	iddfs/    — the depth-limited explorer and the iterative deepening driver
//	mazefile/ — reader/writer for the textual maze and solution format
//
// Quick ASCII example:
//
//	    B-S  R-E  B-SE B-SW
//	    R-E  B-E  R-S  R-S
//	    R-N  R-NE B-N  O
//
//	solves to the path "1S 1E 2E 1S": each label is a distance followed by
//	the forced direction of the cell the step departs from, and steps are
//	recorded only where the cell color changes.
//
// Dive into README.md for the full format description and worked examples.
//
//	go get github.com/katalvlaran/chromaze
package chromaze
