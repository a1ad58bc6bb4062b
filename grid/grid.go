// Package grid models a colored maze as an immutable rows×cols table of
// cells. Each cell carries a color tag and a single forced exit
// direction parsed from a raw token of the form "<color>-<direction>"
// (or the bare origin marker "O"). The package supplies bounds checking
// and direct cell lookup; it never mutates after construction.
package grid

import (
	"fmt"
	"strings"
)

// New constructs a Grid from its dimensions and a row-major slice of raw
// cell tokens. Each token is either "<color>-<direction>" — a single
// color character, a dash, and one of the nine direction labels
// (case-insensitive) — or the bare marker "O" for a cell with no exit.
//
// Validation is fail-fast, before any search can begin:
//   - ErrEmptyGrid if rows < 1 or cols < 1.
//   - ErrCellCount if len(tokens) != rows*cols.
//   - ErrInvalidToken or ErrInvalidDirection (wrapped with the cell
//     position) for a malformed token; tokens are never silently
//     defaulted.
//
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int, tokens []string) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	if len(tokens) != rows*cols {
		return nil, fmt.Errorf("%w: got %d tokens for %d×%d", ErrCellCount, len(tokens), rows, cols)
	}

	cells := make([]Cell, rows*cols)
	var r, c int
	for i, tok := range tokens {
		r, c = i/cols, i%cols
		color, exit, err := parseToken(tok)
		if err != nil {
			return nil, fmt.Errorf("grid: cell (%d,%d) token %q: %w", r, c, tok, err)
		}
		cells[i] = Cell{Row: r, Col: c, Color: color, Exit: exit}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// parseToken splits a raw cell token into its color tag and exit direction.
// A bare "O" (case-insensitive) marks the no-exit cell; its color is the
// literal 'O', matching the on-disk token.
func parseToken(token string) (byte, Direction, error) {
	dash := strings.IndexByte(token, '-')
	if dash < 0 {
		if strings.EqualFold(token, "O") {
			return 'O', Origin, nil
		}

		return 0, 0, ErrInvalidToken
	}
	if dash != 1 || len(token) == 2 {
		// Color must be exactly one character, and a trailing dash
		// with no direction label is malformed.
		return 0, 0, ErrInvalidToken
	}
	exit, err := ParseDirection(token[2:])
	if err != nil {
		return 0, 0, err
	}

	return token[0], exit, nil
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int { return g.cols }

// Target returns the coordinates of the fixed target cell (rows-1, cols-1).
func (g *Grid) Target() (row, col int) {
	return g.rows - 1, g.cols - 1
}

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// CellAt returns the cell at (row, col) by direct row-major lookup.
// The caller must have already bounds-checked the position via InBounds.
// Complexity: O(1).
func (g *Grid) CellAt(row, col int) Cell {
	return g.cells[row*g.cols+col]
}
