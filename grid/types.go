// Package grid defines core types and sentinel errors for the colored
// maze grid: Direction, Cell, and the immutable Grid container.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction and direction parsing.
var (
	// ErrEmptyGrid indicates the grid must have at least one row and one column.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrCellCount indicates the token count does not match rows*cols.
	ErrCellCount = errors.New("grid: cell token count must equal rows*cols")
	// ErrInvalidToken indicates a cell token is not of the form <color>-<direction>,
	// nor the bare origin marker "O".
	ErrInvalidToken = errors.New("grid: malformed cell token")
	// ErrInvalidDirection indicates a direction label outside the nine
	// recognized values (N, NE, NW, S, SE, SW, E, W, O).
	ErrInvalidDirection = errors.New("grid: invalid direction label")
)

// Direction is one of the nine movement labels a cell may mandate:
// the eight compass directions plus Origin ("O"), which mandates no
// movement at all.
type Direction uint8

const (
	// North decreases the row by 1.
	North Direction = iota
	// NorthEast decreases the row by 1 and increases the column by 1.
	NorthEast
	// NorthWest decreases the row by 1 and decreases the column by 1.
	NorthWest
	// South increases the row by 1.
	South
	// SouthEast increases the row by 1 and increases the column by 1.
	SouthEast
	// SouthWest increases the row by 1 and decreases the column by 1.
	SouthWest
	// East increases the column by 1.
	East
	// West decreases the column by 1.
	West
	// Origin mandates no movement; both deltas are 0.
	Origin

	numDirections
)

// Cell is a single immutable maze cell: its coordinates, its color tag,
// and the single exit direction it mandates for outward movement.
// Cells never change after the grid is constructed.
type Cell struct {
	Row, Col int       // Coordinates within the grid
	Color    byte      // Single-character categorical color tag
	Exit     Direction // Forced exit direction for this cell
}

// Grid is the full rows×cols collection of Cells, stored row-major.
// The origin is fixed at (0,0) and the target at (rows-1, cols-1).
// A Grid is immutable once constructed; all queries are read-only.
type Grid struct {
	rows, cols int
	cells      []Cell
}
