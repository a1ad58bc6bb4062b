package grid

import (
	"fmt"
	"strings"
)

// deltas maps each Direction to its (rowDelta, colDelta) pair.
// Every direction maps to exactly one pair; Origin maps to (0,0).
var deltas = [numDirections][2]int{
	North:     {-1, 0},
	NorthEast: {-1, 1},
	NorthWest: {-1, -1},
	South:     {1, 0},
	SouthEast: {1, 1},
	SouthWest: {1, -1},
	East:      {0, 1},
	West:      {0, -1},
	Origin:    {0, 0},
}

// labels maps each Direction to its canonical uppercase token.
var labels = [numDirections]string{
	North:     "N",
	NorthEast: "NE",
	NorthWest: "NW",
	South:     "S",
	SouthEast: "SE",
	SouthWest: "SW",
	East:      "E",
	West:      "W",
	Origin:    "O",
}

// Delta returns the (rowDelta, colDelta) pair for d.
// Complexity: O(1).
func (d Direction) Delta() (dRow, dCol int) {
	return deltas[d][0], deltas[d][1]
}

// String returns the canonical uppercase label for d ("N", "NE", … "O").
func (d Direction) String() string {
	if d >= numDirections {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}

	return labels[d]
}

// ParseDirection maps a direction token onto a Direction constant.
// Comparison is case-insensitive ("se", "Se" and "SE" all parse to
// SouthEast). Any token outside the nine recognized labels returns
// ErrInvalidDirection.
// Complexity: O(1).
func ParseDirection(token string) (Direction, error) {
	switch strings.ToUpper(token) {
	case "N":
		return North, nil
	case "NE":
		return NorthEast, nil
	case "NW":
		return NorthWest, nil
	case "S":
		return South, nil
	case "SE":
		return SouthEast, nil
	case "SW":
		return SouthWest, nil
	case "E":
		return East, nil
	case "W":
		return West, nil
	case "O":
		return Origin, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, token)
	}
}
