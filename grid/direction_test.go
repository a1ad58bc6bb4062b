package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/chromaze/grid"
)

// TestParseDirection_AllLabels covers the nine labels, upper- and lowercase.
func TestParseDirection_AllLabels(t *testing.T) {
	cases := []struct {
		token string
		want  grid.Direction
	}{
		{"N", grid.North},
		{"NE", grid.NorthEast},
		{"NW", grid.NorthWest},
		{"S", grid.South},
		{"SE", grid.SouthEast},
		{"SW", grid.SouthWest},
		{"E", grid.East},
		{"W", grid.West},
		{"O", grid.Origin},
		{"n", grid.North},
		{"se", grid.SouthEast},
		{"Sw", grid.SouthWest},
		{"o", grid.Origin},
	}
	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			got, err := grid.ParseDirection(tc.token)
			if err != nil {
				t.Fatalf("ParseDirection(%q) error: %v", tc.token, err)
			}
			if got != tc.want {
				t.Errorf("ParseDirection(%q) = %v; want %v", tc.token, got, tc.want)
			}
		})
	}
}

// TestParseDirection_Invalid verifies unrecognized labels fail with
// ErrInvalidDirection instead of being treated as "no movement".
func TestParseDirection_Invalid(t *testing.T) {
	for _, token := range []string{"", "X", "NNE", "SE ", "0", "ORIGIN"} {
		if _, err := grid.ParseDirection(token); !errors.Is(err, grid.ErrInvalidDirection) {
			t.Errorf("ParseDirection(%q) error = %v; want ErrInvalidDirection", token, err)
		}
	}
}

// TestDelta verifies every direction maps to exactly its delta pair.
func TestDelta(t *testing.T) {
	cases := []struct {
		dir    grid.Direction
		dr, dc int
	}{
		{grid.North, -1, 0},
		{grid.NorthEast, -1, 1},
		{grid.NorthWest, -1, -1},
		{grid.South, 1, 0},
		{grid.SouthEast, 1, 1},
		{grid.SouthWest, 1, -1},
		{grid.East, 0, 1},
		{grid.West, 0, -1},
		{grid.Origin, 0, 0},
	}
	for _, tc := range cases {
		dr, dc := tc.dir.Delta()
		if dr != tc.dr || dc != tc.dc {
			t.Errorf("%v.Delta() = (%d,%d); want (%d,%d)", tc.dir, dr, dc, tc.dr, tc.dc)
		}
	}
}

// TestDirectionString verifies round-tripping label → Direction → label.
func TestDirectionString(t *testing.T) {
	for _, label := range []string{"N", "NE", "NW", "S", "SE", "SW", "E", "W", "O"} {
		d, err := grid.ParseDirection(label)
		if err != nil {
			t.Fatalf("ParseDirection(%q) error: %v", label, err)
		}
		if d.String() != label {
			t.Errorf("%v.String() = %q; want %q", d, d.String(), label)
		}
	}
}
