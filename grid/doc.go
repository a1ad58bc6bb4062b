// Package grid models a colored maze as an immutable rows×cols table of
// cells, each carrying a color tag and a forced exit direction.
//
// What:
//
//   - Direction: the nine movement labels (N, NE, NW, S, SE, SW, E, W, O)
//     with (rowDelta, colDelta) lookup and case-insensitive parsing.
//   - Cell: immutable (row, col, color, exit) record.
//   - Grid: row-major cell store with fixed origin (0,0) and fixed
//     target (rows-1, cols-1); bounds checking and direct lookup.
//   - New: fail-fast construction from raw "<color>-<direction>" tokens.
//
// Why:
//
//   - The maze routes by color-change boundaries: search code only needs
//     read-only color and exit-direction queries, so the model is a pure
//     lookup table, not a mutable graph.
//   - Fail-fast token parsing keeps malformed input out of the search
//     engine entirely.
//
// Complexity:
//
//   - New:      O(rows×cols) time and memory.
//   - InBounds: O(1).
//   - CellAt:   O(1) (caller bounds-checks first).
//
// Errors:
//
//   - ErrEmptyGrid:        rows < 1 or cols < 1.
//   - ErrCellCount:        token count differs from rows*cols.
//   - ErrInvalidToken:     token is not "<color>-<direction>" nor "O".
//   - ErrInvalidDirection: direction label outside the nine recognized values.
package grid
