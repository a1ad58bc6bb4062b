// Package mazefile owns the textual interchange format around the solver:
// maze input files and single-line solution output.
//
// What:
//
//   - ReadGrid / ReadGridFile: parse "<rows> <cols>" plus rows lines of
//     cols whitespace-separated "<Color>-<Direction>" tokens into a
//     *grid.Grid, failing fast on malformed input.
//   - WriteSolution / WriteSolutionFile: emit the solution line — the
//     space-separated step labels, or NoSolutionMessage when the solver
//     exhausted its depth ceiling.
//
// Why:
//
//   - The search engine never touches files; this package is the
//     collaborator that supplies it a parsed grid and consumes its path
//     string or no-solution signal.
//
// Errors:
//
//   - ErrBadHeader:   first line is not "<rows> <cols>".
//   - ErrBadRow:      a maze line has the wrong number of tokens.
//   - ErrMissingRow:  input ended before all rows were read.
//   - grid sentinel errors (ErrEmptyGrid, ErrInvalidToken,
//     ErrInvalidDirection, …) propagate wrapped from grid.New.
package mazefile
