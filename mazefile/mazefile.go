// Package mazefile reads and writes the textual maze format: a header
// line "<rows> <cols>" followed by rows lines of cols whitespace-separated
// "<Color>-<Direction>" tokens, and a single-line solution output.
package mazefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/chromaze/grid"
)

// NoSolutionMessage is the terminal line written when the solver
// exhausts its depth ceiling. It is a legitimate outcome of a
// well-formed maze, not an input error.
const NoSolutionMessage = "No solution found within the depth limit."

// Sentinel errors for maze file parsing.
var (
	// ErrBadHeader indicates the first line is not "<rows> <cols>".
	ErrBadHeader = errors.New("mazefile: header must be \"<rows> <cols>\"")
	// ErrBadRow indicates a maze line has the wrong number of cell tokens.
	ErrBadRow = errors.New("mazefile: wrong number of cell tokens in row")
	// ErrMissingRow indicates the input ended before all rows were read.
	ErrMissingRow = errors.New("mazefile: input ended before all rows were read")
)

// ReadGrid parses a maze from r: the dimension header followed by the
// row-major cell tokens. Malformed input fails fast before any search
// can begin; grid-level token errors propagate wrapped.
// Complexity: O(rows×cols).
func ReadGrid(r io.Reader) (*grid.Grid, error) {
	sc := bufio.NewScanner(r)

	// 1) Header: "<rows> <cols>".
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("mazefile: reading header: %w", err)
		}

		return nil, ErrBadHeader
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: got %q", ErrBadHeader, sc.Text())
	}
	rows, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: rows %q", ErrBadHeader, fields[0])
	}
	cols, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: cols %q", ErrBadHeader, fields[1])
	}
	if rows < 1 || cols < 1 {
		return nil, grid.ErrEmptyGrid
	}

	// 2) One line of cols tokens per row, row-major.
	tokens := make([]string, 0, rows*cols)
	for i := 0; i < rows; i++ {
		if !sc.Scan() {
			if err = sc.Err(); err != nil {
				return nil, fmt.Errorf("mazefile: reading row %d: %w", i, err)
			}

			return nil, fmt.Errorf("%w: row %d", ErrMissingRow, i)
		}
		line := strings.Fields(sc.Text())
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d tokens, want %d", ErrBadRow, i, len(line), cols)
		}
		tokens = append(tokens, line...)
	}

	// 3) Hand the raw tokens to the grid model for fail-fast parsing.
	return grid.New(rows, cols, tokens)
}

// ReadGridFile opens path and parses it with ReadGrid.
func ReadGridFile(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mazefile: %w", err)
	}
	defer f.Close()

	return ReadGrid(f)
}

// WriteSolution writes the solution line to w: either the space-separated
// step labels or NoSolutionMessage.
func WriteSolution(w io.Writer, solution string) error {
	if _, err := fmt.Fprintln(w, solution); err != nil {
		return fmt.Errorf("mazefile: writing solution: %w", err)
	}

	return nil
}

// WriteSolutionFile creates (or truncates) path and writes the solution
// line to it.
func WriteSolutionFile(path, solution string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mazefile: %w", err)
	}
	if err = WriteSolution(f, solution); err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}
