// Command chromaze solves a colored maze file and writes the solution
// path to an output file.
//
// Usage:
//
//	chromaze <input-file> <output-file>
//
// The input file holds "<rows> <cols>" followed by rows lines of cols
// "<Color>-<Direction>" tokens. The output is a single line: either the
// space-separated step labels (e.g. "1S 1E 2E 1S") or the no-solution
// message. An unsolvable maze is a normal outcome; malformed input or an
// unreadable file exits with status 1.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/chromaze/iddfs"
	"github.com/katalvlaran/chromaze/mazefile"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <input-file> <output-file>\n", os.Args[0])
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2]); err != nil {
		fmt.Fprintln(os.Stderr, "chromaze:", err)
		os.Exit(1)
	}
}

// run reads the maze, solves it, and writes the result line.
func run(inputPath, outputPath string) error {
	g, err := mazefile.ReadGridFile(inputPath)
	if err != nil {
		return err
	}

	solution, err := iddfs.Solve(g)
	switch {
	case errors.Is(err, iddfs.ErrNoSolution):
		// Exhausting the depth ceiling is a legitimate result line.
		solution = mazefile.NoSolutionMessage
	case err != nil:
		return err
	}

	return mazefile.WriteSolutionFile(outputPath, solution)
}
