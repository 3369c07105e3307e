// Command sudoku solves a 9×9 puzzle read from a file or from stdin.
//
// Usage:
//
//	sudoku [-algo name] [-seed n] [-steps n] [puzzle-file]
//
// The puzzle format is the one board.Parse accepts: nine rows of nine cells,
// digits for givens and '.', '0' or '_' for empty cells; spaces and block
// ruling are ignored. The solved grid is printed with the search metrics of
// the run. Exit status is 1 when no solution is found and 2 on usage errors.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/sudoku/board"
	"github.com/katalvlaran/sudoku/solver"
)

// maxPuzzleBytes bounds the input read; any 9×9 rendering fits well below it.
const maxPuzzleBytes = 4096

var (
	flagAlgo = flag.String("algo", solver.MRVLCV.String(),
		"strategy: backtracking, forward-checking, mrv-lcv or annealing")
	flagSeed = flag.Int64("seed", 0,
		"annealing RNG seed, 0 keeps the fixed default stream")
	flagSteps = flag.Int("steps", solver.DefaultMaxSteps,
		"annealing step budget")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: sudoku [flags] [puzzle-file]")
		fmt.Fprintln(flag.CommandLine.Output(), "reads the puzzle from stdin when no file is given")
		flag.PrintDefaults()
	}
	flag.Parse()

	algo, err := solver.ParseAlgorithm(*flagAlgo)
	if err != nil {
		fail(err, 2)
	}

	puzzle, err := loadPuzzle(flag.Arg(0))
	if err != nil {
		fail(err, 2)
	}
	fmt.Printf("puzzle, %d givens:\n%s\n", puzzle.Filled(), puzzle)

	res, err := solver.Solve(puzzle,
		solver.WithAlgorithm(algo),
		solver.WithSeed(*flagSeed),
		solver.WithMaxSteps(*flagSteps))
	if err != nil {
		if errors.Is(err, solver.ErrNoSolution) {
			fail(err, 1)
		}
		fail(err, 2)
	}

	fmt.Printf("solution, %s:\n%s\n", algo, res.Solution)
	fmt.Printf("nodes expanded: %d\n", res.Metrics.NodesExpanded)
	fmt.Printf("children generated: %d\n", res.Metrics.ChildrenGenerated)
	fmt.Printf("max depth: %d\n", res.Metrics.MaxDepth)
	fmt.Printf("iterations: %d\n", res.Metrics.Iterations)
}

// loadPuzzle parses the puzzle from the named file, or from stdin when path
// is empty.
func loadPuzzle(path string) (board.Board, error) {
	input := io.Reader(os.Stdin)
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return board.Board{}, err
		}
		defer f.Close()
		input = f
	}
	raw, err := io.ReadAll(io.LimitReader(input, maxPuzzleBytes))
	if err != nil {
		return board.Board{}, err
	}
	return board.Parse(string(raw))
}

func fail(err error, code int) {
	fmt.Fprintln(os.Stderr, "sudoku:", err)
	os.Exit(code)
}
