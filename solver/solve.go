// Package solver - unified dispatcher for the solving strategies.
//
// Solve is the single entry point routing a puzzle to the strategy selected
// in Options.Algo. The per-algorithm entry points remain available for
// direct use; Solve adds routing, never behavior.
package solver

import "github.com/katalvlaran/sudoku/board"

// Solve validates the options and routes b to the selected strategy.
//
// Errors: ErrBadOption, ErrUnknownAlgorithm, board construction errors, and
// ErrNoSolution from the strategy itself.
//
// Complexity: that of the selected strategy.
func Solve(b board.Board, opts ...Option) (Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	switch o.Algo {
	case Backtracking:
		return SolveBacktracking(b, opts...)
	case ForwardChecking:
		return SolveForwardChecking(b, opts...)
	case MRVLCV:
		return SolveMRVLCV(b, opts...)
	case Annealing:
		return SolveAnnealing(b, opts...)
	default:
		return Result{}, ErrUnknownAlgorithm
	}
}
