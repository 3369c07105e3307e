package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sudoku/board"
	"github.com/katalvlaran/sudoku/solver"
)

// solvedBoard returns a complete, consistent reference grid (each row a
// cyclic shift of 1..9, columns and blocks all permutations).
func solvedBoard() board.Board {
	return board.Board{
		{1, 2, 3, 4, 5, 6, 7, 8, 9},
		{4, 5, 6, 7, 8, 9, 1, 2, 3},
		{7, 8, 9, 1, 2, 3, 4, 5, 6},
		{2, 3, 4, 5, 6, 7, 8, 9, 1},
		{5, 6, 7, 8, 9, 1, 2, 3, 4},
		{8, 9, 1, 2, 3, 4, 5, 6, 7},
		{3, 4, 5, 6, 7, 8, 9, 1, 2},
		{6, 7, 8, 9, 1, 2, 3, 4, 5},
		{9, 1, 2, 3, 4, 5, 6, 7, 8},
	}
}

// oneEmptyBoard returns solvedBoard with the top-left cell blanked.
// The only consistent completion writes 1 back.
func oneEmptyBoard() board.Board {
	b := solvedBoard()
	b[0][0] = board.Empty
	return b
}

// contradictoryBoard returns a sparse grid with two 5s in row 0 (different
// blocks): no consistent completion exists, yet every block keeps at least
// two free cells, so annealing always has moves to try.
func contradictoryBoard() board.Board {
	var b board.Board
	b[0][0] = 5
	b[0][5] = 5
	return b
}

// lightPuzzle returns solvedBoard with the last row blanked. Each hole is
// forced by its column, so the unique completion is solvedBoard itself.
func lightPuzzle() board.Board {
	b := solvedBoard()
	for c := 0; c < board.Size; c++ {
		b[8][c] = board.Empty
	}
	return b
}

// classicPuzzle is a well-known 30-clue grid with a unique solution.
const classicPuzzle = "53..7....\n" +
	"6..195...\n" +
	".98....6.\n" +
	"8...6...3\n" +
	"4..8.3..1\n" +
	"7...2...6\n" +
	".6....28.\n" +
	"...419..5\n" +
	"....8..79"

// classicSolution is the unique completion of classicPuzzle.
const classicSolution = "534678912\n" +
	"672195348\n" +
	"198342567\n" +
	"859761423\n" +
	"426853791\n" +
	"713924856\n" +
	"961537284\n" +
	"287419635\n" +
	"345286179"

// mustParse parses puzzle text or fails the test.
func mustParse(t *testing.T, s string) board.Board {
	t.Helper()
	b, err := board.Parse(s)
	require.NoError(t, err)
	return b
}

// treeSolvers lists the exhaustive strategies under their entry points.
var treeSolvers = []struct {
	name  string
	solve func(board.Board, ...solver.Option) (solver.Result, error)
}{
	{"backtracking", solver.SolveBacktracking},
	{"forward-checking", solver.SolveForwardChecking},
	{"mrv-lcv", solver.SolveMRVLCV},
}

// assertGivensKept verifies that every filled cell of the puzzle survives
// unchanged in the solution.
func assertGivensKept(t *testing.T, puzzle, solution board.Board) {
	t.Helper()
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if puzzle[r][c] != board.Empty {
				require.Equal(t, puzzle[r][c], solution[r][c],
					"given at row %d, col %d overwritten", r, c)
			}
		}
	}
}
