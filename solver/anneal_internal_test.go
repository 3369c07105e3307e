package solver

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sudoku/board"
)

// classicTestPuzzle mirrors the external fixture for in-package tests
// (30 givens, a single solution).
const classicTestPuzzle = "53..7....\n" +
	"6..195...\n" +
	".98....6.\n" +
	"8...6...3\n" +
	"4..8.3..1\n" +
	"7...2...6\n" +
	".6....28.\n" +
	"...419..5\n" +
	"....8..79"

func classicProblem(t *testing.T) board.Problem {
	t.Helper()
	b, err := board.Parse(classicTestPuzzle)
	require.NoError(t, err)
	p, err := board.NewProblem(b)
	require.NoError(t, err)
	return p
}

func TestSeedBlocks_Permutations(t *testing.T) {
	p := classicProblem(t)
	a := newAnnealer(p, DefaultOptions())

	// Every block holds each digit exactly once after seeding.
	for blk := 0; blk < board.Size; blk++ {
		var seen board.Domain
		for _, c := range board.BlockCells(blk) {
			v := a.grid[c.Row][c.Col]
			require.GreaterOrEqual(t, v, 1, "block %d", blk)
			require.LessOrEqual(t, v, board.Size, "block %d", blk)
			seen |= 1 << v
		}
		assert.Equal(t, board.FullDomain, seen, "block %d", blk)
	}

	// Givens survive seeding untouched.
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if p.Fixed[r][c] {
				assert.Equal(t, p.Board[r][c], a.grid[r][c])
			}
		}
	}

	// Free lists cover exactly the non-fixed cells of their block.
	total := 0
	for blk := 0; blk < board.Size; blk++ {
		for _, c := range a.free[blk] {
			assert.False(t, a.fixed[c.Row][c.Col])
			assert.Equal(t, blk, c.Block())
		}
		total += len(a.free[blk])
	}
	assert.Equal(t, 81-30, total)
}

func TestSeedBlocks_FillsForcedDigit(t *testing.T) {
	b := solvedTestGrid()
	b[0][0] = board.Empty
	p, err := board.NewProblem(b)
	require.NoError(t, err)

	a := newAnnealer(p, DefaultOptions())
	assert.Equal(t, solvedTestGrid(), a.grid, "the lone missing digit is forced")
	assert.Zero(t, a.conflicts)
}

func TestNewAnnealer_InitialState(t *testing.T) {
	a := newAnnealer(emptyProblem(t), DefaultOptions())
	assert.Equal(t, conflictCount(a.grid), a.conflicts)
	assert.Equal(t, DefaultInitialTemperature, a.temp)
}

func TestApplySwap_DeltaMatchesRecount(t *testing.T) {
	// Drive random swaps and keep the objective incrementally; the running
	// value must match a full recount after every move.
	a := newAnnealer(emptyProblem(t), DefaultOptions())
	rng := rngFromSeed(99)
	conflicts := a.conflicts
	for step := 0; step < 300; step++ {
		cells := a.free[rng.Intn(board.Size)]
		i := rng.Intn(len(cells))
		j := rng.Intn(len(cells) - 1)
		if j >= i {
			j++
		}
		conflicts += a.applySwap(cells[i], cells[j])
		require.Equal(t, conflictCount(a.grid), conflicts, "step %d", step)
	}
}

func TestApplySwap_Involution(t *testing.T) {
	a := newAnnealer(emptyProblem(t), DefaultOptions())
	before := a.grid
	c1, c2 := a.free[4][0], a.free[4][5]

	d1 := a.applySwap(c1, c2)
	d2 := a.applySwap(c1, c2)
	assert.Equal(t, before, a.grid, "double swap restores the grid")
	assert.Zero(t, d1+d2)
}

func TestRowColConflicts(t *testing.T) {
	var g board.Board
	g[0] = [board.Size]int{5, 5, 5, 0, 0, 0, 0, 0, 0}
	g[1] = [board.Size]int{1, 2, 3, 4, 5, 6, 7, 8, 9}

	assert.Equal(t, 3, rowConflicts(g, 0), "three equal values make three pairs")
	assert.Equal(t, 0, rowConflicts(g, 1), "a permutation is conflict free")
	assert.Equal(t, 0, rowConflicts(g, 2), "empty cells never conflict")

	g[2][0] = 5
	assert.Equal(t, 1, colConflicts(g, 0), "rows 0 and 2 pair up in column 0")
}

func TestPairSum(t *testing.T) {
	var count [board.Size + 1]int
	assert.Zero(t, pairSum(count))

	count[3] = 2
	count[7] = 4
	assert.Equal(t, 1+6, pairSum(count), "k values yield k·(k−1)/2 pairs")
}

func TestConflictCount(t *testing.T) {
	assert.Zero(t, conflictCount(solvedTestGrid()))
	assert.Zero(t, conflictCount(board.Board{}))

	var g board.Board
	g[0][0], g[0][8] = 4, 4
	g[3][2], g[6][2] = 9, 9
	assert.Equal(t, 2, conflictCount(g))
}

func TestMovable(t *testing.T) {
	p, err := board.NewProblem(solvedTestGrid())
	require.NoError(t, err)
	assert.False(t, newAnnealer(p, DefaultOptions()).movable(), "no free cell at all")

	b := solvedTestGrid()
	b[4][3] = board.Empty
	p, err = board.NewProblem(b)
	require.NoError(t, err)
	assert.False(t, newAnnealer(p, DefaultOptions()).movable(), "one free cell cannot swap")

	b[4][4] = board.Empty
	p, err = board.NewProblem(b)
	require.NoError(t, err)
	assert.True(t, newAnnealer(p, DefaultOptions()).movable())
}

func TestRun_CoolingFlooredOnLongRuns(t *testing.T) {
	// A duplicate among the givens keeps the objective above zero forever,
	// while one movable block lets the loop attempt moves until the budget
	// is spent.
	b := solvedTestGrid()
	b[0][0] = 5
	b[8][7], b[8][8] = board.Empty, board.Empty

	p, err := board.NewProblem(b)
	require.NoError(t, err)

	o := DefaultOptions()
	o.Seed = 3
	o.MaxSteps = 2000
	o.CoolingRate = 0.5
	o.MinTemperature = 0.25

	a := newAnnealer(p, o)
	res, err := a.run()
	require.ErrorIs(t, err, ErrNoSolution)
	assert.Positive(t, res.Metrics.Iterations)
	assert.Less(t, res.Metrics.Iterations, o.MaxSteps, "draws of immovable blocks spend budget without counting")
	assert.Equal(t, o.MinTemperature, a.temp, "geometric cooling bottoms out at the floor")
}

func drawInts(rng *rand.Rand, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(1 << 20)
	}
	return out
}

func TestRngFromSeed(t *testing.T) {
	assert.Equal(t, drawInts(rngFromSeed(defaultRNGSeed), 16), drawInts(rngFromSeed(0), 16),
		"seed 0 aliases the fixed default stream")
	assert.NotEqual(t, drawInts(rngFromSeed(7), 16), drawInts(rngFromSeed(0), 16))
}

func TestShuffleDigitsInPlace(t *testing.T) {
	a := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	shuffleDigitsInPlace(a, rngFromSeed(42))
	shuffleDigitsInPlace(b, rngFromSeed(42))

	assert.Equal(t, a, b, "same seed, same permutation")
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, a)
}
