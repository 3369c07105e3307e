// Package solver - simulated annealing over block permutations.
//
// SolveAnnealing trades the completeness of tree search for local moves on
// a full grid.
//
// Rationale (succinct):
//  1. Seeding: every block receives its missing digits, shuffled, in its
//     free cells. Blocks are permutations of 1..9 from the start, and swaps
//     inside a block keep them that way, so the block constraint never
//     enters the objective.
//  2. Objective: conflicts = equal-value pairs inside rows plus columns
//     (per line, a digit occurring k times contributes k·(k−1)/2). Zero
//     conflicts on a full grid is exactly the goal test.
//  3. Move: pick a uniform random block, swap two distinct free cells.
//     Free-cell lists are precomputed once; the fixed mask never changes.
//  4. Acceptance: Metropolis. Non-worsening moves always pass; worsening
//     moves pass with probability exp(−Δ/T).
//  5. Cooling: geometric, floored at MinTemperature, applied once per
//     attempted step.
//  6. Budget: MaxSteps loop slots. Drawing a block with fewer than two free
//     cells consumes a slot but moves nothing, cools nothing, and is not
//     counted in Metrics.Iterations.
//
// The search is incomplete and stochastic: a failure after MaxSteps proves
// nothing about solvability. Runs are reproducible via WithSeed.
package solver

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/sudoku/board"
)

// annealer holds all state of one simulated-annealing run.
// A dedicated engine struct (rather than closures) keeps dependencies
// explicit and the hot-path state predictable.
type annealer struct {
	// Configuration / policy
	opts Options
	rng  *rand.Rand
	temp float64

	// Grid data
	grid  board.Board
	fixed board.Mask

	// free lists the non-fixed cells per block, precomputed at seeding.
	free [board.Size][]board.Cell

	// conflicts is the current objective value, maintained incrementally.
	conflicts int
}

// newAnnealer seeds the blocks and computes the initial objective.
func newAnnealer(p board.Problem, o Options) *annealer {
	a := &annealer{
		opts:  o,
		rng:   rngFromSeed(o.Seed),
		temp:  o.InitialTemperature,
		grid:  p.Board,
		fixed: p.Fixed,
	}
	a.seedBlocks()
	a.conflicts = conflictCount(a.grid)
	return a
}

// seedBlocks fills every free cell: per block, the digits missing from its
// fixed cells are shuffled and written into the free cells in row-major
// order. With distinct givens per block, the block becomes a permutation of
// 1..9; duplicated givens (an unsolvable input) leave surplus digits unused.
func (a *annealer) seedBlocks() {
	var (
		seen    uint16
		missing = make([]int, 0, board.Size)
	)
	for blk := 0; blk < board.Size; blk++ {
		seen = 0
		free := make([]board.Cell, 0, board.Size)
		for _, c := range board.BlockCells(blk) {
			if a.fixed[c.Row][c.Col] {
				seen |= 1 << a.grid[c.Row][c.Col]
			} else {
				free = append(free, c)
			}
		}
		missing = missing[:0]
		for v := 1; v <= board.Size; v++ {
			if seen&(1<<v) == 0 {
				missing = append(missing, v)
			}
		}
		shuffleDigitsInPlace(missing, a.rng)
		for i, c := range free {
			a.grid[c.Row][c.Col] = missing[i]
		}
		a.free[blk] = free
	}
}

// run executes the annealing loop and reports the outcome.
func (a *annealer) run() (Result, error) {
	var m Metrics

	// Forced completions (and already-solved inputs) need no moves at all.
	if a.conflicts == 0 {
		return Result{Solution: a.grid, Metrics: m}, nil
	}

	// Without a block holding two free cells no move can ever change the
	// grid; the remaining conflicts are permanent.
	if !a.movable() {
		return Result{Metrics: m}, ErrNoSolution
	}

	var (
		cells []board.Cell
		blk   int
		i, j  int
		delta int
	)
	for step := 0; step < a.opts.MaxSteps; step++ {
		// 1. Draw a block. Fewer than two free cells is a structural skip:
		//    the slot is spent, nothing moves, nothing cools.
		blk = a.rng.Intn(board.Size)
		cells = a.free[blk]
		if len(cells) < 2 {
			continue
		}

		// 2. Draw two distinct free cells, uniform over ordered pairs.
		i = a.rng.Intn(len(cells))
		j = a.rng.Intn(len(cells) - 1)
		if j >= i {
			j++
		}

		// 3. Attempt the swap under Metropolis acceptance.
		m.Iterations++
		delta = a.applySwap(cells[i], cells[j])
		if delta > 0 && a.rng.Float64() >= math.Exp(-float64(delta)/a.temp) {
			a.applySwap(cells[i], cells[j]) // rejected: swap back
		} else {
			a.conflicts += delta
			if a.conflicts == 0 {
				return Result{Solution: a.grid, Metrics: m}, nil
			}
		}

		// 4. Geometric cooling, floored.
		a.temp *= a.opts.CoolingRate
		if a.temp < a.opts.MinTemperature {
			a.temp = a.opts.MinTemperature
		}
	}

	return Result{Metrics: m}, ErrNoSolution
}

// movable reports whether any block offers a swap at all.
func (a *annealer) movable() bool {
	for blk := 0; blk < board.Size; blk++ {
		if len(a.free[blk]) >= 2 {
			return true
		}
	}
	return false
}

// applySwap exchanges the values of c1 and c2 and returns the objective
// delta, recounting only the affected rows and columns. Applying it twice
// restores the grid and sums to zero.
func (a *annealer) applySwap(c1, c2 board.Cell) int {
	before := a.lineConflicts(c1, c2)
	a.grid[c1.Row][c1.Col], a.grid[c2.Row][c2.Col] = a.grid[c2.Row][c2.Col], a.grid[c1.Row][c1.Col]
	return a.lineConflicts(c1, c2) - before
}

// lineConflicts sums the conflicts of the rows and columns containing the
// two cells, counting each line once even when shared.
func (a *annealer) lineConflicts(c1, c2 board.Cell) int {
	n := rowConflicts(a.grid, c1.Row) + colConflicts(a.grid, c1.Col)
	if c2.Row != c1.Row {
		n += rowConflicts(a.grid, c2.Row)
	}
	if c2.Col != c1.Col {
		n += colConflicts(a.grid, c2.Col)
	}
	return n
}

// rowConflicts counts equal-value pairs in row r.
func rowConflicts(g board.Board, r int) int {
	var count [board.Size + 1]int
	for c := 0; c < board.Size; c++ {
		if v := g[r][c]; v != board.Empty {
			count[v]++
		}
	}
	return pairSum(count)
}

// colConflicts counts equal-value pairs in column c.
func colConflicts(g board.Board, c int) int {
	var count [board.Size + 1]int
	for r := 0; r < board.Size; r++ {
		if v := g[r][c]; v != board.Empty {
			count[v]++
		}
	}
	return pairSum(count)
}

// pairSum folds per-digit occurrence counts into conflict pairs.
func pairSum(count [board.Size + 1]int) int {
	total := 0
	for v := 1; v <= board.Size; v++ {
		total += count[v] * (count[v] - 1) / 2
	}
	return total
}

// conflictCount is the full objective: equal-value pairs over all rows and
// columns. Blocks stay permutations by construction and never contribute.
func conflictCount(g board.Board) int {
	total := 0
	for i := 0; i < board.Size; i++ {
		total += rowConflicts(g, i) + colConflicts(g, i)
	}
	return total
}

// SolveAnnealing solves b by simulated annealing over block permutations.
//
// The run is reproducible for a given Seed (0 selects the fixed default
// stream). Success returns the solved grid with the attempted-step count in
// Metrics.Iterations; exhausting MaxSteps returns ErrNoSolution with the
// same counter filled. Failure proves nothing: the search is incomplete.
//
// Complexity: O(MaxSteps) attempted moves, each costing two O(36) line
// recounts; seeding is O(81) plus one O(162) objective count.
func SolveAnnealing(b board.Board, opts ...Option) (Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	p, err := board.NewProblem(b)
	if err != nil {
		return Result{}, err
	}
	return newAnnealer(p, o).run()
}
