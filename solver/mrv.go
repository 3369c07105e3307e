// Package solver - backtracking with MRV cell choice and LCV value order.
//
// The informed member of the family. Cell choice is dynamic: minimum
// remaining values, recomputed at every expansion (fail-first). Value order
// is least constraining first: candidates are ranked by how many candidate
// entries assigning them would erase from peer domains. The forward-checking
// prune applies to every generated child.
package solver

import (
	"sort"

	"github.com/katalvlaran/sudoku/board"
)

// SolveMRVLCV solves b by depth-first search with MRV and LCV ordering.
//
// Expansion policy: the unassigned cell with the smallest non-empty domain
// (first such cell in row-major order on ties); one child per candidate,
// ordered ascending by peer-domain eliminations with ascending digit as the
// tiebreak; dead children are pruned as in forward checking. Children enter
// the frontier in that order, so the most constraining candidate is explored
// first.
//
// Returns ErrNoSolution once the frontier is exhausted.
//
// Complexity: worst case O(9^e) nodes; each expansion pays an O(81) MRV
// scan plus an O(9·27) LCV ranking on top of the per-child costs.
func SolveMRVLCV(b board.Board, opts ...Option) (Result, error) {
	if _, err := buildOptions(opts); err != nil {
		return Result{}, err
	}
	p, err := board.NewProblem(b)
	if err != nil {
		return Result{}, err
	}
	return runSearch(p, expandMRV)
}

// expandMRV generates children for the MRV cell in LCV order, pruning dead
// ends at generation time.
func expandMRV(n node) []node {
	c, ok := mrvCell(n.p)
	if !ok {
		return nil
	}
	var (
		vals     = lcvOrder(n.p, c)
		children = make([]node, 0, len(vals))
		child    board.Problem
	)
	for _, v := range vals {
		child = n.p.Assign(c, v)
		if child.DeadEnd() {
			continue
		}
		children = append(children, node{
			p:     child,
			depth: n.depth + 1,
		})
	}
	return children
}

// mrvCell picks the unassigned cell with the fewest remaining candidates,
// scanning row-major and keeping the first minimum. Cells with empty
// domains are not eligible (they mean a dead branch, not a choice point).
// The boolean is false when no eligible cell remains.
func mrvCell(p board.Problem) (board.Cell, bool) {
	var (
		best  board.Cell
		count = board.Size + 1
		found bool
	)
	for idx := 0; idx < board.Size*board.Size; idx++ {
		c := board.CellAt(idx)
		if p.Board[c.Row][c.Col] != board.Empty {
			continue
		}
		n := p.Domains[c.Row][c.Col].Count()
		if n == 0 {
			continue
		}
		if n < count {
			best, count, found = c, n, true
			if n == 1 {
				break // a singleton cannot be beaten
			}
		}
	}
	return best, found
}

// lcvOrder ranks the candidates of cell c ascending by the number of
// candidate entries assigning them would erase from the 20 peer domains,
// breaking ties by ascending digit.
func lcvOrder(p board.Problem, c board.Cell) []int {
	vals := p.Domains[c.Row][c.Col].Values()
	// cost is indexed by digit, so reordering vals cannot desynchronize it.
	var cost [board.Size + 1]int
	for _, v := range vals {
		cost[v] = eliminations(p, c, v)
	}
	sort.Slice(vals, func(i, j int) bool {
		if cost[vals[i]] != cost[vals[j]] {
			return cost[vals[i]] < cost[vals[j]]
		}
		return vals[i] < vals[j]
	})
	return vals
}

// eliminations counts the peer domains of c that still contain v: exactly
// the entries Assign(c, v) would erase. Row and column contribute 8 peers
// each; the block adds only the 4 cells sharing neither row nor column, so
// no peer is counted twice.
func eliminations(p board.Problem, c board.Cell, v int) int {
	count := 0
	for i := 0; i < board.Size; i++ {
		if i != c.Col && p.Domains[c.Row][i].Has(v) {
			count++
		}
		if i != c.Row && p.Domains[i][c.Col].Has(v) {
			count++
		}
	}
	for _, q := range board.BlockCells(c.Block()) {
		if q.Row != c.Row && q.Col != c.Col && p.Domains[q.Row][q.Col].Has(v) {
			count++
		}
	}
	return count
}
