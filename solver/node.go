// Package solver - shared depth-first skeleton for the backtracking family.
//
// All three tree strategies run the same frontier loop and differ only in
// how a node expands. The frontier is an explicit LIFO stack of
// self-contained snapshots: no parent pointers, no state shared between
// branches. The stack itself encodes the ancestry; the only bookkeeping a
// node carries is its depth and, for the static strategies, a scan cursor.
package solver

import "github.com/katalvlaran/sudoku/board"

// node is one frontier entry: a full state snapshot plus the bookkeeping
// the expansion policies need.
type node struct {
	// p is the self-contained search state (board, domains, fixed mask).
	p board.Problem

	// scan is the row-major index from which the static strategies resume
	// their next-empty-cell search. The root starts at 0; a child continues
	// right after its parent's assignment. Cells before scan are always
	// filled. Dynamic ordering (MRV) leaves it at 0 and ignores it.
	scan int

	// depth counts assignments on the path from the root.
	depth int
}

// expandFunc generates the children of n in policy order. Implementations
// must not mutate n.
type expandFunc func(n node) []node

// runSearch drives the LIFO frontier loop shared by the tree strategies:
//
//  1. Degenerate full grids decide immediately, before any frontier work.
//  2. Pop the most recently pushed node, counting the expansion and depth.
//  3. Discard inconsistent snapshots.
//  4. Return the snapshot if it is the goal.
//  5. Push the children in the order expand produced them, so the last
//     generated child is explored first.
//
// The walk is exhaustive: an empty frontier proves no solution exists under
// the expansion policy. Worst case O(9^e) nodes for e empty cells.
func runSearch(p board.Problem, expand expandFunc) (Result, error) {
	var m Metrics

	// 1. Nothing to assign: the input decides by itself.
	if p.Board.Full() {
		if p.Board.Consistent() {
			return Result{Solution: p.Board, Metrics: m}, nil
		}
		return Result{Metrics: m}, ErrNoSolution
	}

	frontier := make([]node, 0, board.Size*board.Size)
	frontier = append(frontier, node{p: p})

	var n node
	for len(frontier) > 0 {
		// 2. Pop (LIFO).
		n, frontier = frontier[len(frontier)-1], frontier[:len(frontier)-1]
		m.NodesExpanded++
		if n.depth > m.MaxDepth {
			m.MaxDepth = n.depth
		}

		// 3. Inconsistent snapshots die here; this is the only filter the
		//    plain strategy has.
		if !n.p.Board.Consistent() {
			continue
		}

		// 4. Goal test: full and consistent.
		if n.p.Goal() {
			return Result{Solution: n.p.Board, Metrics: m}, nil
		}

		// 5. Expand and push in generation order.
		children := expand(n)
		m.ChildrenGenerated += len(children)
		frontier = append(frontier, children...)
	}

	return Result{Metrics: m}, ErrNoSolution
}

// nextEmpty returns the first empty cell at or after the row-major index
// from, or false when none remains.
func nextEmpty(b board.Board, from int) (board.Cell, bool) {
	for idx := from; idx < board.Size*board.Size; idx++ {
		c := board.CellAt(idx)
		if b[c.Row][c.Col] == board.Empty {
			return c, true
		}
	}
	return board.Cell{}, false
}
