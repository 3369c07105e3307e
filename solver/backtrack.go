// Package solver - plain depth-first backtracking.
//
// The baseline strategy of the family: static row-major cell order, every
// remaining candidate tried, and no pruning at all. Wrong assignments are
// caught only by the pop-time consistency check in runSearch, which makes
// this the reference point the informed strategies are measured against.
package solver

import "github.com/katalvlaran/sudoku/board"

// SolveBacktracking solves b by unpruned depth-first search.
//
// Expansion policy: the next empty cell in static row-major order after the
// node's last assignment; one child per remaining candidate, ascending.
// Children enter the frontier in that order, so the highest candidate is
// explored first.
//
// Returns ErrNoSolution once the frontier is exhausted. Metrics reports
// popped nodes, pushed children, and the deepest popped node.
//
// Complexity: worst case O(9^e) nodes for e empty cells, O(81) per node.
func SolveBacktracking(b board.Board, opts ...Option) (Result, error) {
	if _, err := buildOptions(opts); err != nil {
		return Result{}, err
	}
	p, err := board.NewProblem(b)
	if err != nil {
		return Result{}, err
	}
	return runSearch(p, expandPlain)
}

// expandPlain generates one child per remaining candidate of the next empty
// cell in static order, ascending. No pruning: a child whose domains already
// betray a dead end still reaches the frontier and dies on pop or expands to
// nothing.
func expandPlain(n node) []node {
	c, ok := nextEmpty(n.p.Board, n.scan)
	if !ok {
		return nil
	}
	var (
		vals     = n.p.Domains[c.Row][c.Col].Values()
		children = make([]node, 0, len(vals))
	)
	for _, v := range vals {
		children = append(children, node{
			p:     n.p.Assign(c, v),
			scan:  c.Index() + 1,
			depth: n.depth + 1,
		})
	}
	return children
}
