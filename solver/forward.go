// Package solver - backtracking with forward checking.
//
// Same static ordering as plain backtracking plus one prune: a child whose
// snapshot leaves any unassigned cell without candidates is discarded at
// generation time instead of wasting a frontier slot. The check rides on
// the single elimination hop Assign already performs; no deeper propagation
// happens, so dead ends more than one hop away still reach the frontier.
package solver

import "github.com/katalvlaran/sudoku/board"

// SolveForwardChecking solves b by depth-first search with forward checking.
//
// Expansion policy: the next empty cell in static row-major order after the
// node's last assignment; one child per remaining candidate, ascending;
// children with a provable dead end (some unassigned cell left with an
// empty domain) are dropped before the push and never counted.
//
// Returns ErrNoSolution once the frontier is exhausted.
//
// Complexity: worst case O(9^e) nodes, O(81) per node plus the O(81)
// dead-end scan per generated child.
func SolveForwardChecking(b board.Board, opts ...Option) (Result, error) {
	if _, err := buildOptions(opts); err != nil {
		return Result{}, err
	}
	p, err := board.NewProblem(b)
	if err != nil {
		return Result{}, err
	}
	return runSearch(p, expandForward)
}

// expandForward mirrors expandPlain's ordering but discards children that
// are provably dead under the maintained domains.
func expandForward(n node) []node {
	c, ok := nextEmpty(n.p.Board, n.scan)
	if !ok {
		return nil
	}
	var (
		vals     = n.p.Domains[c.Row][c.Col].Values()
		children = make([]node, 0, len(vals))
		child    board.Problem
	)
	for _, v := range vals {
		child = n.p.Assign(c, v)
		if child.DeadEnd() {
			continue // pruned at generation time, never counted
		}
		children = append(children, node{
			p:     child,
			scan:  c.Index() + 1,
			depth: n.depth + 1,
		})
	}
	return children
}
