// Package sudoku is your in-memory playground for solving 9×9 Sudoku as a
// constraint-satisfaction problem: four search strategies over one shared
// grid model, with the effort of every run measured.
//
// 🚀 What is sudoku?
//
//	A small, focused library that brings together:
//		• Grid model: Board, candidate Domains, fixed-cell Mask, Problem snapshots
//		• Consistency: row, column and block duplicate checking in one O(81) pass
//		• Tree search: plain backtracking, forward checking, MRV/LCV ordering
//		• Local search: simulated annealing over block permutations
//		• Metrics: nodes expanded, children generated, max depth, iterations
//
// ✨ Why choose sudoku?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed seeds reproduce every stochastic run bit for bit
//   - Pure value semantics – search snapshots never alias, copies stay O(81)
//   - Comparable – one Metrics shape measures the strategies side by side
//
// Under the hood, everything is organized under two subpackages and a command:
//
//	board/      – Board, Cell, Domain, Problem: parsing, printing, consistency
//	solver/     – the four strategies, options, metrics and the Solve dispatcher
//	cmd/sudoku/ – command-line front end: file or stdin in, solution + metrics out
//
// Quick ASCII example:
//
//	5 3 . | . 7 . | . . .
//	6 . . | 1 9 5 | . . .
//	. 9 8 | . . . | . 6 .
//
//	the top band of a classic 30-clue puzzle, dots marking the empty cells.
//
// Dive into the per-package docs for the exact semantics of every strategy,
// from the frontier discipline of the tree searches to the cooling schedule
// of the annealer.
//
//	go get github.com/katalvlaran/sudoku
package sudoku
