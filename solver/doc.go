// Package solver implements four interchangeable strategies for solving
// 9×9 Sudoku puzzles, with uniform options, results, and effort metrics.
//
// What:
//
//   - SolveBacktracking: plain depth-first search over maintained candidate
//     domains, static row-major cell order, no pruning.
//   - SolveForwardChecking: the same order plus a dead-end prune, discarding
//     children that leave an unassigned cell without candidates.
//   - SolveMRVLCV: dynamic cell choice (minimum remaining values) and value
//     ordering (least constraining first), with the forward-checking prune.
//   - SolveAnnealing: stochastic local search over block permutations with
//     Metropolis acceptance and geometric cooling.
//   - Solve: a dispatcher routing to any of the above via Options.Algo.
//
// Why:
//
//   - The strategies share one state model (board.Problem) and one Result
//     shape, so their search effort is directly comparable via Metrics.
//   - All searches are deterministic except annealing, and even that is
//     reproducible: randomness flows from a caller-supplied seed with a
//     fixed default stream for seed 0.
//
// Complexity:
//
//   - Tree searches: worst case O(9^e) nodes for e empty cells; each node
//     costs an O(81) snapshot plus an O(27) elimination hop.
//   - Annealing: O(MaxSteps) attempted moves, each O(1) draws plus an O(36)
//     incremental objective update.
//
// Options:
//
//   - WithAlgorithm: strategy for Solve (entry points ignore it).
//   - WithSeed: RNG stream for annealing (0 = fixed default).
//   - WithMaxSteps, WithInitialTemperature, WithCoolingRate,
//     WithMinTemperature: annealing schedule knobs.
//
// Errors:
//
//   - ErrNoSolution: frontier exhausted or annealing budget elapsed.
//   - ErrUnknownAlgorithm: Options.Algo not routable by Solve.
//   - ErrBadOption: an option value outside its documented range.
//   - board.ErrCellRange and friends surface unchanged from construction.
package solver
