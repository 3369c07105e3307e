// Package board models a classic 9×9 Sudoku puzzle as value-typed state
// for constraint-based search.
//
// What:
//
//   - Board is the 9×9 digit grid (Empty = unassigned, 1..9 = placed).
//   - Domain and Domains track per-cell candidate sets as 9-bit masks.
//   - Mask flags the given (fixed) cells of the original puzzle.
//   - Problem bundles Board, Domains and Mask into one search state; being
//     built from arrays, plain assignment yields an independent snapshot.
//   - Parse, FromRows and Board.String move puzzles across the text boundary.
//
// Why:
//
//   - Tree search needs cheap, alias-free state snapshots: value semantics
//     make every branch own its grid and candidate matrix outright.
//   - Eliminate is the single propagation primitive the informed searches
//     build on: one hop, no cascade, referentially transparent.
//
// Complexity:
//
//   - Consistent / Full / Validate: O(81) single pass.
//   - Eliminate: O(27) peer updates.
//   - Assign: O(81) snapshot copy plus O(27) elimination.
//
// Errors:
//
//   - ErrBadDimensions: input does not describe exactly 9 rows of 9 cells.
//   - ErrBadRune: puzzle text contains an unrecognized character.
//   - ErrCellRange: a cell value lies outside Empty..9.
package board
