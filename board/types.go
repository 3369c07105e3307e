// Package board defines the core types and sentinel errors for the board
// subpackage of github.com/katalvlaran/sudoku.
package board

import (
	"errors"
)

// Grid geometry of classic Sudoku. The engine is fixed to 9×9 grids with
// 3×3 blocks; the array types below enforce the shape at compile time.
const (
	// Size is the edge length of the grid: 9 rows, 9 columns, digits 1..9.
	Size = 9
	// BlockSize is the edge length of one block.
	BlockSize = 3
	// Empty marks an unassigned cell on a Board.
	Empty = 0
)

// Sentinel errors for board construction and parsing.
var (
	// ErrBadDimensions indicates input that does not describe exactly 9 rows of 9 cells.
	ErrBadDimensions = errors.New("board: puzzle must have 9 rows of 9 cells")
	// ErrBadRune indicates an unrecognized character in puzzle text.
	ErrBadRune = errors.New("board: unrecognized puzzle character")
	// ErrCellRange indicates a cell value outside Empty..9.
	ErrCellRange = errors.New("board: cell value out of range")
)

// Cell addresses one grid position by zero-based row and column.
type Cell struct {
	Row, Col int
}

// Block returns the row-major index (0..8) of the 3×3 block containing c.
func (c Cell) Block() int {
	return (c.Row/BlockSize)*BlockSize + c.Col/BlockSize
}

// Index returns the row-major ordinal of c (0..80).
func (c Cell) Index() int {
	return c.Row*Size + c.Col
}

// CellAt converts a row-major ordinal (0..80) back into a Cell.
// It is the inverse of Cell.Index.
func CellAt(index int) Cell {
	return Cell{Row: index / Size, Col: index % Size}
}

// BlockCells lists the nine cells of block b (0..8, row-major) in row-major
// order. The block index must be valid.
func BlockCells(b int) []Cell {
	var (
		cells   = make([]Cell, 0, Size)
		baseRow = (b / BlockSize) * BlockSize
		baseCol = (b % BlockSize) * BlockSize
	)
	for dr := 0; dr < BlockSize; dr++ {
		for dc := 0; dc < BlockSize; dc++ {
			cells = append(cells, Cell{Row: baseRow + dr, Col: baseCol + dc})
		}
	}
	return cells
}

// Mask flags the given (fixed) cells of a puzzle: true means the cell held a
// digit in the original input and must never be reassigned. A Mask is built
// once by NewProblem and read-only afterwards.
type Mask [Size][Size]bool
