package board

import (
	"fmt"
	"strings"
)

// Board is a 9×9 Sudoku grid in row-major order: b[row][col] holds Empty or
// a digit 1..9. Board is a value type; assigning or passing one copies all
// 81 cells, which keeps search snapshots alias-free.
type Board [Size][Size]int

// Validate checks that every cell holds Empty or a digit 1..9 and returns
// ErrCellRange naming the first offending cell otherwise. O(81).
func (b Board) Validate() error {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if v := b[r][c]; v < Empty || v > Size {
				return fmt.Errorf("%w: %d at row %d, col %d", ErrCellRange, v, r, c)
			}
		}
	}
	return nil
}

// Full reports whether every cell holds a digit. It says nothing about
// consistency; see Solved for the combined goal test.
func (b Board) Full() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == Empty {
				return false
			}
		}
	}
	return true
}

// Filled counts the cells currently holding a digit.
func (b Board) Filled() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] != Empty {
				n++
			}
		}
	}
	return n
}

// String renders the grid with 3×3 block ruling and Empty cells as dots:
//
//	5 3 . | . 7 . | . . .
//	6 . . | 1 9 5 | . . .
//	. 9 8 | . . . | . 6 .
//	------+-------+------
//	...
//
// The output round-trips through Parse.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 && r%BlockSize == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < Size; c++ {
			if c > 0 && c%BlockSize == 0 {
				sb.WriteString(" | ")
			} else if c > 0 {
				sb.WriteByte(' ')
			}
			if b[r][c] == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(byte('0' + b[r][c]))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
