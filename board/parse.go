package board

import (
	"fmt"
	"strings"
)

// Parse reads a puzzle from its textual form: nine rows of nine cells.
// Digits 1..9 are placed values; '.', '0' and '_' mark empty cells; spaces,
// tabs and the '|', '-', '+' ruling emitted by Board.String are ignored, so
// Parse round-trips String output. Lines contributing no cells (blank or
// ruling-only) are skipped. Any other character yields ErrBadRune; anything
// but exactly 9×9 cells yields ErrBadDimensions.
func Parse(s string) (Board, error) {
	var (
		b   Board
		row int // completed puzzle rows
	)
	for _, line := range strings.Split(s, "\n") {
		cells := 0
		for _, ch := range line {
			var v int
			switch {
			case ch >= '1' && ch <= '9':
				v = int(ch - '0')
			case ch == '.' || ch == '0' || ch == '_':
				v = Empty
			case ch == ' ' || ch == '\t' || ch == '\r' || ch == '|' || ch == '+' || ch == '-':
				continue // ruling and padding
			default:
				return Board{}, fmt.Errorf("%w: %q", ErrBadRune, ch)
			}
			if row >= Size || cells >= Size {
				return Board{}, fmt.Errorf("%w: extra cell after row %d", ErrBadDimensions, row)
			}
			b[row][cells] = v
			cells++
		}
		switch cells {
		case 0:
			// blank or ruling-only line, not a puzzle row
		case Size:
			row++
		default:
			return Board{}, fmt.Errorf("%w: row %d has %d cells", ErrBadDimensions, row, cells)
		}
	}
	if row != Size {
		return Board{}, fmt.Errorf("%w: got %d rows", ErrBadDimensions, row)
	}
	return b, nil
}

// FromRows builds a Board from a 9×9 matrix of ints, checking shape
// (ErrBadDimensions) and cell range (ErrCellRange).
func FromRows(rows [][]int) (Board, error) {
	var b Board
	if len(rows) != Size {
		return Board{}, fmt.Errorf("%w: got %d rows", ErrBadDimensions, len(rows))
	}
	for r, row := range rows {
		if len(row) != Size {
			return Board{}, fmt.Errorf("%w: row %d has %d cells", ErrBadDimensions, r, len(row))
		}
		copy(b[r][:], row)
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}
