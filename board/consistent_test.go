package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/sudoku/board"
)

func TestConsistent_EmptyBoard(t *testing.T) {
	var b board.Board
	assert.True(t, b.Consistent())
	assert.False(t, b.Solved(), "empty board is consistent but not solved")
}

func TestConsistent_SolvedBoard(t *testing.T) {
	b := solvedBoard()
	assert.True(t, b.Consistent())
	assert.True(t, b.Solved())
}

func TestConsistent_RowDuplicate(t *testing.T) {
	var b board.Board
	b[0][0] = 5
	b[0][5] = 5 // same row, different block
	assert.False(t, b.Consistent())
}

func TestConsistent_ColumnDuplicate(t *testing.T) {
	var b board.Board
	b[0][2] = 7
	b[6][2] = 7 // same column, different block
	assert.False(t, b.Consistent())
}

func TestConsistent_BlockDuplicate(t *testing.T) {
	var b board.Board
	b[0][0] = 3
	b[1][1] = 3 // same block, different row and column
	assert.False(t, b.Consistent())
}

func TestConsistent_PartialNoConflict(t *testing.T) {
	b := mustParse(t, classicPuzzle)
	assert.True(t, b.Consistent())
	assert.False(t, b.Solved(), "puzzle with holes is not a goal")
}

func TestSolved_FullButInconsistent(t *testing.T) {
	b := solvedBoard()
	b[0][0] = b[0][1] // duplicate inside row 0
	assert.True(t, b.Full())
	assert.False(t, b.Consistent())
	assert.False(t, b.Solved())
}
