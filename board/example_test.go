package board_test

import (
	"fmt"

	"github.com/katalvlaran/sudoku/board"
)

// ExampleParse reads a puzzle from compact text and renders it with block
// ruling. Dots mark empty cells.
func ExampleParse() {
	b, err := board.Parse("53..7....\n" +
		"6..195...\n" +
		".98....6.\n" +
		"8...6...3\n" +
		"4..8.3..1\n" +
		"7...2...6\n" +
		".6....28.\n" +
		"...419..5\n" +
		"....8..79")
	if err != nil {
		fmt.Println("parse:", err)
		return
	}
	fmt.Print(b)
	// Output:
	// 5 3 . | . 7 . | . . .
	// 6 . . | 1 9 5 | . . .
	// . 9 8 | . . . | . 6 .
	// ------+-------+------
	// 8 . . | . 6 . | . . 3
	// 4 . . | 8 . 3 | . . 1
	// 7 . . | . 2 . | . . 6
	// ------+-------+------
	// . 6 . | . . . | 2 8 .
	// . . . | 4 1 9 | . . 5
	// . . . | . 8 . | . 7 9
}

// ExampleProblem_Assign shows the one-hop candidate elimination: assigning
// digit 5 to the top-left cell removes it from row, column and block peers
// of the derived snapshot while the parent state stays untouched.
func ExampleProblem_Assign() {
	parent, _ := board.NewProblem(board.Board{})
	child := parent.Assign(board.Cell{Row: 0, Col: 0}, 5)

	fmt.Println("parent row peer:", parent.Domains[0][8].Count())
	fmt.Println("child row peer:", child.Domains[0][8].Count())
	fmt.Println("child has 5:", child.Domains[0][8].Has(5))
	// Output:
	// parent row peer: 9
	// child row peer: 8
	// child has 5: false
}
