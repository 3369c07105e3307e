package board

// Problem is the complete search state for one Sudoku instance: the grid,
// the per-cell candidate domains, and the fixed-cell mask. Problem is built
// from value arrays, so plain assignment yields an independent snapshot and
// search branches never share mutable state.
type Problem struct {
	// Board holds the current assignment.
	Board Board
	// Domains holds the remaining candidates per cell. Invariant: assigned
	// cells carry empty domains; unassigned cells a subset of FullDomain.
	Domains Domains
	// Fixed marks the given cells of the original puzzle.
	Fixed Mask
}

// NewProblem builds the initial search state from a puzzle grid:
//
//  1. Every cell value is validated (ErrCellRange otherwise).
//  2. Cells holding a digit are flagged fixed and get empty domains.
//  3. Empty cells get the full candidate set 1..9.
//
// Pre-filled digits do not restrict the initial domains of their neighbors;
// narrowing is performed solely by Assign during search. O(81).
func NewProblem(b Board) (Problem, error) {
	if err := b.Validate(); err != nil {
		return Problem{}, err
	}
	p := Problem{Board: b, Domains: NewDomains(b)}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			p.Fixed[r][c] = b[r][c] != Empty
		}
	}
	return p, nil
}

// Assign returns the snapshot derived from p by writing digit v into cell c
// and propagating one elimination hop: v leaves the domains of c's row,
// column, and block peers, and c's own domain empties. The receiver is not
// modified. O(81) for the value copy plus O(27) for the elimination.
func (p Problem) Assign(c Cell, v int) Problem {
	p.Board[c.Row][c.Col] = v
	p.Domains = p.Domains.Eliminate(c, v)
	return p
}

// DeadEnd reports whether some unassigned cell has run out of candidates,
// which proves no completion of p exists under the maintained domains. O(81).
func (p Problem) DeadEnd() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if p.Board[r][c] == Empty && p.Domains[r][c].IsEmpty() {
				return true
			}
		}
	}
	return false
}

// Goal reports whether p's board is a complete, consistent solution.
func (p Problem) Goal() bool {
	return p.Board.Solved()
}
