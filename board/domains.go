package board

import "math/bits"

// Domain is the candidate set of one cell, encoded as a 9-bit mask: bit v
// set (v in 1..9) means digit v is still assignable there. The zero value is
// the empty set; assigned cells always carry an empty Domain.
type Domain uint16

// FullDomain contains all nine digits.
const FullDomain Domain = 0x3FE // bits 1..9

// Has reports whether digit v is in the set.
func (d Domain) Has(v int) bool { return d&(1<<v) != 0 }

// Without returns the set with digit v removed.
func (d Domain) Without(v int) Domain { return d &^ (1 << v) }

// Count returns the number of candidates in the set.
func (d Domain) Count() int { return bits.OnesCount16(uint16(d)) }

// IsEmpty reports whether no candidate remains.
func (d Domain) IsEmpty() bool { return d == 0 }

// Values lists the candidates in ascending order.
func (d Domain) Values() []int {
	vals := make([]int, 0, d.Count())
	for v := 1; v <= Size; v++ {
		if d.Has(v) {
			vals = append(vals, v)
		}
	}
	return vals
}

// Domains holds one candidate Domain per grid cell.
type Domains [Size][Size]Domain

// NewDomains derives the initial candidate matrix for a board: every empty
// cell starts with the full digit set, every filled cell with the empty set.
// Given digits do not narrow their neighbors here; all narrowing happens
// through Eliminate as the search assigns cells.
func NewDomains(b Board) Domains {
	var d Domains
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == Empty {
				d[r][c] = FullDomain
			}
		}
	}
	return d
}

// Eliminate returns a copy of d where digit v is removed from the candidate
// set of every cell sharing c's row, column, or block, and c's own set is
// emptied. The receiver is unchanged, so repeated calls with the same
// arguments yield the same result. Single hop only: peers that lose their
// last candidate trigger no further elimination. O(27).
func (d Domains) Eliminate(c Cell, v int) Domains {
	// 1. Strip v from the three peer groups. The &^= mask is idempotent, so
	//    the row/column/block overlap needs no special casing.
	bit := Domain(1) << v
	for i := 0; i < Size; i++ {
		d[c.Row][i] &^= bit
		d[i][c.Col] &^= bit
	}
	for _, p := range BlockCells(c.Block()) {
		d[p.Row][p.Col] &^= bit
	}
	// 2. The assigned cell keeps no candidates at all.
	d[c.Row][c.Col] = 0
	return d
}
