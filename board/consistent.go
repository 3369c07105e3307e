package board

// Consistent reports whether no row, column, or block contains a duplicate
// digit. Empty cells never conflict. The check walks the grid once, keeping
// a 9-bit seen-set per row, column, and block; candidate domains play no
// part in it. O(81), short-circuits on the first duplicate.
func (b Board) Consistent() bool {
	var rows, cols, blocks [Size]uint16 // seen-sets, bit v = digit v observed

	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := b[r][c]
			if v == Empty {
				continue
			}
			var (
				bit = uint16(1) << v
				blk = (r/BlockSize)*BlockSize + c/BlockSize
			)
			if rows[r]&bit != 0 || cols[c]&bit != 0 || blocks[blk]&bit != 0 {
				return false
			}
			rows[r] |= bit
			cols[c] |= bit
			blocks[blk] |= bit
		}
	}
	return true
}

// Solved reports whether b is a complete, consistent solution: every cell
// filled and every row, column, and block a permutation of 1..9.
func (b Board) Solved() bool {
	return b.Full() && b.Consistent()
}
