package life

// NeighborIndex is the precomputed Moore adjacency for every cell under
// toroidal wraparound. It is built once from the board geometry and never
// mutated afterward, so generation stepping can share it by reference.
type NeighborIndex struct {
	table [][8]int
}

// NewNeighborIndex builds the adjacency table for the given board.
//
// The 8 entries per cell follow a row-major scan of the 3x3 neighborhood
// excluding the center. Each axis wraps independently: a coordinate of -1
// maps to N-1 and a coordinate of N maps to 0, so the last row/column is
// adjacent to the first.
func NewNeighborIndex(b Board) *NeighborIndex {
	n := b.Size()
	table := make([][8]int, b.CellCount())
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			i := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := x + dx
					ny := y + dy
					if nx < 0 {
						nx = n - 1
					} else if nx >= n {
						nx = 0
					}
					if ny < 0 {
						ny = n - 1
					} else if ny >= n {
						ny = 0
					}
					table[b.idx(x, y)][i] = b.idx(nx, ny)
					i++
				}
			}
		}
	}
	return &NeighborIndex{table: table}
}

// Neighbors returns the 8 neighbor indices of idx. The index is valid by
// construction for any idx produced by the board's bijection.
func (ni *NeighborIndex) Neighbors(idx int) [8]int { return ni.table[idx] }
