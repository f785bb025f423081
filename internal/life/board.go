package life

import (
	"errors"
	"fmt"
)

// ErrInvalidIndex reports an index or coordinate outside the grid. It always
// indicates a caller bug; the engine never clamps.
var ErrInvalidIndex = errors.New("cell index out of range")

// Board describes the fixed toroidal geometry of a grid and owns the
// bijection between linear cell indices and 2D coordinates. The mapping is
// idx = y*N + x; collaborators must obtain it from here rather than
// duplicating it.
type Board struct {
	n int
}

// NewBoard returns a board with size cells per axis.
func NewBoard(size int) (Board, error) {
	if size <= 0 {
		return Board{}, fmt.Errorf("board size must be positive, got %d", size)
	}
	return Board{n: size}, nil
}

// Size returns the number of cells per axis.
func (b Board) Size() int { return b.n }

// CellCount returns the total number of cells on the board.
func (b Board) CellCount() int { return b.n * b.n }

// CoordToIdx converts a coordinate to its linear index.
func (b Board) CoordToIdx(x, y int) (int, error) {
	if x < 0 || x >= b.n || y < 0 || y >= b.n {
		return 0, fmt.Errorf("%w: coordinate (%d,%d) on a %dx%d board", ErrInvalidIndex, x, y, b.n, b.n)
	}
	return y*b.n + x, nil
}

// IdxToCoord converts a linear index back to its coordinate.
func (b Board) IdxToCoord(idx int) (int, int, error) {
	if idx < 0 || idx >= b.n*b.n {
		return 0, 0, fmt.Errorf("%w: index %d on a board of %d cells", ErrInvalidIndex, idx, b.n*b.n)
	}
	return idx % b.n, idx / b.n, nil
}

// idx is the unchecked fast path for valid coordinates.
func (b Board) idx(x, y int) int { return y*b.n + x }
