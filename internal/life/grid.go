package life

// stagedCell encodes the optional next-generation value of a cell. The none
// state distinguishes "not yet computed" from "computed dead", so a partially
// applied generation can never be mistaken for a complete one.
type stagedCell uint8

const (
	stagedNone stagedCell = iota
	stagedDead
	stagedAlive
)

// Grid owns the two cell-state buffers: the current generation and the
// staged next generation. It is the sole writer of both; the stepper and the
// command gate mutate cells only through its methods.
type Grid struct {
	board   Board
	current []bool
	staged  []stagedCell
}

// NewGrid allocates both buffers for the given board, all cells dead.
func NewGrid(b Board) *Grid {
	total := b.CellCount()
	return &Grid{
		board:   b,
		current: make([]bool, total),
		staged:  make([]stagedCell, total),
	}
}

// Read returns the cell's state in the present generation.
func (g *Grid) Read(idx int) (bool, error) {
	if idx < 0 || idx >= len(g.current) {
		_, _, err := g.board.IdxToCoord(idx)
		return false, err
	}
	return g.current[idx], nil
}

// Stage records the cell's next-generation value without touching the
// current buffer. idx must be valid.
func (g *Grid) Stage(idx int, alive bool) {
	if alive {
		g.staged[idx] = stagedAlive
	} else {
		g.staged[idx] = stagedDead
	}
}

// SetCurrent writes the current buffer directly, bypassing staging. Only the
// command gate uses this, and only during setup.
func (g *Grid) SetCurrent(idx int, alive bool) {
	g.current[idx] = alive
}

// Commit applies every staged value to the current buffer and clears the
// staged slot. Cells with no staged value keep their prior generation; the
// rule relies on this to express "no change" without a redundant write.
func (g *Grid) Commit() {
	for i, s := range g.staged {
		if s == stagedNone {
			continue
		}
		g.current[i] = s == stagedAlive
		g.staged[i] = stagedNone
	}
}

// alive is the unchecked read used by the stepper's inner loop, where every
// index comes from the neighbor table and is valid by construction.
func (g *Grid) alive(idx int) bool { return g.current[idx] }

// snapshot fills dst with 0/1 display values from the current buffer.
func (g *Grid) snapshot(dst []uint8) {
	for i, alive := range g.current {
		if alive {
			dst[i] = 1
		} else {
			dst[i] = 0
		}
	}
}
