package life

import (
	"fmt"
	"runtime"

	"conway/internal/core"
)

// Config controls engine construction.
type Config struct {
	// Size is the number of cells per axis.
	Size int
	// Seed initializes the randomize source so boards are reproducible.
	Seed int64
	// Workers bounds the compute-phase fan-out. Zero means one worker per
	// CPU.
	Workers int
}

// DefaultConfig returns the standard configuration: a 128x128 board.
func DefaultConfig() Config {
	return Config{Size: 128, Seed: 42}
}

// Engine is the grid-automaton core. It owns the cell buffers and the
// neighbor table, applies the Game of Life rule one generation per Step,
// and gates external edits on the current mode. It never schedules its own
// execution: the external driver calls Step once per tick and must
// serialize command handling and stepping within a tick.
type Engine struct {
	board     Board
	grid      *Grid
	neighbors *NeighborIndex
	stepper   *stepper
	modes     modeController
	rng       *core.RNG

	generation int
	display    []uint8
}

// New builds the engine: grid buffers, the one-time neighbor table, and the
// mode controller, which leaves Load for Setup before New returns.
func New(cfg Config) (*Engine, error) {
	b, err := NewBoard(cfg.Size)
	if err != nil {
		return nil, fmt.Errorf("life: %w", err)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g := NewGrid(b)
	ni := NewNeighborIndex(b)
	e := &Engine{
		board:     b,
		grid:      g,
		neighbors: ni,
		stepper:   newStepper(g, ni, workers),
		rng:       core.NewRNG(cfg.Seed),
		display:   make([]uint8, b.CellCount()),
	}
	e.modes.finishLoad()
	return e, nil
}

// Size returns the number of cells per axis.
func (e *Engine) Size() int { return e.board.Size() }

// Board exposes the read-only geometry and index bijection, so collaborators
// that pick cells from pixel positions never re-derive the mapping.
func (e *Engine) Board() Board { return e.board }

// Mode returns the current lifecycle mode.
func (e *Engine) Mode() Mode { return e.modes.mode }

// Generation returns how many generations have been committed.
func (e *Engine) Generation() int { return e.generation }

// Alive reports the cell's state in the present generation.
func (e *Engine) Alive(x, y int) (bool, error) {
	idx, err := e.board.CoordToIdx(x, y)
	if err != nil {
		return false, err
	}
	return e.grid.Read(idx)
}

// Step advances the board by one generation. It reports false without
// touching the grid unless the mode is Running. Grid state observed through
// Alive or Cells before and after a Step call is always a whole generation,
// never a mixture.
func (e *Engine) Step() bool {
	if e.modes.mode != ModeRunning {
		return false
	}
	e.stepper.step()
	e.generation++
	return true
}

// ToggleCell flips the cell at (x, y). The command applies only while the
// mode is Setup; in any other mode it reports false with no error, since a
// late edit is an expected consequence of timing, not misuse. An
// out-of-range coordinate is a caller bug and fails regardless of mode.
func (e *Engine) ToggleCell(x, y int) (bool, error) {
	idx, err := e.board.CoordToIdx(x, y)
	if err != nil {
		return false, err
	}
	if e.modes.mode != ModeSetup {
		return false, nil
	}
	e.grid.SetCurrent(idx, !e.grid.alive(idx))
	return true, nil
}

// Randomize assigns every cell an independent uniform random state. Like
// ToggleCell it applies only during Setup and reports whether it ran.
func (e *Engine) Randomize() bool {
	if e.modes.mode != ModeSetup {
		return false
	}
	core.FillBool(e.rng.Source(), e.grid.current)
	return true
}

// Reseed replaces the randomize source, so the next Randomize produces a
// fresh reproducible board.
func (e *Engine) Reseed(seed int64) {
	e.rng = core.NewRNG(seed)
}

// ToggleMode flips Setup <-> Running and returns the new mode.
func (e *Engine) ToggleMode() Mode {
	return e.modes.toggle()
}

// Cells returns a 0/1 display snapshot of the current generation in the
// board's index order. The slice is reused across calls and valid until the
// next call; it never aliases the engine's own buffers.
func (e *Engine) Cells() []uint8 {
	e.grid.snapshot(e.display)
	return e.display
}
