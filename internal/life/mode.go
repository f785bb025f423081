package life

// Mode identifies the engine's lifecycle state.
type Mode int

const (
	// ModeLoad exists only while the engine is under construction. No
	// command can observe it: New returns an engine already in ModeSetup.
	ModeLoad Mode = iota
	// ModeSetup permits manual edits and disables automatic stepping.
	ModeSetup
	// ModeRunning enables automatic stepping and rejects edits.
	ModeRunning
)

func (m Mode) String() string {
	switch m {
	case ModeLoad:
		return "load"
	case ModeSetup:
		return "setup"
	case ModeRunning:
		return "running"
	}
	return "unknown"
}

// modeController is the state machine gating which operations are legal:
// Load transitions to Setup exactly once when construction completes, then
// toggle flips between Setup and Running. There is no path back to Load.
type modeController struct {
	mode Mode
}

// finishLoad fires the automatic Load -> Setup transition.
func (c *modeController) finishLoad() {
	if c.mode != ModeLoad {
		panic("life: construction completed twice")
	}
	c.mode = ModeSetup
}

// toggle flips Setup <-> Running and returns the new mode. Toggling during
// load is a programming error: construction is synchronous and completes
// before any command can arrive.
func (c *modeController) toggle() Mode {
	switch c.mode {
	case ModeSetup:
		c.mode = ModeRunning
	case ModeRunning:
		c.mode = ModeSetup
	default:
		panic("life: mode toggled before construction completed")
	}
	return c.mode
}
