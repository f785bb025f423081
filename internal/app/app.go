//go:build ebiten

package app

import (
	"time"

	"conway/internal/config"
	"conway/internal/core"
	"conway/internal/life"
	"conway/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the life engine to the ebiten.Game interface. It is the
// external driver: it serializes command handling and generation stepping
// within each update, and maps pixel positions to cells through the engine's
// own bijection.
type Game struct {
	eng     *life.Engine
	painter *render.GridPainter
	ticker  *core.FixedStep

	scale int

	hoverX, hoverY int
	hovering       bool
	lastToggled    int // last drag-toggled cell, -1 while the button is up
}

// New constructs a Game driving the provided engine.
func New(eng *life.Engine, cfg *config.Config) *Game {
	n := eng.Size()
	return &Game{
		eng:         eng,
		painter:     render.NewGridPainter(n, n),
		ticker:      core.NewFixedStep(cfg.TickInterval()),
		scale:       cfg.Display.Scale,
		lastToggled: -1,
	}
}

// Update handles input commands, then advances the simulation if a tick is
// due. The engine rejects edits outside setup on its own, so input handling
// stays mode-agnostic here.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.eng.ToggleMode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.eng.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.eng.Reseed(time.Now().UnixNano())
		g.eng.Randomize()
	}

	g.handlePointer()

	if g.ticker.ShouldStep() {
		g.eng.Step()
	}
	return nil
}

func (g *Game) handlePointer() {
	cx, cy := ebiten.CursorPosition()
	n := g.eng.Size()
	g.hoverX, g.hoverY = cx/g.scale, cy/g.scale
	g.hovering = cx >= 0 && cy >= 0 && g.hoverX < n && g.hoverY < n

	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.lastToggled = -1
		return
	}
	if !g.hovering {
		return
	}

	// Pressing toggles the cell under the cursor; dragging toggles each
	// newly entered cell once.
	idx, err := g.eng.Board().CoordToIdx(g.hoverX, g.hoverY)
	if err != nil || idx == g.lastToggled {
		return
	}
	if applied, _ := g.eng.ToggleCell(g.hoverX, g.hoverY); applied {
		g.lastToggled = idx
	}
}

// Draw renders the current generation, plus hover feedback during setup.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.eng.Cells(), render.AliveColor, render.DeadColor, g.scale)

	if g.eng.Mode() != life.ModeSetup || !g.hovering {
		return
	}
	col := render.HoveredDeadColor
	if alive, err := g.eng.Alive(g.hoverX, g.hoverY); err == nil && alive {
		col = render.HoveredAliveColor
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		col = render.ClickedColor
	}
	g.painter.HighlightCell(screen, g.hoverX, g.hoverY, g.scale, col)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	n := g.eng.Size()
	return n * g.scale, n * g.scale
}
