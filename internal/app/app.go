//go:build ebiten

// Package app adapts the simulation clock to the ebiten game loop.
package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/V1adau/GameOfLife/internal/board"
	"github.com/V1adau/GameOfLife/internal/render"
	"github.com/V1adau/GameOfLife/internal/sim"
	"github.com/V1adau/GameOfLife/internal/ui"
)

// Game drives a sim.Clock from the ebiten loop and keeps the view anchored
// while a dynamic board grows.
type Game struct {
	clock   *sim.Clock
	pace    *sim.Pacer
	painter *render.BoardPainter
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool

	// View offset in cells. Left/up growth renumbers board coordinates;
	// decrementing the offset keeps the pattern visually stationary.
	offX, offY int

	viewW, viewH int
}

// New constructs a Game around the provided clock.
func New(clock *sim.Clock, scale, tps int) *Game {
	pace := sim.NewPacer(tps)
	b := clock.Board()
	return &Game{
		clock:    clock,
		pace:     pace,
		painter:  render.NewBoardPainter(b),
		hud:      ui.NewHUD(clock, pace),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		viewW:    b.Width() * scale,
		viewH:    b.Height() * scale,
	}
}

// Update handles input and advances the simulation on its own cadence.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.clock.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.clock.Randomize(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.pace.Faster()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.pace.Slower()
	}
	g.handleTranslate()

	if (!g.paused && g.pace.ShouldStep()) || g.tickOnce {
		g.clock.Advance()
		g.tickOnce = false
		g.reanchor()
	}
	return nil
}

// handleTranslate moves the pattern one cell per arrow-key press while
// paused, so a loaded pattern can be repositioned before running.
func (g *Game) handleTranslate() {
	if !g.paused {
		return
	}
	b := g.clock.Board()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		board.Translate(b, -1, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		board.Translate(b, 1, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		board.Translate(b, 0, -1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		board.Translate(b, 0, 1)
	}
}

// reanchor consumes the board's left/up expansion flags so the view offset
// tracks the moving origin.
func (g *Game) reanchor() {
	db, ok := g.clock.Board().(*board.DynamicBoard)
	if !ok {
		return
	}
	if db.HasExpandedLeft() {
		g.offX--
	}
	if db.HasExpandedUp() {
		g.offY--
	}
}

// Draw renders the current board and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.clock.Board(), g.onColor, g.offColor, g.scale, g.offX, g.offY)
	g.hud.Draw(screen, g.paused)
}

// Layout returns the logical screen size, fixed at the initial board size so
// the window does not jump while the board grows.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewW, g.viewH
}
