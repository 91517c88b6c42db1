//go:build ebiten

// Package ui draws the status line of the GUI build.
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/V1adau/GameOfLife/internal/sim"
)

// HUD renders generation, population and rule info over the board view.
type HUD struct {
	clock *sim.Clock
	pace  *sim.Pacer
}

// NewHUD constructs a HUD over the given clock and pacer.
func NewHUD(clock *sim.Clock, pace *sim.Pacer) *HUD {
	return &HUD{clock: clock, pace: pace}
}

// Draw renders the status line in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image, paused bool) {
	if h == nil {
		return
	}
	r := h.clock.Rule()
	name := r.Name
	if name == "" {
		name = "Custom"
	}
	status := fmt.Sprintf("gen %d  alive %d  %s (%s)  %d gps",
		h.clock.Generation(), h.clock.Board().CellsAlive(), name, r.String(), h.pace.TPS())
	if paused {
		status += "  [paused]"
	}

	face := basicfont.Face7x13
	// Shadow first so the line stays readable over live cells.
	text.Draw(screen, status, face, 5, 14, color.Black)
	text.Draw(screen, status, face, 4, 13, color.White)
}
