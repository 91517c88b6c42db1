//go:build !ebiten

package ui

import "github.com/V1adau/GameOfLife/internal/sim"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*sim.Clock, *sim.Pacer) *HUD { return nil }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, bool) {}
