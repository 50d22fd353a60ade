//go:build !ebiten

package ui

import "github.com/BrandonReyes0609/Lab2-GraficasXComputadoras/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Sim) *HUD { return nil }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, bool) {}
