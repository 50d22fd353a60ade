//go:build ebiten

package ui

import (
	"image/color"

	"github.com/BrandonReyes0609/Lab2-GraficasXComputadoras/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 6
	lineHeight   = 15
	glyphWidth   = 7
)

// HUD renders a translucent statistics panel in the top-left corner.
type HUD struct {
	sim   core.Sim
	panel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim}
}

// Draw paints the panel over the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, paused bool) {
	if h == nil || h.sim == nil {
		return
	}
	lines := HUDLines(h.sim.Name(), snapshotOf(h.sim), paused)
	w := longest(lines)*glyphWidth + 2*panelPadding
	ht := len(lines)*lineHeight + 2*panelPadding
	if h.panel == nil || h.panel.Bounds().Dx() != w || h.panel.Bounds().Dy() != ht {
		h.panel = ebiten.NewImage(w, ht)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	for i, line := range lines {
		clr := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == 0 {
			clr = color.RGBA{R: 255, G: 210, B: 120, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, panelPadding+(i+1)*lineHeight-3, clr)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(4, 4)
	screen.DrawImage(h.panel, op)
}
