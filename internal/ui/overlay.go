//go:build ebiten

package ui

import (
	"image/color"

	"github.com/BrandonReyes0609/Lab2-GraficasXComputadoras/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional cell-boundary lines on top of the simulation.
type Overlay struct {
	sim      core.Sim
	scale    int
	showGrid bool
	pixel    *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the grid with the G key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || !o.showGrid {
		return
	}
	col := color.RGBA{R: 48, G: 48, B: 56, A: 255}
	for _, s := range GridLines(o.sim.Size(), o.scale) {
		o.drawRect(screen, s, col)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, s Segment, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(s.W), float64(s.H))
	op.GeoM.Translate(float64(s.X), float64(s.Y))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
