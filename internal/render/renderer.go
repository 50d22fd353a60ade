//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/BrandonReyes0609/Lab2-GraficasXComputadoras/internal/core"
)

// GridPainter uploads a scaled framebuffer into a single ebiten image.
type GridPainter struct {
	surface *Surface
	img     *ebiten.Image
}

// NewGridPainter allocates a painter for a physW x physH window at the given
// scale.
func NewGridPainter(physW, physH, scale int) *GridPainter {
	return &GridPainter{
		surface: NewSurface(physW, physH, scale),
		img:     ebiten.NewImage(physW, physH),
	}
}

// Blit fills the surface from fb, uploads it and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, fb *core.Framebuffer) {
	gp.surface.Fill(fb)
	gp.img.WritePixels(gp.surface.Pixels())
	dst.DrawImage(gp.img, nil)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.surface.Size() }
