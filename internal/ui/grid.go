package ui

import "github.com/BrandonReyes0609/Lab2-GraficasXComputadoras/internal/core"

// Segment is an axis-aligned one-pixel-thick line in physical coordinates.
type Segment struct {
	X, Y, W, H int
}

// GridLines returns the interior cell boundaries of a size grid magnified by
// scale. Scales below 3 produce no lines since they would hide the cells.
func GridLines(size core.Size, scale int) []Segment {
	if scale < 3 || size.W <= 0 || size.H <= 0 {
		return nil
	}
	physW, physH := size.W*scale, size.H*scale
	segs := make([]Segment, 0, size.W+size.H-2)
	for x := 1; x < size.W; x++ {
		segs = append(segs, Segment{X: x * scale, Y: 0, W: 1, H: physH})
	}
	for y := 1; y < size.H; y++ {
		segs = append(segs, Segment{X: 0, Y: y * scale, W: physW, H: 1})
	}
	return segs
}
