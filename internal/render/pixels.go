package render

import "github.com/BrandonReyes0609/Lab2-GraficasXComputadoras/internal/core"

// BytesPerPixel is the stride of one surface pixel.
const BytesPerPixel = 4

// Channels splits a packed color into its R, G and B bytes (bits 16..23,
// 8..15 and 0..7). The high byte is ignored.
func Channels(c core.Color) (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// EncodeRGBA converts a packed color to surface byte order: R, G, B followed
// by a forced opaque alpha.
func EncodeRGBA(c core.Color) [BytesPerPixel]byte {
	r, g, b := Channels(c)
	return [BytesPerPixel]byte{r, g, b, 0xFF}
}

// FillScaled writes fb into an RGBA surface of physW x physH pixels, each cell
// covering a scale x scale block. Physical pixel (px, py) reads cell
// (px/scale, py/scale). Undersized buffers and non-positive scales are
// ignored.
func FillScaled(dst []byte, physW, physH, scale int, fb *core.Framebuffer) {
	if scale <= 0 || physW <= 0 || physH <= 0 || len(dst) < physW*physH*BytesPerPixel {
		return
	}
	stride := physW * BytesPerPixel
	for py := 0; py < physH; py++ {
		row := dst[py*stride : (py+1)*stride]
		if py%scale != 0 {
			// Rows inside a block repeat the block's first row.
			copy(row, dst[(py-1)*stride:py*stride])
			continue
		}
		cy := py / scale
		for px := 0; px < physW; px++ {
			px4 := EncodeRGBA(fb.Pixel(px/scale, cy))
			copy(row[px*BytesPerPixel:], px4[:])
		}
	}
}

// Surface is a 4-bytes-per-pixel RGBA buffer of fixed physical size that a
// framebuffer is scaled into before presentation.
type Surface struct {
	w, h  int
	scale int
	buf   []byte
}

// NewSurface allocates a surface of physW x physH pixels for the given scale.
func NewSurface(physW, physH, scale int) *Surface {
	return &Surface{w: physW, h: physH, scale: scale, buf: make([]byte, physW*physH*BytesPerPixel)}
}

// Fill scales fb into the surface.
func (s *Surface) Fill(fb *core.Framebuffer) {
	FillScaled(s.buf, s.w, s.h, s.scale, fb)
}

// Pixels exposes the surface bytes for upload.
func (s *Surface) Pixels() []byte { return s.buf }

// Size returns the physical dimensions.
func (s *Surface) Size() (int, int) { return s.w, s.h }

// Scale returns the magnification factor.
func (s *Surface) Scale() int { return s.scale }
