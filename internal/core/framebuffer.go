package core

// Color is a packed 32-bit cell color. Its layout depends on the rule variant
// that writes it; the renderer reads bits 16..23, 8..15 and 0..7 as R, G, B.
type Color uint32

// Background is the value every cell holds after allocation or Clear.
const Background Color = 0

// Framebuffer stores a 2D grid of colors in row-major order.
type Framebuffer struct {
	w, h  int
	cells []Color
}

// NewFramebuffer allocates a w*h framebuffer filled with Background. The
// caller guarantees w and h are positive.
func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{w: w, h: h, cells: make([]Color, w*h)}
}

// Width returns the number of columns.
func (f *Framebuffer) Width() int { return f.w }

// Height returns the number of rows.
func (f *Framebuffer) Height() int { return f.h }

// Size returns the grid dimensions.
func (f *Framebuffer) Size() Size { return Size{W: f.w, H: f.h} }

// Buffer exposes the backing slice. Callers outside the engine must not write
// through it.
func (f *Framebuffer) Buffer() []Color { return f.cells }

// Index returns the linear slice index for coordinates (x, y).
func (f *Framebuffer) Index(x, y int) int { return y*f.w + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (f *Framebuffer) Wrap(x, y int) (int, int) {
	x = (x%f.w + f.w) % f.w
	y = (y%f.h + f.h) % f.h
	return x, y
}

func (f *Framebuffer) inBounds(x, y int) bool {
	return x >= 0 && x < f.w && y >= 0 && y < f.h
}

// SetPixel writes c at (x, y). Coordinates outside the grid are ignored.
func (f *Framebuffer) SetPixel(x, y int, c Color) {
	if !f.inBounds(x, y) {
		return
	}
	f.cells[f.Index(x, y)] = c
}

// Pixel returns the color at (x, y), or Background outside the grid.
func (f *Framebuffer) Pixel(x, y int) Color {
	if !f.inBounds(x, y) {
		return Background
	}
	return f.cells[f.Index(x, y)]
}

// Replace swaps in a complete next generation. Slices of the wrong length are
// rejected so the w*h invariant always holds.
func (f *Framebuffer) Replace(cells []Color) bool {
	if len(cells) != len(f.cells) {
		return false
	}
	f.cells = cells
	return true
}

// Clear fills the framebuffer with Background.
func (f *Framebuffer) Clear() {
	for i := range f.cells {
		f.cells[i] = Background
	}
}
