package life

import "github.com/BrandonReyes0609/Lab2-GraficasXComputadoras/internal/core"

// CountNeighbors returns how many of the eight toroidal neighbors of (x, y)
// satisfy the variant's liveness predicate.
func CountNeighbors(fb *core.Framebuffer, x, y int, v Variant) int {
	cells := fb.Buffer()
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := fb.Wrap(x+dx, y+dy)
			if v.IsAlive(cells[fb.Index(nx, ny)]) {
				neighbors++
			}
		}
	}
	return neighbors
}

// Next computes the following generation into a freshly allocated slice. The
// framebuffer being read is never written. rng is only consulted for
// colorized births.
func Next(fb *core.Framebuffer, v Variant, rng *core.RNG) []core.Color {
	w, h := fb.Width(), fb.Height()
	cur := fb.Buffer()
	nxt := make([]core.Color, len(cur))
	dead := v.DeadColor()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := fb.Index(x, y)
			n := CountNeighbors(fb, x, y, v)
			switch alive := v.IsAlive(cur[idx]); {
			case alive && (n == 2 || n == 3):
				nxt[idx] = cur[idx]
			case !alive && n == 3:
				nxt[idx] = v.newborn(rng)
			default:
				nxt[idx] = dead
			}
		}
	}
	return nxt
}

// Step advances fb by one generation.
func Step(fb *core.Framebuffer, v Variant, rng *core.RNG) {
	fb.Replace(Next(fb, v, rng))
}

// Seed fills fb so that each cell is independently alive with probability
// chance and dead otherwise.
func Seed(fb *core.Framebuffer, v Variant, rng *core.RNG, chance float64) {
	cells := fb.Buffer()
	dead := v.DeadColor()
	for i := range cells {
		if rng.Chance(chance) {
			cells[i] = v.newborn(rng)
			continue
		}
		cells[i] = dead
	}
}

// Population counts the cells of fb that are alive under v.
func Population(fb *core.Framebuffer, v Variant) int {
	n := 0
	for _, c := range fb.Buffer() {
		if v.IsAlive(c) {
			n++
		}
	}
	return n
}
