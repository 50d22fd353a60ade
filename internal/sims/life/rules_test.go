package life

import (
	"testing"

	"github.com/BrandonReyes0609/Lab2-GraficasXComputadoras/internal/core"
)

func newBoard(w, h int, v Variant) *core.Framebuffer {
	fb := core.NewFramebuffer(w, h)
	dead := v.DeadColor()
	for i := range fb.Buffer() {
		fb.Buffer()[i] = dead
	}
	return fb
}

func expectAlive(t *testing.T, fb *core.Framebuffer, v Variant, alive map[[2]int]bool, stage string) {
	t.Helper()
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			got := v.IsAlive(fb.Pixel(x, y))
			if got != alive[[2]int{x, y}] {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", stage, x, y, got, alive[[2]int{x, y}])
			}
		}
	}
}

func TestCountNeighborsRange(t *testing.T) {
	for _, v := range []Variant{Binary, Colorized} {
		fb := newBoard(4, 3, v)
		rng := core.NewRNG(3)
		Seed(fb, v, rng, 0.5)
		for y := 0; y < 3; y++ {
			for x := 0; x < 4; x++ {
				if n := CountNeighbors(fb, x, y, v); n < 0 || n > 8 {
					t.Fatalf("%v: neighbors of (%d,%d) = %d", v, x, y, n)
				}
			}
		}

		full := core.NewFramebuffer(4, 4)
		for i := range full.Buffer() {
			full.Buffer()[i] = Alive
		}
		if n := CountNeighbors(full, 0, 0, v); n != 8 {
			t.Fatalf("%v: fully alive board counts %d neighbors, want 8", v, n)
		}
	}
}

func TestCountNeighborsWrapsDiagonal(t *testing.T) {
	fb := newBoard(6, 5, Binary)
	fb.SetPixel(5, 4, Alive)
	if n := CountNeighbors(fb, 0, 0, Binary); n != 1 {
		t.Fatalf("(0,0) sees %d neighbors, want the wrapped (w-1,h-1) cell", n)
	}
	if n := CountNeighbors(fb, 5, 4, Binary); n != 0 {
		t.Fatalf("cell does not count itself, got %d", n)
	}
	if n := CountNeighbors(fb, 4, 3, Binary); n != 1 {
		t.Fatalf("(4,3) sees %d neighbors, want 1", n)
	}
	if n := CountNeighbors(fb, 2, 2, Binary); n != 0 {
		t.Fatalf("(2,2) sees %d neighbors, want 0", n)
	}
}

func TestLivenessPredicates(t *testing.T) {
	if Binary.IsAlive(0xFF00FF) {
		t.Fatal("binary only treats the exact alive color as alive")
	}
	if !Binary.IsAlive(Alive) || Binary.IsAlive(Dead) {
		t.Fatal("binary predicate mismatch")
	}
	if Colorized.IsAlive(ColorDead) {
		t.Fatal("colorized dead sentinel counted as alive")
	}
	if !Colorized.IsAlive(0) || !Colorized.IsAlive(0xFF123456) {
		t.Fatal("colorized treats every non-sentinel value as alive")
	}
}

func TestBlinkerOscillation(t *testing.T) {
	fb := newBoard(5, 5, Binary)
	fb.SetPixel(1, 2, Alive)
	fb.SetPixel(2, 2, Alive)
	fb.SetPixel(3, 2, Alive)
	rng := core.NewRNG(1)

	Step(fb, Binary, rng)
	expectAlive(t, fb, Binary, map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}, "first step")

	Step(fb, Binary, rng)
	expectAlive(t, fb, Binary, map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}, "second step")
}

func TestNextDoesNotMutateInput(t *testing.T) {
	fb := newBoard(5, 5, Binary)
	fb.SetPixel(1, 2, Alive)
	fb.SetPixel(2, 2, Alive)
	fb.SetPixel(3, 2, Alive)
	before := append([]core.Color(nil), fb.Buffer()...)

	Next(fb, Binary, core.NewRNG(1))
	for i, c := range fb.Buffer() {
		if c != before[i] {
			t.Fatalf("Next changed input cell %d", i)
		}
	}
}

func TestUnderpopulation(t *testing.T) {
	fb := newBoard(5, 5, Binary)
	fb.SetPixel(2, 2, Alive)
	Step(fb, Binary, core.NewRNG(1))
	if got := fb.Pixel(2, 2); got != Dead {
		t.Fatalf("isolated cell = %#x, want dead", got)
	}
}

func TestOverpopulation(t *testing.T) {
	fb := newBoard(5, 5, Binary)
	fb.SetPixel(2, 2, Alive)
	fb.SetPixel(1, 1, Alive)
	fb.SetPixel(3, 1, Alive)
	fb.SetPixel(1, 3, Alive)
	fb.SetPixel(3, 3, Alive)
	if n := CountNeighbors(fb, 2, 2, Binary); n != 4 {
		t.Fatalf("setup: center has %d neighbors", n)
	}
	Step(fb, Binary, core.NewRNG(1))
	if got := fb.Pixel(2, 2); got != Dead {
		t.Fatalf("crowded cell = %#x, want dead", got)
	}
}

func TestBirthAndSurvivalTable(t *testing.T) {
	offsets := [][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	for n := 0; n <= 8; n++ {
		for _, alive := range []bool{false, true} {
			fb := newBoard(5, 5, Binary)
			if alive {
				fb.SetPixel(2, 2, Alive)
			}
			for _, o := range offsets[:n] {
				fb.SetPixel(2+o[0], 2+o[1], Alive)
			}
			next := Next(fb, Binary, core.NewRNG(1))
			want := Dead
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				want = Alive
			}
			if got := next[fb.Index(2, 2)]; got != want {
				t.Fatalf("alive=%v n=%d: next = %#x, want %#x", alive, n, got, want)
			}
		}
	}
}

func TestAllDeadIsFixedPoint(t *testing.T) {
	for _, v := range []Variant{Binary, Colorized} {
		fb := newBoard(7, 6, v)
		rng := core.NewRNG(5)
		Step(fb, v, rng)
		Step(fb, v, rng)
		for i, c := range fb.Buffer() {
			if c != v.DeadColor() {
				t.Fatalf("%v: cell %d = %#x after two steps on an empty board", v, i, c)
			}
		}
	}
}

func TestColorizedSurvivorKeepsColor(t *testing.T) {
	const survivor core.Color = 0xFF3366CC
	for _, neighbors := range []int{2, 3} {
		fb := newBoard(6, 6, Colorized)
		fb.SetPixel(2, 2, survivor)
		fb.SetPixel(1, 2, 0xFF010203)
		fb.SetPixel(3, 2, 0xFF040506)
		if neighbors == 3 {
			fb.SetPixel(2, 1, 0xFF070809)
		}
		if n := CountNeighbors(fb, 2, 2, Colorized); n != neighbors {
			t.Fatalf("setup: %d neighbors, want %d", n, neighbors)
		}
		Step(fb, Colorized, core.NewRNG(11))
		if got := fb.Pixel(2, 2); got != survivor {
			t.Fatalf("%d neighbors: survivor color %#x, want %#x", neighbors, got, survivor)
		}
	}
}

func TestColorizedDeathUsesSentinel(t *testing.T) {
	fb := newBoard(5, 5, Colorized)
	fb.SetPixel(2, 2, 0xFFABCDEF)
	Step(fb, Colorized, core.NewRNG(1))
	if got := fb.Pixel(2, 2); got != ColorDead {
		t.Fatalf("lonely colored cell = %#x, want %#x", got, ColorDead)
	}
}

func TestColorizedNewbornColorsAreUniform(t *testing.T) {
	const parent core.Color = 0xFF102030
	const rounds = 20000
	rng := core.NewRNG(2024)

	var buckets [3][8]int
	var sums [3]int
	inherited := 0
	samples := 0
	for i := 0; i < rounds; i++ {
		fb := newBoard(5, 5, Colorized)
		fb.SetPixel(1, 2, parent)
		fb.SetPixel(2, 2, parent)
		fb.SetPixel(3, 2, parent)
		next := Next(fb, Colorized, rng)
		for _, xy := range [][2]int{{2, 1}, {2, 3}} {
			c := next[fb.Index(xy[0], xy[1])]
			if c>>24 != 0xFF {
				t.Fatalf("newborn %#x is not opaque", c)
			}
			if c == parent {
				inherited++
			}
			channels := [3]int{int(c >> 16 & 0xFF), int(c >> 8 & 0xFF), int(c & 0xFF)}
			for ch, val := range channels {
				buckets[ch][val/32]++
				sums[ch] += val
			}
			samples++
		}
	}

	if inherited > samples/100 {
		t.Fatalf("%d of %d newborns copied the parent color", inherited, samples)
	}
	expected := samples / 8
	for ch := range buckets {
		for b, count := range buckets[ch] {
			if count < expected*9/10 || count > expected*11/10 {
				t.Fatalf("channel %d bucket %d: %d samples, expected about %d", ch, b, count, expected)
			}
		}
		mean := float64(sums[ch]) / float64(samples)
		if mean < 124 || mean > 131 {
			t.Fatalf("channel %d mean %.2f, expected about 127.5", ch, mean)
		}
	}
}

func TestSeedDensity(t *testing.T) {
	for _, v := range []Variant{Binary, Colorized} {
		fb := core.NewFramebuffer(200, 200)
		Seed(fb, v, core.NewRNG(8), InitialAliveChance)
		ratio := float64(Population(fb, v)) / float64(200*200)
		if ratio < 0.28 || ratio > 0.32 {
			t.Fatalf("%v: seeded density %.3f, want about 0.3", v, ratio)
		}
		for i, c := range fb.Buffer() {
			if !v.IsAlive(c) && c != v.DeadColor() {
				t.Fatalf("%v: cell %d holds %#x, neither alive nor dead color", v, i, c)
			}
			if v == Colorized && v.IsAlive(c) && c>>24 != 0xFF {
				t.Fatalf("cell %d color %#x is not opaque", i, c)
			}
		}
	}
}
