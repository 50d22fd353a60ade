package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Uint8 returns a uniformly distributed byte in [0, 256).
func (r *RNG) Uint8() uint8 {
	return uint8(r.r.IntN(256))
}

// Color returns an opaque color with independent uniform R, G and B channels,
// packed as 0xFFRRGGBB.
func (r *RNG) Color() Color {
	red, green, blue := Color(r.Uint8()), Color(r.Uint8()), Color(r.Uint8())
	return 0xFF<<24 | red<<16 | green<<8 | blue
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
