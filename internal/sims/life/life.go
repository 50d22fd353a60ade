package life

import (
	"strconv"

	"github.com/BrandonReyes0609/Lab2-GraficasXComputadoras/internal/core"
)

// Life implements Conway's Game of Life with toroidal wrapping on a color
// framebuffer.
type Life struct {
	cfg        Config
	fb         *core.Framebuffer
	rng        *core.RNG
	generation int
}

// New returns a Life simulation with the provided dimensions and variant.
func New(w, h int, v Variant) *Life {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Variant = w, h, v
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Life simulation built from cfg. The board starts
// entirely dead; call Reset to seed it.
func NewWithConfig(cfg Config) *Life {
	l := &Life{cfg: cfg, fb: core.NewFramebuffer(cfg.Width, cfg.Height), rng: core.NewRNG(0)}
	l.Kill()
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string {
	if l.cfg.Variant == Colorized {
		return "colorlife"
	}
	return "life"
}

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.fb.Size() }

// Frame exposes the current generation.
func (l *Life) Frame() *core.Framebuffer { return l.fb }

// Variant returns the rule set in use.
func (l *Life) Variant() Variant { return l.cfg.Variant }

// Generation returns how many steps have run since the last reset.
func (l *Life) Generation() int { return l.generation }

// Kill sets every cell to the variant's dead color.
func (l *Life) Kill() {
	dead := l.cfg.Variant.DeadColor()
	cells := l.fb.Buffer()
	for i := range cells {
		cells[i] = dead
	}
	l.generation = 0
}

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	l.rng = core.NewRNG(seed)
	Seed(l.fb, l.cfg.Variant, l.rng, l.cfg.Chance)
	l.generation = 0
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	Step(l.fb, l.cfg.Variant, l.rng)
	l.generation++
}

// Population counts live cells in the current generation.
func (l *Life) Population() int { return Population(l.fb, l.cfg.Variant) }

// Parameters reports the values shown on the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	size := l.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Rules",
			Params: []core.Parameter{
				{Key: "variant", Label: "Variant", Value: l.cfg.Variant.String()},
				{Key: "grid", Label: "Grid", Value: strconv.Itoa(size.W) + "x" + strconv.Itoa(size.H)},
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Value: strconv.Itoa(l.generation)},
				{Key: "population", Label: "Population", Value: strconv.Itoa(l.Population())},
			},
		},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
	core.Register("colorlife", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		c.Variant = Colorized
		return NewWithConfig(c)
	})
}
