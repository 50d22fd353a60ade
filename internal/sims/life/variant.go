package life

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/BrandonReyes0609/Lab2-GraficasXComputadoras/internal/core"
)

// Variant selects the rule set used to evolve the grid.
type Variant int

const (
	// Binary is classic B3/S23 with white live cells on black.
	Binary Variant = iota
	// Colorized keeps the color of surviving cells and paints newborns with a
	// fresh random color.
	Colorized
)

const (
	// Alive is the live-cell color of the binary variant.
	Alive core.Color = 0xFFFFFF
	// Dead is the dead-cell color of the binary variant.
	Dead core.Color = 0x000000
	// ColorDead is the dead-cell sentinel of the colorized variant. Every
	// other value counts as alive.
	ColorDead core.Color = 0x000000FF

	// InitialAliveChance is the per-cell probability of starting alive.
	InitialAliveChance = 0.3
)

// ParseVariant maps a flag value onto a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary", "classic", "":
		return Binary, nil
	case "color", "colour", "colorized":
		return Colorized, nil
	}
	return Binary, errors.Errorf("unknown variant %q (want binary or color)", s)
}

func (v Variant) String() string {
	if v == Colorized {
		return "color"
	}
	return "binary"
}

// DeadColor returns the value written into dead cells.
func (v Variant) DeadColor() core.Color {
	if v == Colorized {
		return ColorDead
	}
	return Dead
}

// IsAlive is the liveness predicate used for neighbor counting.
func (v Variant) IsAlive(c core.Color) bool {
	if v == Colorized {
		return c != ColorDead
	}
	return c == Alive
}

// newborn returns the color of a cell born this generation.
func (v Variant) newborn(rng *core.RNG) core.Color {
	if v == Colorized {
		return rng.Color()
	}
	return Alive
}
