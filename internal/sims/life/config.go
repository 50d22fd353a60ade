package life

import "strconv"

// Config controls the logical grid and rule variant of a Life simulation.
type Config struct {
	Width   int
	Height  int
	Variant Variant
	Chance  float64
}

// DefaultConfig returns an 80x60 binary board, the logical size of an
// 800x600 window at scale 10.
func DefaultConfig() Config {
	return Config{Width: 80, Height: 60, Variant: Binary, Chance: InitialAliveChance}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Invalid entries keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["variant"]; ok {
		if parsed, err := ParseVariant(v); err == nil {
			c.Variant = parsed
		}
	}
	if v, ok := cfg["chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Chance = parsed
		}
	}
	return c
}
