package app

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/BrandonReyes0609/Lab2-GraficasXComputadoras/internal/sims/life"
)

// Config represents the startup parameters for the application. Width and
// Height are physical window pixels; the logical grid is their quotient by
// Scale.
type Config struct {
	Sim     string  `json:"sim"`
	Variant string  `json:"variant"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Scale   int     `json:"scale"`
	TPS     int     `json:"tps"`
	GPS     int     `json:"gps"`
	Seed    int64   `json:"seed"`
	Chance  float64 `json:"chance"`
	HUD     bool    `json:"hud"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     "life",
		Variant: "binary",
		Width:   800,
		Height:  600,
		Scale:   10,
		TPS:     60,
		Seed:    42,
		Chance:  life.InitialAliveChance,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Variant, "variant", c.Variant, "rule variant: binary or color")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second (0 = one per tick)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.Float64Var(&c.Chance, "chance", c.Chance, "initial probability of a cell being alive")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the statistics overlay")
}

// LoadFile overlays values from a JSON file onto c. Keys missing from the
// file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %s", path)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %s", path)
	}
	return nil
}

// Validate checks the preconditions the simulation and renderer assume.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return errors.Errorf("scale %d must be positive", c.Scale)
	}
	if c.Width%c.Scale != 0 || c.Height%c.Scale != 0 {
		return errors.Errorf("window size %dx%d is not a multiple of scale %d", c.Width, c.Height, c.Scale)
	}
	if c.Chance < 0 || c.Chance > 1 {
		return errors.Errorf("chance %v outside [0,1]", c.Chance)
	}
	if c.TPS < 0 || c.GPS < 0 {
		return errors.Errorf("rates must not be negative (tps=%d gps=%d)", c.TPS, c.GPS)
	}
	if _, err := life.ParseVariant(c.Variant); err != nil {
		return errors.Wrap(err, "invalid variant")
	}
	return nil
}

// LogicalSize returns the grid dimensions implied by the window and scale.
func (c *Config) LogicalSize() (int, int) {
	return c.Width / c.Scale, c.Height / c.Scale
}

// SimConfig renders the simulation-facing subset of c as a factory map.
func (c *Config) SimConfig() map[string]string {
	w, h := c.LogicalSize()
	return map[string]string{
		"w":       strconv.Itoa(w),
		"h":       strconv.Itoa(h),
		"variant": c.Variant,
		"chance":  strconv.FormatFloat(c.Chance, 'g', -1, 64),
	}
}
