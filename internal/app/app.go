//go:build ebiten

package app

import (
	"time"

	"github.com/BrandonReyes0609/Lab2-GraficasXComputadoras/internal/core"
	"github.com/BrandonReyes0609/Lab2-GraficasXComputadoras/internal/render"
	"github.com/BrandonReyes0609/Lab2-GraficasXComputadoras/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface. It owns the
// simulation exclusively: Update mutates the framebuffer, Draw only reads it.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	pacer   *core.FixedStep

	width, height int
	paused        bool
	tickOnce      bool
	showHUD       bool
	seed          int64
}

// New constructs a Game for the provided simulation and window configuration.
func New(sim core.Sim, cfg *Config) *Game {
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(cfg.Width, cfg.Height, cfg.Scale),
		hud:     ui.NewHUD(sim),
		overlay: ui.NewOverlay(sim, cfg.Scale),
		width:   cfg.Width,
		height:  cfg.Height,
		showHUD: cfg.HUD,
		seed:    cfg.Seed,
	}
	if cfg.GPS > 0 {
		g.pacer = core.NewFixedStep(cfg.GPS)
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	g.overlay.Update()

	if g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
		return nil
	}
	if g.paused {
		return nil
	}
	if g.pacer == nil || g.pacer.ShouldStep() {
		g.sim.Step()
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Frame())
	g.overlay.Draw(screen)
	if g.showHUD {
		g.hud.Draw(screen, g.paused)
	}
}

// Layout returns the physical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
