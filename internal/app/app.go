//go:build ebiten

package app

import (
	"image/color"
	"time"

	"tile-life/internal/core"
	"tile-life/internal/render"
	"tile-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface. The frame loop
// is the driver: it advances the sim whenever the fixed-step clock fires or a
// single tick is requested.
type Game struct {
	sim     core.Sim
	tracker *render.DiffTracker
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	clock   *core.FixedStep
	rng     *core.RNG

	onColor  color.Color
	offColor color.Color

	scale    int
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	tracker := render.NewDiffTracker()
	if reg, ok := sim.(core.SinkRegistrar); ok {
		reg.AddSink(tracker)
	}
	tracker.OnGenerationReady(sim.Grid())

	clock := core.NewFixedStep(cfg.SimTPS)
	clock.SetPaused(cfg.Paused)

	return &Game{
		sim:      sim,
		tracker:  tracker,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, tracker, cfg.Scale),
		hud:      ui.NewHUD(sim, tracker, clock, cfg.HUD),
		clock:    clock,
		rng:      core.NewRNG(time.Now().UnixNano()),
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.Scale,
		seed:     cfg.Seed,
	}
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
		g.clock.SetPaused(!g.clock.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.clock.SetPaused(false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(g.rng.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.clock.SetTPS(g.clock.TPS() * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && g.clock.TPS() > 1 {
		g.clock.SetTPS(g.clock.TPS() / 2)
	}

	g.overlay.Update()
	g.hud.Update(g.viewWidth())

	if g.clock.ShouldStep() || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.tracker.Latest(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewWidth() + g.hud.Width(), g.sim.Size().H * g.scale
}

func (g *Game) viewWidth() int { return g.sim.Size().W * g.scale }
