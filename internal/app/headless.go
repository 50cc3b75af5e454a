//go:build !ebiten

package app

import (
	"bufio"
	"fmt"
	"io"

	"tile-life/internal/core"
)

// Game drives a simulation without a window: every Update advances one
// generation and Draw prints the board as text.
type Game struct {
	sim  core.Sim
	seed int64
}

// New constructs a headless Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	return &Game{sim: sim, seed: cfg.Seed}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
}

// Update advances the simulation by one generation.
func (g *Game) Update() error {
	g.sim.Step()
	return nil
}

// Draw writes a header line followed by one row of '#' and '.' per grid row.
func (g *Game) Draw(w io.Writer) error {
	out := bufio.NewWriter(w)
	grid := g.sim.Grid()
	size := grid.Size()
	fmt.Fprintf(out, "%s %dx%d generation %d population %d\n", g.sim.Name(), size.W, size.H, g.sim.Generation(), grid.Population())
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if grid.Get(x, y) {
				out.WriteByte('#')
			} else {
				out.WriteByte('.')
			}
		}
		out.WriteByte('\n')
	}
	return out.Flush()
}

// Layout returns the board size in cells.
func (g *Game) Layout(int, int) (int, int) {
	size := g.sim.Size()
	return size.W, size.H
}
