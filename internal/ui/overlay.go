//go:build ebiten

package ui

import (
	"image/color"

	"tile-life/internal/core"
	"tile-life/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	bornColor = color.RGBA{R: 60, G: 200, B: 90, A: 160}
	diedColor = color.RGBA{R: 210, G: 60, B: 50, A: 160}
)

// Overlay highlights the cells born or killed by the latest generation.
// Toggle with the 1 key.
type Overlay struct {
	tracker *render.DiffTracker
	painter *render.ChangePainter
	scale   int
	show    bool
}

// NewOverlay constructs an overlay for the sim tracked by tracker.
func NewOverlay(sim core.Sim, tracker *render.DiffTracker, scale int) *Overlay {
	size := sim.Size()
	return &Overlay{
		tracker: tracker,
		painter: render.NewChangePainter(size.W, size.H),
		scale:   scale,
	}
}

// Update handles the overlay toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.tracker == nil {
		return
	}
	frame := o.tracker.Latest()
	if frame.Full {
		return
	}
	o.painter.Blit(screen, frame, bornColor, diedColor, max(o.scale, 1))
}
