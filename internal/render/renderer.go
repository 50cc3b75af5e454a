//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps an RGBA image of the grid in sync with a DiffTracker,
// rewriting only the pixels of cells that changed.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	version uint64
	dirty   bool
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit brings the painter image up to date with frame and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, frame Frame, on, off color.Color, scale int) {
	if len(frame.Cells) != gp.w*gp.h {
		return
	}
	if frame.Version != gp.version {
		// A skipped generation leaves stale pixels the diff does not cover.
		if frame.Full || frame.Version != gp.version+1 {
			fillBinaryRGBA(gp.buf, frame.Cells, on, off)
		} else {
			patchBinaryRGBA(gp.buf, frame.Cells, frame.Changed, on, off)
		}
		gp.version = frame.Version
		gp.dirty = true
	}
	if gp.dirty {
		gp.img.ReplacePixels(gp.buf)
		gp.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

// ChangePainter draws births and deaths of the latest generation as a
// translucent layer.
type ChangePainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewChangePainter allocates a change layer for a grid of size w*h.
func NewChangePainter(w, h int) *ChangePainter {
	return &ChangePainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Blit paints the changes in frame on top of dst.
func (cp *ChangePainter) Blit(dst *ebiten.Image, frame Frame, born, died color.Color, scale int) {
	if len(frame.Cells) != cp.w*cp.h {
		return
	}
	fillChangesRGBA(cp.buf, frame.Cells, frame.Changed, born, died)
	cp.img.ReplacePixels(cp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(cp.img, op)
}
