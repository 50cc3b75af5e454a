package render

import (
	"sync"

	"tile-life/internal/core"
)

// DiffTracker records which cells changed between consecutive generations so
// a painter can redraw only those tiles. It implements core.GenerationSink.
type DiffTracker struct {
	mu      sync.Mutex
	prev    *core.Buffer
	cur     *core.Buffer
	changed []int
	full    bool
	version uint64
}

// NewDiffTracker returns a tracker whose first generation is reported as a
// full redraw.
func NewDiffTracker() *DiffTracker {
	return &DiffTracker{full: true}
}

// OnGenerationReady diffs the new generation against the previous one.
func (d *DiffTracker) OnGenerationReady(g *core.Grid) {
	next := g.Snapshot()

	d.mu.Lock()
	defer d.mu.Unlock()

	d.prev, d.cur = d.cur, next
	d.version++
	d.changed = d.changed[:0]
	if d.prev == nil || d.prev.W != next.W || d.prev.H != next.H {
		d.full = true
		return
	}
	d.full = false
	old, cells := d.prev.Cells(), next.Cells()
	for i, alive := range cells {
		if old[i] != alive {
			d.changed = append(d.changed, i)
		}
	}
}

// Frame describes what a painter has to redraw for the latest generation.
type Frame struct {
	Cells   []bool
	Changed []int
	Full    bool
	Version uint64
}

// Latest returns the most recent generation and its changes. The returned
// slices are owned by the tracker and valid until the next generation.
func (d *DiffTracker) Latest() Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cur == nil {
		return Frame{}
	}
	return Frame{
		Cells:   d.cur.Cells(),
		Changed: d.changed,
		Full:    d.full,
		Version: d.version,
	}
}

// Counts reports births and deaths in the latest generation.
func (d *DiffTracker) Counts() (born, died int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cur == nil {
		return 0, 0
	}
	cells := d.cur.Cells()
	for _, i := range d.changed {
		if cells[i] {
			born++
		} else {
			died++
		}
	}
	return born, died
}
