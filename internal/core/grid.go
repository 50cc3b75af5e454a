package core

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	// ErrInvalidDimension is returned when a grid is created with a
	// non-positive width or height.
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrDimensionMismatch is returned when a replacement buffer does not
	// match the grid it is swapped into.
	ErrDimensionMismatch = errors.New("grid dimension mismatch")
)

// Buffer stores one generation of boolean cells in row-major order.
type Buffer struct {
	W, H int
	data []bool
}

// NewBuffer allocates an all-dead buffer with the given dimensions.
func NewBuffer(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Buffer{W: w, H: h, data: make([]bool, w*h)}
}

// Cells exposes the backing slice. Callers must not write to the cells of a
// buffer that has been installed in a Grid.
func (b *Buffer) Cells() []bool { return b.data }

// Index returns the linear slice index for coordinates (x, y).
func (b *Buffer) Index(x, y int) int { return y*b.W + x }

// InBounds reports whether (x, y) addresses a stored cell.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.W && y < b.H
}

// Get returns the cell at (x, y). Coordinates outside the buffer read as dead.
func (b *Buffer) Get(x, y int) bool {
	if !b.InBounds(x, y) {
		return false
	}
	return b.data[y*b.W+x]
}

// Set writes the cell at (x, y); out-of-range writes are dropped.
func (b *Buffer) Set(x, y int, alive bool) {
	if !b.InBounds(x, y) {
		return
	}
	b.data[y*b.W+x] = alive
}

// Population counts the alive cells.
func (b *Buffer) Population() int {
	n := 0
	for _, alive := range b.data {
		if alive {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{W: b.W, H: b.H, data: make([]bool, len(b.data))}
	copy(out.data, b.data)
	return out
}

// Equal reports whether both buffers have the same size and cells.
func (b *Buffer) Equal(o *Buffer) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.W != o.W || b.H != o.H {
		return false
	}
	for i, v := range b.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// Grid owns the current generation of a fixed-size automaton. Readers always
// observe a complete generation: the buffer is swapped with a single atomic
// pointer store and never mutated once installed.
type Grid struct {
	w, h int
	cur  atomic.Pointer[Buffer]
}

// NewGrid allocates a width*height grid and fills each cell by calling seed.
// A nil seed leaves every cell dead.
func NewGrid(width, height int, seed SeedFunc) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new grid %dx%d: %w", width, height, ErrInvalidDimension)
	}
	buf := NewBuffer(width, height)
	if seed != nil {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				buf.data[y*width+x] = seed(x, y)
			}
		}
	}
	g := &Grid{w: width, h: height}
	g.cur.Store(buf)
	return g, nil
}

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Get returns the state of the cell at (x, y). Coordinates outside the grid
// are dead; they are never wrapped.
func (g *Grid) Get(x, y int) bool { return g.cur.Load().Get(x, y) }

// Snapshot returns the current generation. The returned buffer is read-only.
func (g *Grid) Snapshot() *Buffer { return g.cur.Load() }

// Population counts alive cells in the current generation.
func (g *Grid) Population() int { return g.cur.Load().Population() }

// Replace installs buf as the current generation. The caller hands ownership
// of buf to the grid and must not write to it afterwards.
func (g *Grid) Replace(buf *Buffer) error {
	if buf == nil {
		return fmt.Errorf("replace with nil buffer: %w", ErrDimensionMismatch)
	}
	if buf.W != g.w || buf.H != g.h || len(buf.data) != g.w*g.h {
		return fmt.Errorf("replace %dx%d grid with %dx%d buffer: %w", g.w, g.h, buf.W, buf.H, ErrDimensionMismatch)
	}
	g.cur.Store(buf)
	return nil
}
