package life

import (
	"errors"
	"fmt"

	"tile-life/internal/core"
)

// ErrInvalidRule is returned for rule constants outside the Moore range.
var ErrInvalidRule = errors.New("invalid life rule")

// mooreOffsets lists the eight neighbours of a cell, counter-clockwise from
// south (y grows downwards).
var mooreOffsets = [8][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// Rule is a life-like birth/survival rule. A live cell survives when its
// neighbour count lies in [SurviveMin, SurviveMax]; a dead cell is born when
// the count equals Birth.
type Rule struct {
	SurviveMin int
	SurviveMax int
	Birth      int
}

// Conway is B3/S23.
var Conway = Rule{SurviveMin: 2, SurviveMax: 3, Birth: 3}

// Validate checks that every constant is a reachable neighbour count.
func (r Rule) Validate() error {
	for _, v := range [...]int{r.SurviveMin, r.SurviveMax, r.Birth} {
		if v < 0 || v > len(mooreOffsets) {
			return fmt.Errorf("rule %s: %w", r, ErrInvalidRule)
		}
	}
	return nil
}

// Next returns the state of a cell in the following generation.
func (r Rule) Next(alive bool, neighbors int) bool {
	if alive {
		return neighbors >= r.SurviveMin && neighbors <= r.SurviveMax
	}
	return neighbors == r.Birth
}

func (r Rule) String() string {
	return fmt.Sprintf("B%d/S%d-%d", r.Birth, r.SurviveMin, r.SurviveMax)
}

// NeighborCount counts live cells in the Moore neighbourhood of (x, y).
// Neighbours outside the buffer are skipped, so edge cells see fewer than
// eight candidates.
func NeighborCount(b *core.Buffer, x, y int) int {
	cells := b.Cells()
	n := 0
	for _, off := range mooreOffsets {
		nx, ny := x+off[0], y+off[1]
		if nx < 0 || ny < 0 || nx >= b.W || ny >= b.H {
			continue
		}
		if cells[ny*b.W+nx] {
			n++
		}
	}
	return n
}

// Step computes the generation after b on the calling goroutine.
func Step(b *core.Buffer, rule Rule) *core.Buffer {
	next := core.NewBuffer(b.W, b.H)
	stepRows(b, next, rule, 0, b.H)
	return next
}

// stepRows fills rows [y0, y1) of next from src.
func stepRows(src, next *core.Buffer, rule Rule, y0, y1 int) {
	in, out := src.Cells(), next.Cells()
	w := src.W
	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			out[idx] = rule.Next(in[idx], NeighborCount(src, x, y))
		}
	}
}
