package life

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"tile-life/internal/core"
)

// minBandRows keeps bands large enough that scheduling does not dominate.
const minBandRows = 8

// Engine advances grids one generation at a time, spreading the rows of each
// generation across worker goroutines.
type Engine struct {
	Rule    Rule
	Workers int
}

// NewEngine returns an engine for rule. Workers <= 0 selects one per CPU.
func NewEngine(rule Rule, workers int) *Engine {
	return &Engine{Rule: rule, Workers: workers}
}

// Advance computes the next generation of g from its current snapshot and
// installs it. Workers read only the snapshot and write disjoint rows of the
// new buffer, which is swapped in after every row is done. Advance must not
// be called concurrently on the same grid.
func (e *Engine) Advance(g *core.Grid) {
	src := g.Snapshot()
	next := core.NewBuffer(src.W, src.H)

	workers := e.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	bands := bandCount(src.H, workers)
	if bands <= 1 {
		stepRows(src, next, e.Rule, 0, src.H)
	} else {
		var eg errgroup.Group
		eg.SetLimit(workers)
		rows := (src.H + bands - 1) / bands
		for y0 := 0; y0 < src.H; y0 += rows {
			y1 := min(y0+rows, src.H)
			eg.Go(func() error {
				stepRows(src, next, e.Rule, y0, y1)
				return nil
			})
		}
		// Bands never fail; Wait only joins them.
		eg.Wait()
	}

	if err := g.Replace(next); err != nil {
		panic(err)
	}
}

func bandCount(height, workers int) int {
	bands := height / minBandRows
	if bands > workers {
		bands = workers
	}
	if bands < 1 {
		bands = 1
	}
	return bands
}

var defaultEngine = NewEngine(Conway, 0)

// Advance moves g forward one generation under Conway's rule.
func Advance(g *core.Grid) { defaultEngine.Advance(g) }
