package life

import (
	"tile-life/internal/core"
)

// Life implements a life-like automaton on a bounded, non-wrapping grid.
type Life struct {
	cfg    Config
	engine *Engine
	grid   *core.Grid
	gen    int
	sinks  []core.GenerationSink
}

// New returns a Conway simulation with the provided dimensions.
func New(w, h int) (*Life, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a simulation configured from cfg. The grid starts
// all dead until Reset seeds it.
func NewWithConfig(cfg Config) (*Life, error) {
	if err := cfg.Rule.Validate(); err != nil {
		return nil, err
	}
	grid, err := core.NewGrid(cfg.Width, cfg.Height, nil)
	if err != nil {
		return nil, err
	}
	return &Life{
		cfg:    cfg,
		engine: NewEngine(cfg.Rule, cfg.Workers),
		grid:   grid,
	}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.grid.Size() }

// Grid exposes the current generation.
func (l *Life) Grid() *core.Grid { return l.grid }

// Generation counts steps since the last Reset.
func (l *Life) Generation() int { return l.gen }

// Rule reports the active rule.
func (l *Life) Rule() Rule { return l.engine.Rule }

// AddSink registers s to be notified after every new generation.
func (l *Life) AddSink(s core.GenerationSink) {
	if s == nil {
		return
	}
	l.sinks = append(l.sinks, s)
}

// Reset reseeds the board using SpawnProbability. A zero seed falls back to
// the configured seed.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.cfg.Seed
	}
	l.Seed(core.Probability(l.cfg.SpawnProbability, seed))
}

// Seed replaces the board with cells chosen by fn and restarts the
// generation count.
func (l *Life) Seed(fn core.SeedFunc) {
	size := l.grid.Size()
	fresh, err := core.NewGrid(size.W, size.H, fn)
	if err != nil {
		panic(err)
	}
	if err := l.grid.Replace(fresh.Snapshot()); err != nil {
		panic(err)
	}
	l.gen = 0
	l.notify()
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.engine.Advance(l.grid)
	l.gen++
	l.notify()
}

func (l *Life) notify() {
	for _, s := range l.sinks {
		s.OnGenerationReady(l.grid)
	}
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
}
