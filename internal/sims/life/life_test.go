package life

import (
	"errors"
	"testing"

	"tile-life/internal/core"
)

type recordingSink struct {
	generations []int
	populations []int
	sim         *Life
}

func (r *recordingSink) OnGenerationReady(g *core.Grid) {
	r.generations = append(r.generations, r.sim.Generation())
	r.populations = append(r.populations, g.Population())
}

func TestBlinkerOscillation(t *testing.T) {
	life, err := New(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	life.Seed(core.Pattern([2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3}))

	life.Step()

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := life.Grid().Get(x, y)
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	life.Step()

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := life.Grid().Get(x, y)
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
	if got := life.Generation(); got != 2 {
		t.Fatalf("Generation() = %d, want 2", got)
	}
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	if _, err := New(0, 10); !errors.Is(err, core.ErrInvalidDimension) {
		t.Fatalf("expected ErrInvalidDimension, got %v", err)
	}
	cfg := DefaultConfig()
	cfg.Rule.Birth = 12
	if _, err := NewWithConfig(cfg); !errors.Is(err, ErrInvalidRule) {
		t.Fatalf("expected ErrInvalidRule, got %v", err)
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 24
	cfg.Seed = 99

	life, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	life.Reset(0)
	initial := life.Grid().Snapshot()
	if initial.Population() == 0 {
		t.Fatal("reset with default spawn probability produced an empty board")
	}

	life.Step()
	life.Reset(0)
	if !life.Grid().Snapshot().Equal(initial) {
		t.Fatal("Reset with config seed not deterministic")
	}
	if life.Generation() != 0 {
		t.Fatal("Reset must restart the generation count")
	}

	life.Reset(777)
	if life.Grid().Snapshot().Equal(initial) {
		t.Fatal("different seeds should produce different boards")
	}
}

func TestStepNotifiesSinks(t *testing.T) {
	life, err := New(6, 6)
	if err != nil {
		t.Fatal(err)
	}
	sink := &recordingSink{sim: life}
	life.AddSink(sink)
	life.AddSink(nil)

	life.Seed(core.Pattern([2]int{2, 2}, [2]int{3, 2}, [2]int{2, 3}, [2]int{3, 3}))
	life.Step()
	life.Step()

	wantGens := []int{0, 1, 2}
	if len(sink.generations) != len(wantGens) {
		t.Fatalf("sink called %d times, want %d", len(sink.generations), len(wantGens))
	}
	for i, g := range wantGens {
		if sink.generations[i] != g {
			t.Fatalf("notification %d for generation %d, want %d", i, sink.generations[i], g)
		}
		if sink.populations[i] != 4 {
			t.Fatalf("notification %d saw population %d, want 4", i, sink.populations[i])
		}
	}
}

func TestSetIntParameterChangesRule(t *testing.T) {
	life, err := New(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	if !life.SetIntParameter("birth", 1) {
		t.Fatal("expected birth to be adjustable")
	}
	if got := life.Rule(); got != (Rule{SurviveMin: 2, SurviveMax: 3, Birth: 1}) {
		t.Fatalf("rule = %+v", got)
	}
	if life.SetIntParameter("birth", 9) {
		t.Fatal("birth above 8 must be rejected")
	}
	if life.SetIntParameter("unknown", 1) {
		t.Fatal("unknown key must be rejected")
	}

	// B1 grows a lone cell into its full neighbourhood.
	life.Seed(core.Pattern([2]int{4, 4}))
	life.Step()
	if got := life.Grid().Population(); got != 8 {
		t.Fatalf("population after B1 step = %d, want 8", got)
	}
}

func TestSetFloatParameterClampsSpawnProbability(t *testing.T) {
	life, err := New(16, 16)
	if err != nil {
		t.Fatal(err)
	}
	if !life.SetFloatParameter("spawn_probability", 1.7) {
		t.Fatal("expected spawn probability to be adjustable")
	}
	life.Reset(5)
	if got := life.Grid().Population(); got != 16*16 {
		t.Fatalf("probability clamped to 1 should fill the board, got %d", got)
	}
	if life.SetFloatParameter("birth", 1) {
		t.Fatal("float setter must reject non-float keys")
	}
}

func TestParametersSnapshot(t *testing.T) {
	life, err := New(10, 12)
	if err != nil {
		t.Fatal(err)
	}
	life.Seed(core.Pattern([2]int{1, 1}, [2]int{2, 2}))

	snap := life.Parameters()
	checks := map[string]string{
		"w":           "10",
		"h":           "12",
		"survive_min": "2",
		"survive_max": "3",
		"birth":       "3",
		"population":  "2",
		"generation":  "0",
	}
	for key, want := range checks {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("parameter %q missing", key)
		}
		if p.Value != want {
			t.Fatalf("parameter %q = %q, want %q", key, p.Value, want)
		}
	}

	for _, ctrl := range life.ParameterControls() {
		if _, ok := snap.Lookup(ctrl.Key); !ok {
			t.Fatalf("control %q has no reported value", ctrl.Key)
		}
	}
}

func TestRegisteredFactory(t *testing.T) {
	factory, ok := core.Sims()["life"]
	if !ok {
		t.Fatal("life sim not registered")
	}
	sim, err := factory(map[string]string{"w": "20", "h": "10", "birth": "2"})
	if err != nil {
		t.Fatal(err)
	}
	if got := sim.Size(); got != (core.Size{W: 20, H: 10}) {
		t.Fatalf("Size() = %+v", got)
	}
	if got := sim.(*Life).Rule().Birth; got != 2 {
		t.Fatalf("birth = %d, want 2", got)
	}
}
