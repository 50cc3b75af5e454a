package main

import (
	"slices"
	"testing"

	"tile-life/internal/core"
	"tile-life/internal/sims/life"
)

func smallConfig() life.Config {
	cfg := life.DefaultConfig()
	cfg.Width = 24
	cfg.Height = 24
	cfg.Workers = 1
	return cfg
}

func TestRunScenarioDetectsExtinction(t *testing.T) {
	cfg := smallConfig()
	cfg.SpawnProbability = 0
	res, err := runScenario(cfg, scenario{rule: life.Conway, seed: 1}, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !res.extinct || res.settledAt != 1 || res.finalPopulation != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestRunScenarioRejectsInvalidRule(t *testing.T) {
	_, err := runScenario(smallConfig(), scenario{rule: life.Rule{SurviveMin: 2, SurviveMax: 3, Birth: 11}}, 5)
	if err == nil {
		t.Fatal("expected invalid rule error")
	}
}

func TestRepeatPeriod(t *testing.T) {
	blinker := func(vertical bool) *core.Buffer {
		b := core.NewBuffer(5, 5)
		for i := 1; i <= 3; i++ {
			if vertical {
				b.Set(2, i, true)
			} else {
				b.Set(i, 2, true)
			}
		}
		return b
	}
	a, b := blinker(true), blinker(false)
	if got := repeatPeriod([]*core.Buffer{a, b}, a.Clone()); got != 2 {
		t.Fatalf("repeatPeriod = %d, want 2", got)
	}
	if got := repeatPeriod([]*core.Buffer{a}, a.Clone()); got != 1 {
		t.Fatalf("repeatPeriod = %d, want 1", got)
	}
	if got := repeatPeriod([]*core.Buffer{a}, b); got != 0 {
		t.Fatalf("repeatPeriod = %d, want 0", got)
	}
}

func TestScenarioOutcome(t *testing.T) {
	cases := []struct {
		res  scenarioResult
		want string
	}{
		{scenarioResult{extinct: true, settledAt: 3}, "extinct at 3"},
		{scenarioResult{period: 1, settledAt: 9}, "still at 9"},
		{scenarioResult{period: 2, settledAt: 4}, "period 2 at 4"},
		{scenarioResult{}, "active"},
	}
	for _, tc := range cases {
		if got := tc.res.outcome(); got != tc.want {
			t.Fatalf("outcome() = %q, want %q", got, tc.want)
		}
	}
}

func TestWorkerCountClampsToOne(t *testing.T) {
	cases := []struct{ in, want int }{{-3, 1}, {0, 1}, {1, 1}, {12, 12}}
	for _, tc := range cases {
		if got := workerCount(tc.in); got != tc.want {
			t.Fatalf("workerCount(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestScenarioSeeds(t *testing.T) {
	a := scenarioSeeds(42, 5)
	b := scenarioSeeds(42, 5)
	if len(a) != 5 || !slices.Equal(a, b) {
		t.Fatalf("seeds not deterministic: %v vs %v", a, b)
	}
	seen := map[int64]bool{}
	for _, s := range a {
		if s == 0 {
			t.Fatal("zero seed would fall back to the configured seed")
		}
		seen[s] = true
	}
	if len(seen) != len(a) {
		t.Fatalf("duplicate seeds in %v", a)
	}
	if slices.Equal(a, scenarioSeeds(43, 5)) {
		t.Fatal("different base seeds should give different boards")
	}
	if got := scenarioSeeds(1, -2); len(got) != 0 {
		t.Fatalf("negative count produced %v", got)
	}
}
