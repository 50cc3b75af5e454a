package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"tile-life/internal/core"
	"tile-life/internal/sims/life"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type scenario struct {
	rule life.Rule
	seed int64
}

type scenarioResult struct {
	scenario
	finalPopulation int
	peakPopulation  int
	settledAt       int
	period          int
	extinct         bool
}

func (r scenarioResult) outcome() string {
	switch {
	case r.extinct:
		return fmt.Sprintf("extinct at %d", r.settledAt)
	case r.period == 1:
		return fmt.Sprintf("still at %d", r.settledAt)
	case r.period > 1:
		return fmt.Sprintf("period %d at %d", r.period, r.settledAt)
	default:
		return "active"
	}
}

// historyDepth bounds the oscillation periods the sweep can detect.
const historyDepth = 4

func main() {
	steps := flag.Int("steps", 300, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seeds := flag.Int("seeds", 4, "seeds evaluated per rule")
	top := flag.Int("top", 10, "results to print")
	var overrides kvList
	flag.Var(&overrides, "set", "base option in key=value form (repeatable)")
	flag.Parse()

	opts := map[string]string{"w": "96", "h": "96"}
	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			log.Fatalf("override %q: want key=value", kv)
		}
		opts[key] = value
	}
	base := life.FromMap(opts)
	// Scenarios already run in parallel.
	base.Workers = 1

	*workers = workerCount(*workers)
	boardSeeds := scenarioSeeds(base.Seed, *seeds)

	var sets []scenario
	for lo := 1; lo <= 4; lo++ {
		for hi := lo; hi <= 5; hi++ {
			for birth := 2; birth <= 4; birth++ {
				for _, seed := range boardSeeds {
					sets = append(sets, scenario{
						rule: life.Rule{SurviveMin: lo, SurviveMax: hi, Birth: birth},
						seed: seed,
					})
				}
			}
		}
	}

	fmt.Printf("Sweeping %d scenarios on %dx%d (%d workers, %d steps)\n", len(sets), base.Width, base.Height, *workers, *steps)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				res, err := runScenario(base, sc, *steps)
				if err != nil {
					log.Printf("scenario %s seed %d: %v", sc.rule, sc.seed, err)
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].finalPopulation != all[j].finalPopulation {
			return all[i].finalPopulation > all[j].finalPopulation
		}
		return all[i].rule.String() < all[j].rule.String()
	})

	fmt.Printf("\nTop %d results (elapsed %s):\n", *top, time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		fmt.Printf("%2d) %-10s seed=%d final=%d peak=%d %s\n",
			i+1, res.rule, res.seed, res.finalPopulation, res.peakPopulation, res.outcome())
	}

	extinct := 0
	for _, res := range all {
		if res.extinct {
			extinct++
		}
	}
	fmt.Printf("\n%d/%d scenarios died out\n", extinct, len(all))
}

func workerCount(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// scenarioSeeds derives n board seeds from base so every rule is tried on
// the same boards.
func scenarioSeeds(base int64, n int) []int64 {
	rng := core.NewRNG(base)
	seeds := make([]int64, max(n, 0))
	for i := range seeds {
		seeds[i] = rng.Seed()
	}
	return seeds
}

// runScenario advances one seeded board, stopping early once it dies out or
// repeats one of the last few generations.
func runScenario(base life.Config, sc scenario, steps int) (scenarioResult, error) {
	cfg := base
	cfg.Rule = sc.rule
	sim, err := life.NewWithConfig(cfg)
	if err != nil {
		return scenarioResult{}, err
	}
	sim.Reset(sc.seed)

	res := scenarioResult{scenario: sc}
	grid := sim.Grid()
	history := []*core.Buffer{grid.Snapshot()}
	res.peakPopulation = grid.Population()

	for step := 1; step <= steps; step++ {
		sim.Step()
		cur := grid.Snapshot()
		pop := cur.Population()
		if pop > res.peakPopulation {
			res.peakPopulation = pop
		}
		if pop == 0 {
			res.extinct = true
			res.settledAt = step
			break
		}
		if p := repeatPeriod(history, cur); p > 0 {
			res.period = p
			res.settledAt = step
			break
		}
		history = append(history, cur)
		if len(history) > historyDepth {
			history = history[1:]
		}
	}
	res.finalPopulation = grid.Population()
	return res, nil
}

// repeatPeriod returns how many generations back cur last appeared in
// history, or 0.
func repeatPeriod(history []*core.Buffer, cur *core.Buffer) int {
	for back := 1; back <= len(history); back++ {
		if history[len(history)-back].Equal(cur) {
			return back
		}
	}
	return 0
}
