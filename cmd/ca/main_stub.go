//go:build !ebiten

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"tile-life/internal/app"
	"tile-life/internal/core"
	_ "tile-life/internal/sims/life"
)

// The headless build runs a fixed number of generations and prints the final
// board. The GUI requires the ebiten build tag.
func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	generations := flag.Int("generations", 100, "generations to advance before printing")
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	sim, err := factory(cfg.Options)
	if err != nil {
		log.Fatalf("create %s: %v", cfg.Sim, err)
	}

	game := app.New(sim, cfg)
	game.Reset(cfg.Seed)
	for i := 0; i < *generations; i++ {
		if err := game.Update(); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Fprintln(os.Stderr, "(build with -tags ebiten for the interactive viewer)")
	if err := game.Draw(os.Stdout); err != nil {
		log.Fatal(err)
	}
}
