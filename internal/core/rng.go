package core

import "math/rand/v2"

// SeedFunc decides the initial state of the cell at (x, y). Grid construction
// may call it in any order.
type SeedFunc func(x, y int) bool

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed draws a fresh non-zero board seed. Zero is skipped because sims treat
// it as "use the configured seed".
func (r *RNG) Seed() int64 {
	for {
		if s := r.r.Int64(); s != 0 {
			return s
		}
	}
}

// Probability returns a SeedFunc marking a cell alive when p exceeds a
// uniform draw. Each coordinate has its own PCG stream derived from seed, so
// the result is independent of call order and safe for concurrent use.
func Probability(p float64, seed int64) SeedFunc {
	switch {
	case p <= 0:
		return func(int, int) bool { return false }
	case p >= 1:
		return func(int, int) bool { return true }
	}
	return func(x, y int) bool {
		stream := mix64(uint64(uint32(y))<<32 | uint64(uint32(x)))
		return p > rand.New(rand.NewPCG(uint64(seed), stream)).Float64()
	}
}

// mix64 is the splitmix64 finalizer; it spreads neighbouring coordinates
// across the PCG state.
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Pattern returns a SeedFunc with exactly the listed (x, y) cells alive.
func Pattern(alive ...[2]int) SeedFunc {
	set := make(map[[2]int]struct{}, len(alive))
	for _, c := range alive {
		set[c] = struct{}{}
	}
	return func(x, y int) bool {
		_, ok := set[[2]int{x, y}]
		return ok
	}
}
