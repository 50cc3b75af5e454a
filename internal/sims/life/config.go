package life

import "strconv"

// Config controls the Life simulation.
type Config struct {
	Width  int
	Height int

	Seed int64
	// SpawnProbability is the chance that a cell starts alive on Reset.
	SpawnProbability float64

	Rule    Rule
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:            256,
		Height:           256,
		Seed:             42,
		SpawnProbability: 0.3,
		Rule:             Conway,
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["spawn_probability"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.SpawnProbability = parsed
		}
	}
	if v, ok := cfg["survive_min"]; ok {
		if parsed, ok := neighborCountValue(v); ok {
			c.Rule.SurviveMin = parsed
		}
	}
	if v, ok := cfg["survive_max"]; ok {
		if parsed, ok := neighborCountValue(v); ok {
			c.Rule.SurviveMax = parsed
		}
	}
	if v, ok := cfg["birth"]; ok {
		if parsed, ok := neighborCountValue(v); ok {
			c.Rule.Birth = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	return c
}

func neighborCountValue(v string) (int, bool) {
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed < 0 || parsed > len(mooreOffsets) {
		return 0, false
	}
	return parsed, true
}
