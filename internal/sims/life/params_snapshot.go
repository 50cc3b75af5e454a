package life

import (
	"strconv"

	"tile-life/internal/core"
)

// Parameters reports the world and rule settings.
func (l *Life) Parameters() core.ParameterSnapshot {
	rule := l.engine.Rule
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", l.cfg.Width),
				intParam("h", "Height", l.cfg.Height),
				int64Param("seed", "Seed", l.cfg.Seed),
				floatParam("spawn_probability", "Spawn probability", l.cfg.SpawnProbability),
				intParam("generation", "Generation", l.gen),
				intParam("population", "Population", l.grid.Population()),
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				intParam("survive_min", "Survive min", rule.SurviveMin),
				intParam("survive_max", "Survive max", rule.SurviveMax),
				intParam("birth", "Birth", rule.Birth),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable settings.
func (l *Life) ParameterControls() []core.ParameterControl {
	neighbors := float64(len(mooreOffsets))
	return []core.ParameterControl{
		{Key: "survive_min", Label: "Survive min", Type: core.ParamTypeInt, Step: 1, HasMin: true, HasMax: true, Max: neighbors},
		{Key: "survive_max", Label: "Survive max", Type: core.ParamTypeInt, Step: 1, HasMin: true, HasMax: true, Max: neighbors},
		{Key: "birth", Label: "Birth", Type: core.ParamTypeInt, Step: 1, HasMin: true, HasMax: true, Max: neighbors},
		{Key: "spawn_probability", Label: "Spawn probability", Type: core.ParamTypeFloat, Step: 0.05, HasMin: true, HasMax: true, Max: 1},
	}
}

// SetIntParameter updates a rule constant. The change applies from the next
// Step.
func (l *Life) SetIntParameter(key string, value int) bool {
	rule := l.engine.Rule
	switch key {
	case "survive_min":
		rule.SurviveMin = value
	case "survive_max":
		rule.SurviveMax = value
	case "birth":
		rule.Birth = value
	default:
		return false
	}
	if rule.Validate() != nil {
		return false
	}
	l.engine.Rule = rule
	l.cfg.Rule = rule
	return true
}

// SetFloatParameter updates the spawn probability used by the next Reset.
func (l *Life) SetFloatParameter(key string, value float64) bool {
	if key != "spawn_probability" {
		return false
	}
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	l.cfg.SpawnProbability = value
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
