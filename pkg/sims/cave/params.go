package cave

import (
	"strconv"

	"cavegen/pkg/core"
)

// Parameters exposes the current configuration for display.
func (a *Automaton) Parameters() core.ParameterSnapshot {
	c := a.cfg
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", c.Width),
				intParam("h", "Height", c.Height),
				int64Param("seed", "Seed", c.Seed),
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				intParam("survive_above", "Survive above", c.Rule.SurviveAbove),
				intParam("birth_above", "Birth above", c.Rule.BirthAbove),
			},
		},
	}
	fill := core.ParameterGroup{
		Name:   "Fill",
		Params: []core.Parameter{stringParam("fill", "Mode", string(c.Fill))},
	}
	if c.Fill == FillNoise {
		fill.Params = append(fill.Params,
			floatParam("noise_scale", "Noise scale", c.NoiseScale),
			floatParam("noise_threshold", "Noise threshold", c.NoiseThreshold),
		)
	}
	groups = append(groups, fill)
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}
