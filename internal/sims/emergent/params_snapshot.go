package emergent

import (
	"math"
	"strconv"

	"emergent-ca/internal/core"
)

// Parameters reports the fixed rule constants alongside live run readings.
func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", w.grid.W),
				intParam("h", "Height", w.grid.H),
				intParam("channels", "Channels", NumChannels),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				floatParam("decay_rate", "Decay rate", DecayRate),
				floatParam("inertia", "Inertia", Inertia),
				floatParam("flatline_threshold", "Flatline threshold", FlatlineThreshold),
				floatParam("noise_sigma", "Noise sigma", NoiseSigma),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("tick", "Tick", w.steps),
				intParam("ticks", "Ticks", w.cfg.Ticks),
				boolParam("loop", "Loop", w.cfg.Loop),
				floatParam("mean_structure", "Mean structure", round4(w.grid.Mean(ChannelStructure))),
				floatParam("mean_memory", "Mean memory", round4(w.grid.Mean(ChannelMemory))),
				intParam("perturbations", "Perturbations", w.perturbations),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
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

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
