package ising

import (
	"strconv"

	"ising/internal/core"
)

// Parameters reports the model's configuration and live observables.
func (m *Model) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Lattice",
			Params: []core.Parameter{
				intParam("w", "Width", m.lattice.W),
				intParam("h", "Height", m.lattice.H),
				int64Param("seed", "Seed", m.cfg.Seed),
				stringParam("boundary", "Boundary", m.boundary.String()),
				intParam("boundary_index", "Boundary index", int(m.boundary)),
			},
		},
		{
			Name: "Dynamics",
			Params: []core.Parameter{
				floatParam("temperature", "Temperature", m.temperature),
				floatParam("field", "Field", m.field),
				boolParam("feedback", "Field feedback", m.cfg.Feedback),
				stringParam("sampler", "Sampler", m.cfg.Sampler.String()),
				intParam("attempts", "Attempts", m.cfg.Attempts),
				intParam("batch", "Sweeps per frame", m.cfg.Batch),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				boolParam("running", "Running", m.running),
				intParam("frames", "Frames", m.frames),
				intParam("magnetization", "Magnetization", m.Magnetization()),
				floatParam("mean_magnetization", "Mean magnetization", m.MeanMagnetization()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the parameters adjustable from the HUD.
func (m *Model) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "temperature", Label: "Temperature", Type: core.ParamTypeFloat, Step: 0.1, Min: MinTemperature, HasMin: true, Max: 10, HasMax: true},
		{Key: "field", Label: "Field", Type: core.ParamTypeFloat, Step: 0.1, Min: -4, HasMin: true, Max: 4, HasMax: true},
		{Key: "boundary_index", Label: "Boundary", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true, Max: float64(Periodic), HasMax: true},
		{Key: "batch", Label: "Sweeps per frame", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true, Max: 100, HasMax: true},
	}
}

// SetFloatParameter updates temperature or field.
func (m *Model) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "temperature":
		return m.SetTemperature(value)
	case "field":
		m.SetField(value)
		return true
	}
	return false
}

// SetIntParameter updates the boundary index or the sweeps per frame.
func (m *Model) SetIntParameter(key string, value int) bool {
	switch key {
	case "boundary_index":
		if value < 0 || value > int(Periodic) {
			return false
		}
		return m.SetBoundary(Boundary(value))
	case "batch":
		if value < 1 {
			return false
		}
		m.cfg.Batch = value
		return true
	case "attempts":
		if value < 1 {
			return false
		}
		m.cfg.Attempts = value
		return true
	}
	return false
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

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
