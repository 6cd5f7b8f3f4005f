// Package main provides CMA-ES optimization for spectaculife rule constants.
package main

import (
	"github.com/pthm-cable/spectaculife/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value

	field func(*config.Config) *float64
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Producers
			{Name: "leaf_yield", Path: "leaf.yield", Min: 0.8, Max: 3.0, Default: 1.8,
				field: func(c *config.Config) *float64 { return &c.Leaf.Yield }},
			{Name: "leaf_pollution_scale", Path: "leaf.pollution_scale", Min: 1.0, Max: 10.0, Default: 4.0,
				field: func(c *config.Config) *float64 { return &c.Leaf.PollutionScale }},
			{Name: "root_energy_yield", Path: "root.energy_yield", Min: 0.1, Max: 1.0, Default: 0.4,
				field: func(c *config.Config) *float64 { return &c.Root.EnergyYield }},
			{Name: "reactor_energy_yield", Path: "reactor.energy_yield", Min: 0.2, Max: 1.2, Default: 0.6,
				field: func(c *config.Config) *float64 { return &c.Reactor.EnergyYield }},
			{Name: "filter_energy_yield", Path: "filter.energy_yield", Min: 0.1, Max: 0.8, Default: 0.3,
				field: func(c *config.Config) *float64 { return &c.Filter.EnergyYield }},
			// Upkeep
			{Name: "leaf_consumption", Path: "roles.leaf.consumption", Min: 0.05, Max: 0.6, Default: 0.2,
				field: func(c *config.Config) *float64 { return &c.Roles.Leaf.Consumption }},
			{Name: "stem_consumption", Path: "roles.stem.consumption", Min: 0.02, Max: 0.5, Default: 0.1,
				field: func(c *config.Config) *float64 { return &c.Roles.Stem.Consumption }},
			{Name: "pipe_consumption", Path: "roles.pipe.consumption", Min: 0.02, Max: 0.5, Default: 0.1,
				field: func(c *config.Config) *float64 { return &c.Roles.Pipe.Consumption }},
			// Routing and birth
			{Name: "transfer_margin", Path: "transfer.margin", Min: 0.5, Max: 3.0, Default: 1.1,
				field: func(c *config.Config) *float64 { return &c.Transfer.Margin }},
			{Name: "child_energy_fraction", Path: "birth.child_energy_fraction", Min: 0.3, Max: 1.0, Default: 0.8,
				field: func(c *config.Config) *float64 { return &c.Birth.ChildEnergyFraction }},
			{Name: "occupied_aging", Path: "birth.occupied_aging", Min: 0.0, Max: 0.5, Default: 0.1,
				field: func(c *config.Config) *float64 { return &c.Birth.OccupiedAging }},
			// Decomposition
			{Name: "kill_soil_energy_share", Path: "kill.soil_energy_share", Min: 0.0, Max: 1.0, Default: 0.5,
				field: func(c *config.Config) *float64 { return &c.Kill.SoilEnergyShare }},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig writes clamped parameter values into cfg.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)
	for i, spec := range pv.Specs {
		*spec.field(cfg) = clamped[i]
	}
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = *spec.field(cfg)
	}
	return v
}
