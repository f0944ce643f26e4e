// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"

	"github.com/cpmech/gopsi/assembly"
	"github.com/cpmech/gopsi/cluster"
	"github.com/cpmech/gopsi/event"
	"github.com/cpmech/gopsi/flux"
	"github.com/cpmech/gopsi/reaction"
	"github.com/cpmech/gopsi/temperature"
	"github.com/cpmech/gopsi/trapmutation"
	"github.com/cpmech/gopsi/trapmutation/material"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// GridConfig is the 1-D depth grid and initial surface position (§3).
type GridConfig struct {
	X          []float64 `json:"x"`
	SurfacePos int       `json:"surfacePos"`
}

// TemperatureConfig names a registered temperature.Model and its
// construction parameters, the same {"type","prms"} shape as
// inp.FuncData describes a gosl/fun function (§4.F).
type TemperatureConfig struct {
	Kind  string     `json:"kind"`            // "constant" | "ramped" | "heat-equation"
	Value float64    `json:"value,omitempty"` // constant
	Func  string     `json:"func,omitempty"`  // ramped: gosl/fun type name, e.g. "rmp"
	Prms  dbf.Params `json:"prms,omitempty"`  // ramped: fun.New parameters; heat-equation: rho/cp/k
}

// FluxConfig names one incident-particle source (§4.E).
type FluxConfig struct {
	TargetSpecies string  `json:"targetSpecies"`
	TargetCount   int     `json:"targetCount"`
	PeakAmplitude float64 `json:"peakAmplitude"`
	DecayLength   float64 `json:"decayLength"`
}

// EventConfig parameterizes the surface/bursting controller (§4.H).
type EventConfig struct {
	RhoMaterial     float64 `json:"rhoMaterial"`
	VInit           float64 `json:"vInit"`
	LatticeConstant float64 `json:"latticeConstant"`
	FluxAmplitude   float64 `json:"fluxAmplitude"`
	Tau             float64 `json:"tau"`             // depth scale in the bursting-probability falloff, not a time step
	SputteringYield float64 `json:"sputteringYield"` // fraction of incident flux sputtered away each step
}

// LoopConfig is the outer driving loop's own cadence: how far the
// integrator advances between two consecutive event-controller checks
// (§4.G "the top-level driving loop", §4.H "interleaved with
// continuous time integration"), distinct from EventConfig.Tau which
// is a bursting depth scale.
type LoopConfig struct {
	FinalTime float64 `json:"finalTime"`
	TimeStep  float64 `json:"timeStep"`
}

// Options mirrors the CLI switches of §6 as JSON-settable defaults;
// cmd/gopsi overrides these from actual command-line flags via
// gosl/io.ArgTo* the same way the teacher's main.go does.
type Options struct {
	CheckNegative float64 `json:"checkNegative"`
	CheckCollapse float64 `json:"checkCollapse"`

	Plot1D     bool `json:"plot1D"`
	PlotSeries bool `json:"plotSeries"`
	Plot2D     bool `json:"plot2D"`
	PlotPerf   bool `json:"plotPerf"`

	HeliumRetention bool `json:"heliumRetention"`
	XenonRetention  bool `json:"xenonRetention"`

	StartStop float64 `json:"startStop"` // checkpoint stride, seconds

	MaxClusterConc bool `json:"maxClusterConc"`

	HeliumCumul bool `json:"heliumCumul"`
	HeliumConc  bool `json:"heliumConc"`
	MeanSize    bool `json:"meanSize"`

	TempProfile bool `json:"tempProfile"`

	Tridyn bool `json:"tridyn"`
	Alloy  bool `json:"alloy"`
}

// DefaultOptions returns the switch defaults §6 documents explicitly
// ("default 1e-30", "default 1.0"); every other switch defaults off.
func DefaultOptions() Options {
	return Options{CheckNegative: 1e-30, StartStop: 1.0}
}

// Config is the top-level simulation options file: grid, material,
// temperature model, flux sources, event-controller thresholds,
// checkpoint output directory, and CLI-exposed switches.
type Config struct {
	Grid          GridConfig        `json:"grid"`
	NetworkFile   string            `json:"networkFile"`
	Material      string            `json:"material"` // trapmutation/material name, "" disables trap-mutation
	Temperature   TemperatureConfig `json:"temperature"`
	Fluxes        []FluxConfig      `json:"fluxes,omitempty"`
	Event         EventConfig       `json:"event"`
	Loop          LoopConfig        `json:"loop"`
	CheckpointDir string            `json:"checkpointDir"`
	RestartStep   int               `json:"restartStep,omitempty"` // >0 resumes from this checkpoint step instead of a fresh state
	Options       Options           `json:"options"`
}

// ReadConfig reads and unmarshals a simulation options file, defaulting
// Options before unmarshalling so a file that omits "options" entirely
// still gets §6's documented defaults, then validates the fields that
// downstream construction depends on (§7 "configuration error ...
// fail-fast at initialization").
func ReadConfig(path string) (*Config, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("inp: cannot read config %q: %v", path, err)
	}
	cfg := &Config{Options: DefaultOptions()}
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, chk.Err("inp: cannot parse config %q: %v", path, err)
	}
	if len(cfg.Grid.X) < 2 {
		return nil, chk.Err("inp: config %q grid must have at least two points", path)
	}
	if cfg.Temperature.Kind == "" {
		return nil, chk.Err("inp: config %q must name a temperature.kind", path)
	}
	return cfg, nil
}

// BuildTemperature instantiates the configured temperature.Model,
// following the same New(name)+configure two-step every factory in
// this codebase (trapmutation/material.New, temperature.New itself)
// uses.
func (c *Config) BuildTemperature() (temperature.Model, error) {
	model, err := temperature.New(c.Temperature.Kind)
	if err != nil {
		return nil, chk.Err("inp: config temperature: %v", err)
	}
	switch m := model.(type) {
	case *temperature.Constant:
		m.Value = c.Temperature.Value
	case *temperature.Ramped:
		if err := m.SetProfile(c.Temperature.Func, c.Temperature.Prms); err != nil {
			return nil, chk.Err("inp: config temperature: %v", err)
		}
	case *temperature.HeatEquation:
		if err := m.Init(c.Temperature.Prms); err != nil {
			return nil, chk.Err("inp: config temperature: %v", err)
		}
		m.SetInitial(c.Grid.X, c.Temperature.Value)
	}
	return model, nil
}

// BuildTrap instantiates the configured trap-mutation operator, or
// returns a nil Trapper when Material is empty (§4.D materials are
// optional per network).
func (c *Config) BuildTrap(net *reaction.Network) (assembly.Trapper, error) {
	if c.Material == "" {
		return nil, nil
	}
	model, err := material.New(c.Material)
	if err != nil {
		return nil, chk.Err("inp: config material: %v", err)
	}
	op, err := trapmutation.New(net, model)
	if err != nil {
		return nil, chk.Err("inp: config material: %v", err)
	}
	return op, nil
}

// BuildFluxes resolves every configured flux source against cat and
// precomputes its depth profile over x with the surface at
// surfacePos, the two-step New+Precompute shape flux.Operator exposes.
func (c *Config) BuildFluxes(cat *cluster.Catalogue, x []float64, surfacePos int) ([]*flux.Operator, error) {
	out := make([]*flux.Operator, 0, len(c.Fluxes))
	for _, fc := range c.Fluxes {
		sp, ok := cluster.SpeciesByName(fc.TargetSpecies)
		if !ok {
			return nil, chk.Err("inp: flux target names unknown species %q", fc.TargetSpecies)
		}
		target := cat.Get(sp, fc.TargetCount)
		if target == nil {
			return nil, chk.Err("inp: flux target %s%d is not in the network", fc.TargetSpecies, fc.TargetCount)
		}
		op := flux.New(target.ID, nil)
		op.Precompute(x, surfacePos, fc.PeakAmplitude, fc.DecayLength)
		out = append(out, op)
	}
	return out, nil
}

// BuildEventConfig converts EventConfig into the event package's own
// Config, keeping the JSON-facing and package-facing types distinct so
// event stays ignorant of how it is configured on disk.
func (c *Config) BuildEventConfig() event.Config {
	return event.Config{
		RhoMaterial:     c.Event.RhoMaterial,
		VInit:           c.Event.VInit,
		LatticeConstant: c.Event.LatticeConstant,
		FluxAmplitude:   c.Event.FluxAmplitude,
		Tau:             c.Event.Tau,
		SputteringYield: c.Event.SputteringYield,
	}
}
