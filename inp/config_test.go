// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gopsi/cluster"
	"github.com/cpmech/gopsi/temperature"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

func Test_default_options_match_documented_defaults(tst *testing.T) {

	chk.PrintTitle("default_options_match_documented_defaults")

	opts := DefaultOptions()
	chk.Float64(tst, "checkNegative default", 1e-30, opts.CheckNegative, 1e-30)
	chk.Float64(tst, "startStop default", 1e-15, opts.StartStop, 1.0)
	if opts.Plot1D || opts.Tridyn || opts.HeliumRetention {
		tst.Fatalf("expected every boolean switch to default off")
	}
}

func Test_build_temperature_constant(tst *testing.T) {

	chk.PrintTitle("build_temperature_constant")

	cfg := &Config{Temperature: TemperatureConfig{Kind: "constant", Value: 950}}
	model, err := cfg.BuildTemperature()
	if err != nil {
		tst.Fatalf("BuildTemperature failed: %v", err)
	}
	if model.T(0, 0) != 950 {
		tst.Fatalf("expected T=950, got %g", model.T(0, 0))
	}
}

func Test_build_temperature_heat_equation_holds_initial_value(tst *testing.T) {

	chk.PrintTitle("build_temperature_heat_equation_holds_initial_value")

	cfg := &Config{
		Grid:        GridConfig{X: []float64{0, 1, 2, 3}},
		Temperature: TemperatureConfig{Kind: "heat-equation", Value: 500},
	}
	// heat-equation is the only variant carrying its own rho/cp/k
	// parameters, connected via dbf.Params, mirroring
	// mdl/diffusion.M1.Init's prms.Connect idiom.
	cfg.Temperature.Prms = dbf.Params{
		&dbf.P{N: "rho", V: 1.0},
		&dbf.P{N: "cp", V: 1.0},
		&dbf.P{N: "k", V: 0.5},
	}

	model, err := cfg.BuildTemperature()
	if err != nil {
		tst.Fatalf("BuildTemperature failed: %v", err)
	}
	if model.T(0, 0) != 500 {
		tst.Fatalf("expected initial field value 500, got %g", model.T(0, 0))
	}
	if _, ok := model.(temperature.Diffusive); !ok {
		tst.Fatalf("expected heat-equation model to satisfy temperature.Diffusive")
	}
}

func Test_build_trap_returns_nil_when_material_unset(tst *testing.T) {

	chk.PrintTitle("build_trap_returns_nil_when_material_unset")

	cfg := &Config{}
	trap, err := cfg.BuildTrap(nil)
	if err != nil || trap != nil {
		tst.Fatalf("expected a nil Trapper and no error, got %v, %v", trap, err)
	}
}

func Test_build_fluxes_rejects_missing_target(tst *testing.T) {

	chk.PrintTitle("build_fluxes_rejects_missing_target")

	cat, err := cluster.New([]*cluster.Cluster{
		{ID: 0, Kind: cluster.Regular, Composition: cluster.Composition{cluster.He: 1}},
	})
	if err != nil {
		tst.Fatalf("cluster.New failed: %v", err)
	}
	cfg := &Config{Fluxes: []FluxConfig{{TargetSpecies: "He", TargetCount: 9}}}
	if _, err := cfg.BuildFluxes(cat, []float64{0, 1, 2}, 0); err == nil {
		tst.Fatalf("expected an error for a flux target absent from the network")
	}
}

func Test_build_event_config_copies_fields(tst *testing.T) {

	chk.PrintTitle("build_event_config_copies_fields")

	cfg := &Config{Event: EventConfig{RhoMaterial: 0.06, VInit: 0.01, LatticeConstant: 0.316, FluxAmplitude: 1e20, Tau: 2.0}}
	ec := cfg.BuildEventConfig()
	if ec.RhoMaterial != 0.06 || ec.Tau != 2.0 {
		tst.Fatalf("unexpected event config: %+v", ec)
	}
}
