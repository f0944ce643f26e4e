// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gopsi/assembly"
	"github.com/cpmech/gopsi/checkpoint"
	"github.com/cpmech/gopsi/event"
	"github.com/cpmech/gopsi/inp"
	"github.com/cpmech/gopsi/temperature"
	"github.com/cpmech/gopsi/transport"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
)

// run wires config+network into a Domain and Solver and drives the
// time loop, checking the event controller and writing checkpoints on
// the configured stride (§4.G, §4.H, §4.I, §6).
func run(configPath, networkPath string, verbose bool, sw switches) error {

	cfg, err := inp.ReadConfig(configPath)
	if err != nil {
		return err
	}
	sw.applyTo(&cfg.Options)

	nf, err := inp.ReadNetworkFile(networkPath)
	if err != nil {
		return err
	}
	net, err := nf.Build(len(cfg.Grid.X))
	if err != nil {
		return err
	}
	adv, err := nf.BuildAdvection(net.Cat)
	if err != nil {
		return err
	}
	diff := transport.NewDiffusion(net.Cat)

	temp, err := cfg.BuildTemperature()
	if err != nil {
		return err
	}

	dom, err := assembly.NewDomain(cfg.Grid.X, cfg.Grid.SurfacePos, net, diff, adv, temp)
	if err != nil {
		return err
	}
	dom.Trap, err = cfg.BuildTrap(net)
	if err != nil {
		return err
	}
	dom.Fluxes, err = cfg.BuildFluxes(net.Cat, cfg.Grid.X, cfg.Grid.SurfacePos)
	if err != nil {
		return err
	}

	store, err := checkpoint.NewStore(cfg.CheckpointDir)
	if err != nil {
		return err
	}

	evCfg := cfg.BuildEventConfig()

	Y := dom.InitializeConcentration(evCfg.VInit)
	st := event.State{SurfacePos: cfg.Grid.SurfacePos}
	step := 0
	t := 0.0

	// cfg.RestartStep > 0 asks the driver to resume from a previously
	// written checkpoint instead of a fresh initial state (§4.G
	// "initializeConcentration ... optionally overwrites from a
	// checkpoint group"). The header must be read (and checked against
	// the current network/grid) before rank 0 overwrites it below.
	if cfg.RestartStep > 0 {
		x, matches, err := store.ReadHeader(net.Cat)
		if err != nil {
			return chk.Err("gopsi: restart: %v", err)
		}
		if !matches || len(x) != len(cfg.Grid.X) {
			return chk.Err("gopsi: restart: checkpoint header does not match the configured network/grid")
		}
		g, err := store.ReadTimestep(cfg.RestartStep)
		if err != nil {
			return chk.Err("gopsi: restart: %v", err)
		}
		Y = checkpoint.Scatter(g.Concentrations, net.Cat.Size())
		st = event.State{
			SurfacePos:    g.Counters.SurfacePos,
			NInterstitial: g.Counters.NInterstitial, PreviousIFlux: g.Counters.PreviousIFlux,
			NHelium: g.Counters.NHelium, PreviousHeFlux: g.Counters.PreviousHeFlux,
			NDeuterium: g.Counters.NDeuterium, PreviousDFlux: g.Counters.PreviousDFlux,
			NTritium: g.Counters.NTritium, PreviousTFlux: g.Counters.PreviousTFlux,
		}
		dom.SurfacePos = st.SurfacePos
		step = g.Step
		t = g.Time
	}

	if mpi.Rank() == 0 {
		if err := store.WriteHeader(cfg.Grid.X, net.Cat); err != nil {
			return err
		}
	}

	solver, err := assembly.NewSolver("Radau5", dom)
	if err != nil {
		return err
	}

	tau := cfg.Loop.TimeStep
	if tau <= 0 {
		tau = 1.0
	}
	tFinal := cfg.Loop.FinalTime
	if tFinal <= 0 {
		tFinal = tau
	}

	checkpointEvery := 1
	if cfg.Options.StartStop > 0 {
		checkpointEvery = int(cfg.Options.StartStop/tau + 0.5)
		if checkpointEvery < 1 {
			checkpointEvery = 1
		}
	}

	mon := newMonitor(cfg.Options, cfg.CheckpointDir)

	for !st.Terminated && t < tFinal {

		summary, err := solver.Run(Y, t, t+tau, tau)
		if err != nil {
			return err
		}
		clampNegligible(Y, cfg.Options.CheckNegative)

		dx := gridSpacing(cfg.Grid.X, st.SurfacePos)
		hL, hR := neighborSpacing(cfg.Grid.X, st.SurfacePos+1)
		conc := extractSurfaceConcentration(dom, Y, st.SurfacePos+1)
		st = event.UpdateFluxAndBroadcast(st, evCfg, net.Cat, conc, hL, hR, tau, mpi.Rank() == 0)

		sswitch := event.DetectSurfaceMovement(st, evCfg, dx)
		advanceFired := sswitch.Advance <= 0
		retreatFired := sswitch.Retreat <= 0
		st = event.ApplySurfaceMovement(st, evCfg, dx, advanceFired, retreatFired)
		dom.SurfacePos = st.SurfacePos

		if td, ok := temp.(temperature.Diffusive); ok {
			td.Advance(cfg.Grid.X, tau)
		}

		step++
		t += tau

		if mpi.Rank() == 0 {
			mon.sample(t, net.Cat, dom, Y, summary)
			if step%checkpointEvery == 0 {
				if err := writeCheckpoint(store, step, t, tau, st, Y, net.Cat.Size(), summary); err != nil {
					return err
				}
			}
		}

		if verbose && mpi.Rank() == 0 {
			io.Pf("step %d: t=%g rhsEvals=%d surfacePos=%d\n", step, t, summary.RhsEvals, st.SurfacePos)
		}
	}

	if mpi.Rank() == 0 {
		mon.save()
	}
	return nil
}

// clampNegligible implements the numerical guard of §7: concentrations
// whose magnitude is below thr are clamped to ±thr rather than left to
// underflow toward a sign-inconsistent near-zero value.
func clampNegligible(Y []float64, thr float64) {
	if thr <= 0 {
		return
	}
	for i, v := range Y {
		if v >= 0 && v < thr {
			Y[i] = thr
		} else if v < 0 && v > -thr {
			Y[i] = -thr
		}
	}
}

func gridSpacing(x []float64, surfacePos int) float64 {
	if surfacePos+1 < len(x) {
		return x[surfacePos+1] - x[surfacePos]
	}
	if surfacePos > 0 {
		return x[surfacePos] - x[surfacePos-1]
	}
	return 1
}

func neighborSpacing(x []float64, xi int) (hL, hR float64) {
	if xi <= 0 || xi >= len(x)-1 {
		return 1, 1
	}
	return x[xi] - x[xi-1], x[xi+1] - x[xi]
}

func extractSurfaceConcentration(dom *assembly.Domain, Y []float64, xi int) []float64 {
	if xi < 0 || xi >= dom.Mx() {
		return make([]float64, dom.NSpecies)
	}
	start := dom.Index(xi, 0)
	return Y[start : start+dom.NSpecies]
}

func writeCheckpoint(store *checkpoint.Store, step int, t, dt float64, st event.State, Y []float64, nSpecies int, summary assembly.Summary) error {
	mx := len(Y) / nSpecies
	g := checkpoint.TimestepGroup{
		Step:     step,
		Time:     t,
		Dt:       dt,
		WallTime: summary.Walltime.Seconds(),
		Counters: checkpoint.Counters{
			NInterstitial:  st.NInterstitial,
			PreviousIFlux:  st.PreviousIFlux,
			NHelium:        st.NHelium,
			PreviousHeFlux: st.PreviousHeFlux,
			NDeuterium:     st.NDeuterium,
			PreviousDFlux:  st.PreviousDFlux,
			NTritium:       st.NTritium,
			PreviousTFlux:  st.PreviousTFlux,
			SurfacePos:     st.SurfacePos,
		},
		Concentrations: checkpoint.BuildConcentrations(Y, mx, nSpecies),
	}
	if err := store.WriteTimestep(g); err != nil {
		return chk.Err("gopsi: checkpoint write failed: %v", err)
	}
	return nil
}
