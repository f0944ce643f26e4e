// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package checkpoint

import (
	"testing"

	"github.com/cpmech/gopsi/cluster"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

func Test_build_and_scatter_concentrations_round_trip(tst *testing.T) {

	chk.PrintTitle("build_and_scatter_concentrations_round_trip")

	nSpecies := 3
	mx := 4
	Y := make([]float64, mx*nSpecies)
	Y[1*nSpecies+0] = 5.0
	Y[1*nSpecies+2] = 7.0
	Y[3*nSpecies+1] = 2.0

	groups := BuildConcentrations(Y, mx, nSpecies)
	if len(groups[1]) != 2 {
		tst.Fatalf("expected 2 nonzero entries at grid point 1, got %d", len(groups[1]))
	}
	if len(groups[0]) != 0 || len(groups[2]) != 0 {
		tst.Fatalf("expected zero grid points to have no entries")
	}

	back := Scatter(groups, nSpecies)
	for i := range Y {
		chk.Float64(tst, "round-trip", 1e-15, back[i], Y[i])
	}
}

func Test_tridyn_row_width_is_clamped_to_numconcspecies(tst *testing.T) {

	chk.PrintTitle("tridyn_row_width_is_clamped_to_numconcspecies")

	x := []float64{0, 1, 2}
	densities := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	temperature := []float64{300, 310, 320}

	store, err := NewStore(tst.TempDir())
	if err != nil {
		tst.Fatalf("NewStore failed: %v", err)
	}
	// numConcSpecies=2 should drop the third density slice
	if err := store.WriteTRIDYN(0, x, densities, temperature, 2); err != nil {
		tst.Fatalf("WriteTRIDYN failed: %v", err)
	}
	dec, err := utl.NewDecoder("gob", store.path(tridynName(0)))
	if err != nil {
		tst.Fatalf("cannot open TRIDYN file: %v", err)
	}
	var rows []TridynRow
	if err := dec.Decode(&rows); err != nil {
		tst.Fatalf("cannot read TRIDYN rows: %v", err)
	}

	if len(rows[0].Species) != 2 {
		tst.Fatalf("expected the row width to be clamped to numConcSpecies=2, got %d", len(rows[0].Species))
	}
	chk.Float64(tst, "first species column preserved", 1e-15, rows[1].Species[0], 4)
	chk.Float64(tst, "second species column preserved", 1e-15, rows[1].Species[1], 5)
}

func Test_store_header_and_timestep_round_trip(tst *testing.T) {

	chk.PrintTitle("store_header_and_timestep_round_trip")

	cat, err := cluster.New([]*cluster.Cluster{
		{ID: 0, Kind: cluster.Regular, Composition: cluster.Composition{cluster.He: 1}, ReactionRadius: 0.3, FormationEnergy: 6.15},
		{ID: 1, Kind: cluster.Regular, Composition: cluster.Composition{cluster.V: 1}, ReactionRadius: 0.35, FormationEnergy: 3.6},
	})
	if err != nil {
		tst.Fatalf("cluster.New failed: %v", err)
	}

	store, err := NewStore(tst.TempDir())
	if err != nil {
		tst.Fatalf("NewStore failed: %v", err)
	}

	x := []float64{0, 1, 2, 3}
	if err := store.WriteHeader(x, cat); err != nil {
		tst.Fatalf("WriteHeader failed: %v", err)
	}
	gotX, matches, err := store.ReadHeader(cat)
	if err != nil {
		tst.Fatalf("ReadHeader failed: %v", err)
	}
	if !matches {
		tst.Fatalf("expected the round-tripped catalogue to match")
	}
	if len(gotX) != len(x) {
		tst.Fatalf("expected grid length %d, got %d", len(x), len(gotX))
	}
	for i := range x {
		chk.Float64(tst, "grid vector round-trip", 1e-15, gotX[i], x[i])
	}

	g := TimestepGroup{
		Step:             7,
		Time:             1.5,
		Dt:               0.5,
		WallTime:         12.3,
		PreviousWallTime: 11.1,
		Counters: Counters{
			NInterstitial: 3.2, PreviousIFlux: 0.4,
			NHelium: 1.1, PreviousHeFlux: 0.2,
			NDeuterium: 0.9, PreviousDFlux: 0.1,
			NTritium: 0.05, PreviousTFlux: 0.01,
			SurfacePos: 2,
		},
		Concentrations: [][]ConcEntry{
			nil,
			nil,
			{{ID: 0, Value: 5.0}, {ID: 1, Value: 7.0}},
			{{ID: 1, Value: 2.0}},
		},
	}
	if err := store.WriteTimestep(g); err != nil {
		tst.Fatalf("WriteTimestep failed: %v", err)
	}
	got, err := store.ReadTimestep(g.Step)
	if err != nil {
		tst.Fatalf("ReadTimestep failed: %v", err)
	}

	if got.Step != g.Step {
		tst.Fatalf("expected step %d, got %d", g.Step, got.Step)
	}
	chk.Float64(tst, "time", 1e-15, got.Time, g.Time)
	chk.Float64(tst, "dt", 1e-15, got.Dt, g.Dt)
	chk.Float64(tst, "wall time", 1e-15, got.WallTime, g.WallTime)
	chk.Float64(tst, "previous wall time", 1e-15, got.PreviousWallTime, g.PreviousWallTime)
	if got.Counters != g.Counters {
		tst.Fatalf("expected counters %+v, got %+v", g.Counters, got.Counters)
	}
	if len(got.Concentrations) != len(g.Concentrations) {
		tst.Fatalf("expected %d concentration groups, got %d", len(g.Concentrations), len(got.Concentrations))
	}
	for xi, row := range g.Concentrations {
		if len(got.Concentrations[xi]) != len(row) {
			tst.Fatalf("grid point %d: expected %d entries, got %d", xi, len(row), len(got.Concentrations[xi]))
		}
		for i, e := range row {
			if got.Concentrations[xi][i] != e {
				tst.Fatalf("grid point %d entry %d: expected %+v, got %+v", xi, i, e, got.Concentrations[xi][i])
			}
		}
	}
}
