// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package event

import (
	"testing"

	"github.com/cpmech/gopsi/cluster"
	"github.com/cpmech/gosl/chk"
)

func Test_bubble_radius_grows_with_helium_density(tst *testing.T) {

	chk.PrintTitle("bubble_radius_grows_with_helium_density")

	cfg := Config{LatticeConstant: 0.317}
	rLow := BubbleRadius(cfg, 1e18, 0.5)
	rHigh := BubbleRadius(cfg, 1e20, 0.5)
	if !(rHigh > rLow) {
		tst.Fatalf("expected radius to grow with helium density, low=%e high=%e", rLow, rHigh)
	}
}

func Test_should_burst_deterministic_when_radius_reaches_surface(tst *testing.T) {

	chk.PrintTitle("should_burst_deterministic_when_radius_reaches_surface")

	cfg := Config{LatticeConstant: 0.317, FluxAmplitude: 1e18, Tau: 2}
	if !ShouldBurst(cfg, 1e25, 1e-9, 0.5, 1e-3) {
		tst.Fatalf("expected a deterministic burst once the bubble radius exceeds the surface distance")
	}
}

func Test_apply_burst_zeroes_he_and_transfers_hev_to_v(tst *testing.T) {

	chk.PrintTitle("apply_burst_zeroes_he_and_transfers_hev_to_v")

	clusters := []*cluster.Cluster{
		{ID: 0, Kind: cluster.Regular, Composition: cluster.Composition{cluster.He: 1}},
		{ID: 1, Kind: cluster.Regular, Composition: cluster.Composition{cluster.V: 1}},
		{ID: 2, Kind: cluster.Regular, Composition: cluster.Composition{cluster.He: 1, cluster.V: 1}},
	}
	cat, err := cluster.New(clusters)
	if err != nil {
		tst.Fatalf("cluster.New failed: %v", err)
	}

	conc := make([]float64, cat.Size())
	conc[0] = 5.0 // He1
	conc[1] = 1.0 // V1
	conc[2] = 3.0 // He1V1

	ApplyBurst(cat, 0, conc)

	chk.Float64(tst, "He1 zeroed", 1e-15, conc[0], 0)
	chk.Float64(tst, "HeV zeroed", 1e-15, conc[2], 0)
	chk.Float64(tst, "V1 gains the HeV population", 1e-15, conc[1], 1.0+3.0)
}
