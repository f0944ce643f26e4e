// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"
	"time"

	"github.com/cpmech/gopsi/assembly"
	"github.com/cpmech/gopsi/cluster"
	"github.com/cpmech/gopsi/inp"
	"github.com/cpmech/gopsi/reaction"
	"github.com/cpmech/gopsi/temperature"
	"github.com/cpmech/gopsi/transport"
	"github.com/cpmech/gosl/chk"
)

func buildTinyDomainForMonitor(tst *testing.T) *assembly.Domain {
	clusters := []*cluster.Cluster{
		{ID: 0, Kind: cluster.Regular, Composition: cluster.Composition{cluster.He: 1}, D0: 1e-3},
		{ID: 1, Kind: cluster.Regular, Composition: cluster.Composition{cluster.He: 2}, D0: 1e-3},
	}
	x := []float64{0, 1, 2}
	net, err := reaction.NewNetwork(clusters, &reaction.SizeLimitPairer{}, len(x))
	if err != nil {
		tst.Fatalf("NewNetwork failed: %v", err)
	}
	diff := transport.NewDiffusion(net.Cat)
	dom, err := assembly.NewDomain(x, 0, net, diff, nil, &temperature.Constant{Value: 1000})
	if err != nil {
		tst.Fatalf("NewDomain failed: %v", err)
	}
	return dom
}

func Test_monitor_inactive_when_no_switch_is_on(tst *testing.T) {

	chk.PrintTitle("monitor_inactive_when_no_switch_is_on")

	m := newMonitor(inp.DefaultOptions(), "")
	if m.active() {
		tst.Fatalf("expected an all-off Options to leave the monitor inactive")
	}
	dom := buildTinyDomainForMonitor(tst)
	Y := dom.InitializeConcentration(0)
	m.sample(1.0, dom.Net.Cat, dom, Y, assembly.Summary{})
	if len(m.times) != 0 {
		tst.Fatalf("expected an inactive monitor to record nothing, got %d samples", len(m.times))
	}
}

func Test_monitor_accumulates_helium_series(tst *testing.T) {

	chk.PrintTitle("monitor_accumulates_helium_series")

	opts := inp.DefaultOptions()
	opts.HeliumConc = true
	opts.MeanSize = true
	m := newMonitor(opts, "")

	dom := buildTinyDomainForMonitor(tst)
	Y := dom.InitializeConcentration(0)
	Y[dom.Index(0, 0)] = 2.0 // He1 at the first grid point
	Y[dom.Index(1, 1)] = 1.0 // He2 at the second grid point

	m.sample(1.0, dom.Net.Cat, dom, Y, assembly.Summary{RhsEvals: 3, Walltime: time.Millisecond})
	if len(m.heliumConc) != 1 || m.heliumConc[0] != 2.0*1+1.0*2 {
		tst.Fatalf("expected the He1+He2 weighted total, got %v", m.heliumConc)
	}
	if len(m.heliumCumul) != 1 || m.heliumCumul[0] != m.heliumConc[0] {
		tst.Fatalf("expected the first cumulative sample to equal the first concentration sample")
	}

	m.sample(2.0, dom.Net.Cat, dom, Y, assembly.Summary{})
	if m.heliumCumul[1] != m.heliumCumul[0]+m.heliumConc[1] {
		tst.Fatalf("expected cumulative helium to accumulate across samples, got %v", m.heliumCumul)
	}
}
