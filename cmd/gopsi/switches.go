// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gopsi/inp"
	"github.com/cpmech/gosl/io"
)

// switches holds every CLI flag of §6. Each is read from its own fixed
// positional argument (indices 4 to 19, after the four leading
// positional args) with the same io.ArgToBool/io.ArgToFloat helpers;
// flags are not looked up by name, so setting a later flag means
// passing every earlier position too. io.ArgToFloat is the plausible
// float-valued sibling of that family used here for the two threshold
// switches and the -start_stop stride (not
// exercised anywhere in the retrieval pack, so it is an inferred
// rather than a grounded call, same status as mpi.BcastFromRoot
// elsewhere in this codebase).
type switches struct {
	checkNegative float64
	checkNegSet   bool
	checkCollapse float64
	checkColSet   bool

	plot1D, plotSeries, plot2D, plotPerf bool
	heliumRetention, xenonRetention      bool

	startStop    float64
	startStopSet bool

	maxClusterConc                     bool
	heliumCumul, heliumConc, meanSize  bool
	tempProfile                        bool
	tridyn, alloy                      bool
}

// readSwitches reads every §6 switch from the command line by
// position: indices 4 to 19, past the four leading positional ones
// (config, network, verbose, doprof), in the order of the fields of
// switches, mirroring how the teacher's examples/ subcommands each read
// their own extra flags after the shared positional prefix.
func readSwitches() switches {
	var sw switches
	sw.checkNegative = io.ArgToFloat(4, -1)
	sw.checkNegSet = sw.checkNegative >= 0
	sw.checkCollapse = io.ArgToFloat(5, -1)
	sw.checkColSet = sw.checkCollapse >= 0
	sw.plot1D = io.ArgToBool(6, false)
	sw.plotSeries = io.ArgToBool(7, false)
	sw.plot2D = io.ArgToBool(8, false)
	sw.plotPerf = io.ArgToBool(9, false)
	sw.heliumRetention = io.ArgToBool(10, false)
	sw.xenonRetention = io.ArgToBool(11, false)
	sw.startStop = io.ArgToFloat(12, -1)
	sw.startStopSet = sw.startStop >= 0
	sw.maxClusterConc = io.ArgToBool(13, false)
	sw.heliumCumul = io.ArgToBool(14, false)
	sw.heliumConc = io.ArgToBool(15, false)
	sw.meanSize = io.ArgToBool(16, false)
	sw.tempProfile = io.ArgToBool(17, false)
	sw.tridyn = io.ArgToBool(18, false)
	sw.alloy = io.ArgToBool(19, false)
	return sw
}

// applyTo overrides cfg.Options with every switch the command line
// actually set, leaving the config file's own values in place
// otherwise (§7 "configuration error ... fail-fast at initialization"
// only applies to contradictions, not to unset switches).
func (sw switches) applyTo(opts *inp.Options) {
	if sw.checkNegSet {
		opts.CheckNegative = sw.checkNegative
	}
	if sw.checkColSet {
		opts.CheckCollapse = sw.checkCollapse
	}
	opts.Plot1D = opts.Plot1D || sw.plot1D
	opts.PlotSeries = opts.PlotSeries || sw.plotSeries
	opts.Plot2D = opts.Plot2D || sw.plot2D
	opts.PlotPerf = opts.PlotPerf || sw.plotPerf
	opts.HeliumRetention = opts.HeliumRetention || sw.heliumRetention
	opts.XenonRetention = opts.XenonRetention || sw.xenonRetention
	if sw.startStopSet {
		opts.StartStop = sw.startStop
	}
	opts.MaxClusterConc = opts.MaxClusterConc || sw.maxClusterConc
	opts.HeliumCumul = opts.HeliumCumul || sw.heliumCumul
	opts.HeliumConc = opts.HeliumConc || sw.heliumConc
	opts.MeanSize = opts.MeanSize || sw.meanSize
	opts.TempProfile = opts.TempProfile || sw.tempProfile
	opts.Tridyn = opts.Tridyn || sw.tridyn
	opts.Alloy = opts.Alloy || sw.alloy
}
