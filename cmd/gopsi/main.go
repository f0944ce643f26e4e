// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gopsi runs the reactive cluster-transport core standalone:
// it reads a simulation options file and a network description file,
// assembles the domain, and drives the time loop between the
// event-controller checks, checkpointing on the configured stride
// (§6). The nonlinear/ODE time integrator itself is gosl/ode, treated
// exactly the way the teacher's own main.go treats fem.NewFEM/Run —
// this file is orchestration, not physics.
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/utl"
)

func main() {

	// catch errors, the same top-level recover+CallerInfo pattern the
	// teacher's own main.go uses.
	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				io.PfRed("\nERROR: %v\n", err)
				io.Pf("See location of error below:\n")
				chk.Verbose = true
				for i := 5; i > 3; i-- {
					chk.CallerInfo(i)
				}
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	// positional arguments: config file, network file, verbose flag,
	// profiling switch.
	configPath, _ := io.ArgToFilename(0, "", ".json", true)
	networkPath, _ := io.ArgToFilename(1, "", ".json", true)
	verbose := io.ArgToBool(2, true)
	doprof := io.ArgToInt(3, 0)

	// §6 CLI surface: switches read from positional args 4 to 19, each
	// overriding the config file's own Options when explicitly passed.
	sw := readSwitches()

	if mpi.Rank() == 0 && verbose {
		io.PfWhite("\nGopsi -- reactive cluster-transport core\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"simulation options file", "configPath", configPath,
			"network description file", "networkPath", networkPath,
			"show messages", "verbose", verbose,
			"profiling: 0=none 1=CPU 2=MEM", "doprof", doprof,
		))
	}

	if doprof > 0 {
		defer utl.DoProf(false, doprof)()
	}

	if err := run(configPath, networkPath, verbose, sw); err != nil {
		chk.Panic("gopsi: run failed:\n%v", err)
	}
}
