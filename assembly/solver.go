// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/ode"
)

// Solver advances a Domain's state in time with gosl/ode's stiff
// integrator, the same wiring pattern ana.ColumnFluidPressure uses for
// its own ODE system: an ode.Solver initialized once with the
// right-hand-side and Jacobian closures, then driven step by step.
type Solver struct {
	Method string // e.g. "Radau5"
	dom    *Domain
	sol    ode.Solver

	fcnCalls int // right-hand-side evaluation count, our own step proxy
}

// Summary reports counters after a Run (§4.G, the ambient
// "how long/how many steps" telemetry every driver in this codebase's
// lineage reports back to its caller). Walltime covers that one Run;
// RhsEvals counts right-hand-side evaluations since the Solver was
// created (it is not reset between Run calls), rather than
// accepted/rejected steps: gosl/ode.Solver
// does not expose per-run step counters through its public call
// surface used elsewhere in this codebase, so the assembler tracks its
// own proxy instead of guessing at an unverified field.
type Summary struct {
	RhsEvals int
	Walltime time.Duration
}

// createSolverContext builds and initializes the underlying ode.Solver
// for domain dom, wiring Residual/AssembleJacobian as the right-hand
// side and Jacobian callbacks (§4.G "createSolverContext").
func createSolverContext(method string, dom *Domain) (*Solver, error) {
	if method == "" {
		method = "Radau5"
	}
	s := &Solver{Method: method, dom: dom}
	fcn := func(f []float64, dT, t float64, Y []float64, args ...interface{}) error {
		s.fcnCalls++
		dom.Residual(t, Y, f)
		return nil
	}
	jac := func(dfdy *la.Triplet, dT, t float64, Y []float64, args ...interface{}) error {
		if dfdy.Max() == 0 {
			dfdy.Init(dom.Ndim(), dom.Ndim(), dom.NNZ())
		}
		dfdy.Start()
		for xi := 0; xi < dom.Mx(); xi++ {
			dom.ComputeDiagonalJacobian(dfdy, xi, Y)
			dom.ComputeOffDiagonalJacobian(dfdy, xi)
		}
		return nil
	}
	silent := true
	s.sol.Init(method, dom.Ndim(), fcn, jac, nil, nil, silent)
	s.sol.Distr = false
	return s, nil
}

// NewSolver is createSolverContext's exported entry point.
func NewSolver(method string, dom *Domain) (*Solver, error) {
	return createSolverContext(method, dom)
}

// Run integrates the domain's state from t0 to tf, reporting Y in
// place and returning step counters (§4.G "the top-level driving
// loop"). xout controls the solver's internal output stride; pass a
// value >= tf-t0 for a single unmonitored step.
func (s *Solver) Run(Y []float64, t0, tf, xout float64) (Summary, error) {
	start := time.Now()
	err := s.sol.Solve(Y, t0, tf, xout, false)
	if err != nil {
		return Summary{}, chk.Err("assembly: time integration failed: %v", err)
	}
	return Summary{
		RhsEvals: s.fcnCalls,
		Walltime: time.Since(start),
	}, nil
}
