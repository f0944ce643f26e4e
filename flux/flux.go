// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flux implements the depth-profiled incident-particle source
// term (§4.E): a precomputed per-grid-point amplitude vector, scaled at
// evaluation time by a time profile.
package flux

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

// Operator injects a single implanted species at a depth profile that
// decays exponentially from the surface, scaled in time by Profile.
type Operator struct {
	TargetID int      // the cluster receiving the injected flux, e.g. He1
	Profile  fun.Func // f(t) time-profile scale factor, nil means constant 1

	amplitude []float64 // F[xi], precomputed by Precompute
}

// New builds a flux operator injecting into targetID with time profile
// profile (may be nil for a step-function flux).
func New(targetID int, profile fun.Func) *Operator {
	return &Operator{TargetID: targetID, Profile: profile}
}

// Precompute fills the depth-profiled amplitude vector F[xi] =
// peakAmplitude * exp(-depth/decayLength) for grid points at or beyond
// the surface, zero elsewhere (§4.E "Amplitude scaling ... held
// internally").
func (o *Operator) Precompute(x []float64, surfacePos int, peakAmplitude, decayLength float64) {
	o.amplitude = make([]float64, len(x))
	if surfacePos < 0 || surfacePos >= len(x) {
		return
	}
	surface := x[surfacePos]
	for xi := surfacePos; xi < len(x); xi++ {
		depth := x[xi] - surface
		if depth < 0 {
			depth = 0
		}
		o.amplitude[xi] = peakAmplitude * math.Exp(-depth/decayLength)
	}
}

// Add adds this operator's contribution at grid point xi and time t to
// out: F[xi] scaled by the time profile (§4.E "the assembler simply
// adds F[xi] to out[id(He_1)]").
func (o *Operator) Add(xi int, t float64, out []float64) {
	if xi < 0 || xi >= len(o.amplitude) {
		return
	}
	scale := 1.0
	if o.Profile != nil {
		scale = o.Profile.F(t, nil)
	}
	out[o.TargetID] += o.amplitude[xi] * scale
}
