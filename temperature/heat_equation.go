// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package temperature

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

func init() {
	allocators["heat-equation"] = func() Model { return new(HeatEquation) }
}

// HeatEquation carries its own transient field T(x_i), advanced by the
// nonuniform three-point stencil used for diffusive transport (§4.C,
// §4.F), with material conductivity/density/specific-heat parameters
// connected the way mdl/diffusion.M1.Init connects its own k/rho.
type HeatEquation struct {
	Rho, Cp, K float64 // density, specific heat, conductivity

	field   []float64 // T at every grid point, ends held fixed (Dirichlet)
	xCoords []float64
}

// Init connects the model's material parameters from a gosl/fun.Prms
// record, mirroring mdl/diffusion.M1.Init.
func (h *HeatEquation) Init(prms fun.Prms) error {
	prms.Connect(&h.Rho, "rho", "density (heat-equation temperature model)")
	prms.Connect(&h.Cp, "cp", "specific heat (heat-equation temperature model)")
	prms.Connect(&h.K, "k", "thermal conductivity (heat-equation temperature model)")
	if h.Rho <= 0 || h.Cp <= 0 {
		return chk.Err("heat-equation: rho and cp must be positive, got rho=%g cp=%g", h.Rho, h.Cp)
	}
	return nil
}

// diffusivity is k/(rho*cp).
func (h *HeatEquation) diffusivity() float64 { return h.K / (h.Rho * h.Cp) }

// SetInitial allocates the field over x and fills it with a uniform
// starting temperature.
func (h *HeatEquation) SetInitial(x []float64, t0 float64) {
	h.xCoords = x
	h.field = make([]float64, len(x))
	for i := range h.field {
		h.field[i] = t0
	}
}

// T returns the field value at the grid point nearest x. Time t is
// ignored: the field's own state already encodes history, advanced
// separately by Advance.
func (h *HeatEquation) T(x, t float64) float64 {
	xi := nearest(h.xCoords, x)
	if xi < 0 {
		return 0
	}
	return h.field[xi]
}

// Advance steps the field by dt using forward-Euler on the same
// nonuniform three-point Laplacian transport.Diffusion.ComputeDiffusion
// applies to concentrations, holding both ends fixed (Dirichlet).
func (h *HeatEquation) Advance(x []float64, dt float64) {
	n := len(h.field)
	if n < 3 {
		return
	}
	alpha := h.diffusivity()
	next := make([]float64, n)
	next[0] = h.field[0]
	next[n-1] = h.field[n-1]
	for i := 1; i < n-1; i++ {
		hL := x[i] - x[i-1]
		hR := x[i+1] - x[i]
		scale := 2 / (hL + hR)
		lap := scale * ((h.field[i-1]-h.field[i])/hL + (h.field[i+1]-h.field[i])/hR)
		next[i] = h.field[i] + dt*alpha*lap
	}
	h.field = next
}

// nearest returns the index of the grid point closest to x, or -1 if
// xs is empty.
func nearest(xs []float64, x float64) int {
	if len(xs) == 0 {
		return -1
	}
	best, bestDist := 0, absF(xs[0]-x)
	for i := 1; i < len(xs); i++ {
		d := absF(xs[i] - x)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
