// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cluster

import "math"

// boltzmannEV is Boltzmann's constant in eV/K.
const boltzmannEV = 8.617333262e-5

// arrheniusD evaluates D0*exp(-Em/kT), zero below absolute zero and
// for immobile clusters (D0 == 0).
func arrheniusD(d0, em, T float64) float64 {
	if d0 == 0 || T <= 0 {
		return 0
	}
	return d0 * math.Exp(-em/(boltzmannEV*T))
}

// EnsureGrid allocates every cluster's per-grid-point diffusion cache
// to length mx, called once by the assembler at createSolverContext
// time (§4.G).
func (c *Catalogue) EnsureGrid(mx int) {
	for _, cl := range c.GetAll() {
		if len(cl.DiffusionCoefficient) != mx {
			cl.DiffusionCoefficient = make([]float64, mx)
		}
	}
}

// SetDiffusionAt recomputes every cluster's diffusion coefficient at
// grid point xi from temperature T. Diffusion coefficients remain
// cached at every other grid point (§3: "cached per grid point"); only
// the entry for xi is touched, matching the assembler's
// one-grid-point-at-a-time residual sweep (§4.G step 2). This always
// runs, even when T repeats a value seen at another grid point: the
// per-xi cache slot has no way to know it was ever filled, unlike the
// single scalar rate constants NoteTemperature's cache guards.
func (c *Catalogue) SetDiffusionAt(xi int, T float64) {
	for _, cl := range c.GetAll() {
		if xi >= 0 && xi < len(cl.DiffusionCoefficient) {
			cl.DiffusionCoefficient[xi] = arrheniusD(cl.D0, cl.MigrationEnergy, T)
		}
	}
}

// DiffusionAt returns c's cached diffusion coefficient at grid point
// xi, or zero if xi is out of range (e.g. the cache has not been
// sized yet).
func (c *Cluster) DiffusionAt(xi int) float64 {
	if xi < 0 || xi >= len(c.DiffusionCoefficient) {
		return 0
	}
	return c.DiffusionCoefficient[xi]
}
