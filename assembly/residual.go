// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import "github.com/cpmech/gopsi/cluster"

// Residual computes dY/dt = f into out (sized Ndim()), given the
// current state Y and time t (§4.G "updateConcentration" steps 1-7):
//
//  1. at xi <= surfacePos or xi == Mx-1, copy concentration into the
//     residual (identity rows) and skip every other step
//  2. otherwise, update the network's temperature cache
//  3. add reaction production/dissociation/emission
//  4. add trap-mutation
//  5. add incident-flux source terms
//  6. add diffusion and advection between neighboring grid points
//
// The slab at or below surfacePos is a reservoir with identity
// dynamics; Mx-1 is a reflecting/zero-flux right boundary (§4.G
// "Boundary policy").
func (d *Domain) Residual(t float64, Y, out []float64) {
	mx := d.Mx()
	for xi := 0; xi < mx; xi++ {
		localY := Y[d.Index(xi, 0):d.Index(xi, 0)+d.NSpecies]
		localOut := out[d.Index(xi, 0) : d.Index(xi, 0)+d.NSpecies]

		if xi <= d.SurfacePos || xi == mx-1 {
			copy(localOut, localY)
			continue
		}

		T := d.Temp.T(d.X[xi], t)
		d.Net.SetTemperature(xi, T, d.Tol)
		if d.Trap != nil {
			d.Trap.UpdateRate(xi, T)
		}

		for id := 0; id < d.NSpecies; id++ {
			cl := d.Net.Cat.ByID(id)
			if cl == nil {
				continue
			}
			if cl.Kind == cluster.Super {
				continue // handled via its moment ids below
			}
			localOut[id] += d.Net.Graph.GetTotalFlux(id, localY)
		}
		for _, super := range d.Net.Cat.GetAll() {
			if !super.IsSuper() {
				continue
			}
			for gamma, id := range super.IDs() {
				localOut[id] += d.Net.Graph.GetSuperMomentFlux(super.MomentZeroID, gamma, localY)
			}
		}

		if d.Trap != nil {
			d.Trap.Compute(xi, d.SurfacePos, localY, localOut)
		}

		for _, op := range d.Fluxes {
			op.Add(xi, t, localOut)
		}

		// xi is guaranteed interior here: the identity-row branch above
		// already handled xi <= surfacePos and xi == mx-1.
		left := Y[d.Index(xi-1, 0) : d.Index(xi-1, 0)+d.NSpecies]
		right := Y[d.Index(xi+1, 0) : d.Index(xi+1, 0)+d.NSpecies]
		hL := d.X[xi] - d.X[xi-1]
		hR := d.X[xi+1] - d.X[xi]
		d.Diff.ComputeDiffusion(d.Net.Cat, xi, left, localY, right, localOut, hL, hR)
		if d.Adv != nil {
			d.Adv.ComputeAdvection(d.distanceFromSurface(xi), localY, right, localOut, hR)
		}
	}
}
