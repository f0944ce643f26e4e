// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reaction

import (
	"math"

	"github.com/cpmech/gopsi/cluster"
)

// boltzmannEV is Boltzmann's constant in eV/K, the unit formation and
// binding energies are specified in (§3).
const boltzmannEV = 8.617333262e-5

// combinationRate is the diffusion-limited bimolecular rate constant
// for two clusters approaching within their combined reaction radius:
// k = 4*pi*(rA+rB)*(DA+DB). Both diffusion coefficients are looked up
// at the local grid point xi supplied by the caller.
func combinationRate(a, b *cluster.Cluster, xi int) float64 {
	rA, rB := a.ReactionRadius, b.ReactionRadius
	dA, dB := a.DiffusionAt(xi), b.DiffusionAt(xi)
	return 4 * math.Pi * (rA + rB) * (dA + dB)
}

// dissociationRate applies detailed balance to the forward combination
// rate using the product's binding energy for the species it would
// re-emit to reconstitute a and b: k_diss = k_prod * exp(-Eb/kT).
func dissociationRate(prod float64, bindingEnergyEV, T float64) float64 {
	if T <= 0 {
		return 0
	}
	return prod * math.Exp(-bindingEnergyEV/(boltzmannEV*T))
}
