// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reaction

import "github.com/cpmech/gopsi/cluster"

// UpdateRates recomputes every reaction's rate constant at grid point
// xi and temperature T (§3 "Rate constants are functions only of the
// current network temperature; they are recomputed exactly when
// temperature changes", §4.F). Dissociation is modeled only when the
// product is a regular cluster: a super cluster's formation energy is
// not a single number, so its dissociation channel is left at zero and
// only its production/moment accumulation is exercised.
func (g *Graph) UpdateRates(xi int, T float64) {
	for _, r := range g.reactions {
		a := g.cat.ByID(r.A)
		b := g.cat.ByID(r.B)
		r.KProd = combinationRate(a, b, xi)
		c := g.cat.ByID(r.C)
		if c != nil && c.Kind == cluster.Regular {
			eb := a.FormationEnergy + b.FormationEnergy - c.FormationEnergy
			r.KDiss = dissociationRate(r.KProd, eb, T)
		} else {
			r.KDiss = 0
		}
	}
}

// GetTotalFlux returns production - combination + dissociation -
// emission contributions to id's dC/dt (§4.B). It does not compute a
// super cluster's moment fluxes; those come from GetSuperMomentFlux.
func (g *Graph) GetTotalFlux(id int, conc []float64) float64 {
	var total float64
	for _, r := range g.byCluster[id] {
		prod := r.productionTerm(conc)
		diss := r.dissociationTerm(conc)
		if r.C == id {
			total += prod - diss // production - emission
			continue
		}
		factor := stoichFactor(r.A, r.B)
		total += diss - factor*prod // dissociation - combination
	}
	return total
}

// GetSuperMomentFlux returns the production contribution to the
// gamma-th moment (0 = l0) of the super cluster whose l0 id is
// superID, weighting each producing reaction by its coupling
// coefficient. Dissociation of the super is not included, and
// reactants are always regular clusters, so their bare concentrations
// are used.
func (g *Graph) GetSuperMomentFlux(superID, gamma int, conc []float64) float64 {
	var total float64
	for _, r := range g.byCluster[superID] {
		if r.C != superID || len(r.Coupling) == 0 {
			continue
		}
		prod := r.productionTerm(conc)
		for alpha := range r.Coupling {
			for beta := range r.Coupling[alpha] {
				a := r.Coupling[alpha][beta][gamma]
				if a == 0 {
					continue
				}
				total += a * prod
			}
		}
	}
	return total
}

// GetPartialDerivatives fills buf[j] = d(dC_id/dt)/dC_j for every j on
// id's connectivity row; every other entry of buf is left untouched
// (callers zero buf themselves, per §4.B "the assembler only reads the
// listed columns").
func (g *Graph) GetPartialDerivatives(id int, conc []float64, buf []float64) {
	for _, r := range g.byCluster[id] {
		switch {
		case r.C == id:
			buf[r.A] += r.KProd * conc[r.B]
			buf[r.B] += r.KProd * conc[r.A]
			buf[r.C] -= r.KDiss
		default:
			factor := stoichFactor(r.A, r.B)
			buf[r.A] -= factor * r.KProd * conc[r.B]
			buf[r.B] -= factor * r.KProd * conc[r.A]
			buf[r.C] += r.KDiss
		}
	}
}
