// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reaction implements the cluster reaction graph: pairwise
// production/dissociation records between clusters, their temperature-
// dependent rate constants, and per-cluster flux and partial-derivative
// evaluation (§4.B).
package reaction

// Reaction is the record of one production/dissociation pair:
//
//	A + B --KProd--> C
//	A + B <--KDiss-- C
//
// production and dissociation are two directions of the same pairwise
// event; a cluster's total flux sums the production/combination view
// when it is A or B and the emission/dissociation view when it is C
// (§4.B). Endpoints are dense cluster ids, never pointers (design note
// §9). A, B, C and Coupling are fixed at construction; KProd and KDiss
// are rewritten in place by Graph.UpdateRates.
type Reaction struct {
	A, B, C int // cluster ids; A == B is valid (self-combination, e.g. He1+He1->He2)

	KProd float64 // combination/production rate constant
	KDiss float64 // dissociation/emission rate constant

	// Moment coupling is populated only when C names a super cluster:
	// Coupling[alpha][beta][gamma] is a_{alpha,beta,gamma}, the
	// contribution of moment alpha of A and moment beta of B into
	// moment gamma of C (§4.B). Index 0 is always l0; indices 1.. are
	// the grouped-axis moments in AxisSpecies order.
	Coupling [][][]float64
}

// productionTerm returns k_prod * C_A * C_B, the shared bimolecular
// rate evaluated at the given concentrations.
func (r *Reaction) productionTerm(conc []float64) float64 {
	return r.KProd * conc[r.A] * conc[r.B]
}

// dissociationTerm returns k_diss * C_C.
func (r *Reaction) dissociationTerm(conc []float64) float64 {
	return r.KDiss * conc[r.C]
}

// stoichFactor is 2 when A==B (a cluster reacting with itself is
// consumed twice per event), 1 otherwise.
func stoichFactor(a, b int) float64 {
	if a == b {
		return 2
	}
	return 1
}

