// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trapmutation implements the modified trap-mutation operator
// (§4.D): the depth- and material-indexed nonlinear source converting
// He_s clusters into HeV_{s,v} pairs plus a self-interstitial.
package trapmutation

import (
	"math"

	"github.com/cpmech/gopsi/cluster"
	"github.com/cpmech/gopsi/reaction"
	"github.com/cpmech/gopsi/trapmutation/material"
	"github.com/cpmech/gosl/chk"
)

const boltzmannEV = 8.617333262e-5

// Operator applies one material's trap-mutation rule table against a
// running network.
type Operator struct {
	model material.Model
	cat   *cluster.Catalogue

	he1ID int // He1, whose diffusion coefficient drives the rate law
	iID   int // the self-interstitial cluster

	rate float64 // k_tm, recomputed by UpdateRate whenever temperature changes
}

// New builds a trap-mutation operator for model against net. Returns
// an error if the network has no He1 or I1 cluster: without them the
// operator cannot compute a rate or a product (§7 configuration
// error).
func New(net *reaction.Network, model material.Model) (*Operator, error) {
	he1 := net.Cat.Get(cluster.He, 1)
	i1 := net.Cat.Get(cluster.I, 1)
	if he1 == nil || i1 == nil {
		return nil, chk.Err("trapmutation: network is missing He1 or I1, required by the trap-mutation rate law")
	}
	return &Operator{model: model, cat: net.Cat, he1ID: he1.ID, iID: i1.ID}, nil
}

// UpdateRate recomputes k_tm from He1's current diffusion coefficient
// at grid point xi and the network's current temperature (§4.D):
//
//	k_tm(T) = 4 * exp(-Ea/kT) * D_He1(xi, T)
func (o *Operator) UpdateRate(xi int, T float64) {
	if T <= 0 {
		o.rate = 0
		return
	}
	dHe1 := o.cat.ByID(o.he1ID).DiffusionAt(xi)
	o.rate = 4 * math.Exp(-o.model.ActivationEnergy()/(boltzmannEV*T)) * dHe1
}

// Rate returns the operator's current cached k_tm.
func (o *Operator) Rate() float64 { return o.rate }

// DepthBucket maps grid point xi to a trap-mutation bucket relative to
// surfacePos (§4.D: "the first M grid points beyond the surface each
// map to one bucket; deeper points -> no trap mutation").
func (o *Operator) DepthBucket(xi, surfacePos int) (bucket int, ok bool) {
	offset := xi - surfacePos - 1
	if offset < 0 || offset >= o.model.NumBuckets() {
		return 0, false
	}
	return offset, true
}

// firing is one (He_s -> HeV_{s,v} + I) event at a grid point.
type firing struct {
	heID, hevID int
	heSize, v   int
}

// activeFirings lists every helium size with a nonzero rule at bucket
// whose HeV product cluster exists in the network. A missing product
// cluster is treated as "no reaction at this site" and silently
// skipped (§7 "Logic error" policy), not an error.
func (o *Operator) activeFirings(bucket int) []firing {
	var out []firing
	for s := 1; s <= 64; s++ {
		v, ok := o.model.ProductVacancyCount(s, bucket)
		if !ok {
			continue
		}
		heCl := o.cat.Get(cluster.He, s)
		if heCl == nil {
			continue
		}
		hevCl := o.cat.GetByComposition(cluster.Composition{cluster.He: s, cluster.V: v})
		if hevCl == nil {
			continue
		}
		out = append(out, firing{heID: heCl.ID, hevID: hevCl.ID, heSize: s, v: v})
	}
	return out
}

// Compute adds the trap-mutation contribution at grid point xi to out,
// given the surface position and local concentration vector conc
// (§4.D). No-op when xi is not within the material's active depth
// range.
func (o *Operator) Compute(xi, surfacePos int, conc, out []float64) {
	bucket, ok := o.DepthBucket(xi, surfacePos)
	if !ok {
		return
	}
	for _, f := range o.activeFirings(bucket) {
		rate := o.rate * conc[f.heID]
		out[f.heID] -= rate
		out[f.hevID] += rate
		out[o.iID] += rate
	}
}

// Partial is one Jacobian entry emitted by ComputePartialsForTrapMutation.
type Partial struct {
	Row, Col int
	Value    float64
}

// ComputePartialsForTrapMutation emits, per mutating pair, three
// entries: (He,He) = -k_tm, (HeV,He) = +k_tm, (I,He) = +k_tm (§4.D).
func (o *Operator) ComputePartialsForTrapMutation(xi, surfacePos int) []Partial {
	bucket, ok := o.DepthBucket(xi, surfacePos)
	if !ok {
		return nil
	}
	var out []Partial
	for _, f := range o.activeFirings(bucket) {
		out = append(out,
			Partial{Row: f.heID, Col: f.heID, Value: -o.rate},
			Partial{Row: f.hevID, Col: f.heID, Value: o.rate},
			Partial{Row: o.iID, Col: f.heID, Value: o.rate},
		)
	}
	return out
}
