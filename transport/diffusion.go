// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transport implements the per-cluster diffusion and advection
// stencils and their contributions to the residual and Jacobian
// (§4.C). Both operators only ever touch the diagonal block of the
// off-diagonal fill pattern: there is no cross-species coupling in
// spatial transport.
package transport

import "github.com/cpmech/gopsi/cluster"

// Diffusion holds the (fixed, immutable after construction) set of
// diffusing clusters.
type Diffusion struct {
	ids []int
}

// NewDiffusion builds a Diffusion operator over every cluster in cat
// with a nonzero diffusion pre-factor (D0 != 0), the same "which
// clusters actually diffuse" test used when the diffusion coefficient
// cache is populated (cluster.arrheniusD returns zero for D0==0).
func NewDiffusion(cat *cluster.Catalogue) *Diffusion {
	d := &Diffusion{}
	for _, cl := range cat.GetAll() {
		if cl.D0 != 0 {
			d.ids = append(d.ids, cl.ID)
		}
	}
	return d
}

// IDs returns the diffusing cluster ids, in ascending order.
func (d *Diffusion) IDs() []int { return d.ids }

// InitializeOffDiagonal marks the diagonal entry (i,i) of ofill for
// every diffusing cluster (§4.C): diffusion never couples distinct
// species.
func (d *Diffusion) InitializeOffDiagonal(ofill [][]bool) {
	for _, id := range d.ids {
		ofill[id][id] = true
	}
}

// ComputeDiffusion adds each diffusing cluster's nonuniform three-point
// second-derivative contribution to out (§4.C):
//
//	D_c * 2/(hL+hR) * ( (C_left-C_mid)/hL + (C_right-C_mid)/hR )
func (d *Diffusion) ComputeDiffusion(cat *cluster.Catalogue, xi int, left, mid, right []float64, out []float64, hL, hR float64) {
	scale := 2 / (hL + hR)
	for _, id := range d.ids {
		D := cat.ByID(id).DiffusionAt(xi)
		out[id] += D * scale * ((left[id]-mid[id])/hL + (right[id]-mid[id])/hR)
	}
}

// DiffusionPartials is one diffusing cluster's row of the diffusion
// Jacobian contribution: three stencil coefficients in fixed
// (middle, left, right) order (§4.C).
type DiffusionPartials struct {
	ID                        int
	Middle, Left, Right float64
}

// ComputePartialsForDiffusion emits, per diffusing cluster, its id and
// the three stencil coefficients of ComputeDiffusion's linear
// dependence on C_left, C_mid, C_right.
func (d *Diffusion) ComputePartialsForDiffusion(cat *cluster.Catalogue, xi int, hL, hR float64) []DiffusionPartials {
	scale := 2 / (hL + hR)
	out := make([]DiffusionPartials, len(d.ids))
	for i, id := range d.ids {
		D := cat.ByID(id).DiffusionAt(xi)
		out[i] = DiffusionPartials{
			ID:     id,
			Middle: D * scale * (-1/hL - 1/hR),
			Left:   D * scale * (1 / hL),
			Right:  D * scale * (1 / hR),
		}
	}
	return out
}
