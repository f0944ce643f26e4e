// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"github.com/cpmech/gopsi/cluster"
	"github.com/cpmech/gosl/la"
)

// ComputeDiagonalJacobian fills dfdy with every partial derivative
// that couples unknowns at the same grid point: reaction/dissociation
// terms (reaction.Graph.GetPartialDerivatives) and trap-mutation
// (§4.G "dfill", the reaction-coupling block). Rows of super-cluster
// ids get no entries: the partial derivatives of their moment fluxes
// are not stamped.
//
// At xi <= surfacePos or xi == Mx-1 the row is an identity row (§4.G
// "Boundary policy"): every diagonal entry is 1 and nothing else is
// stamped, matching Residual's identity-copy at that grid point.
func (d *Domain) ComputeDiagonalJacobian(dfdy *la.Triplet, xi int, Y []float64) {
	base := d.Index(xi, 0)
	if xi <= d.SurfacePos || xi == d.Mx()-1 {
		for id := 0; id < d.NSpecies; id++ {
			dfdy.Put(base+id, base+id, 1)
		}
		return
	}
	localY := Y[base : base+d.NSpecies]
	buf := make([]float64, d.NSpecies)
	for id := 0; id < d.NSpecies; id++ {
		cl := d.Net.Cat.ByID(id)
		if cl == nil || cl.Kind == cluster.Super {
			continue
		}
		for i := range buf {
			buf[i] = 0
		}
		d.Net.Graph.GetPartialDerivatives(id, localY, buf)
		for _, col := range d.Net.Graph.Connectivity(id) {
			if buf[col] == 0 {
				continue
			}
			dfdy.Put(base+id, base+col, buf[col])
		}
	}
	if d.Trap != nil {
		for _, p := range d.Trap.ComputePartialsForTrapMutation(xi, d.SurfacePos) {
			dfdy.Put(base+p.Row, base+p.Col, p.Value)
		}
	}
}

// ComputeOffDiagonalJacobian fills dfdy with the spatial-coupling
// entries between grid point xi and its left/right neighbors: the
// diffusion and advection stencils' partial derivatives (§4.G "ofill",
// the block-diagonal-per-species spatial coupling).
func (d *Domain) ComputeOffDiagonalJacobian(dfdy *la.Triplet, xi int) {
	if xi <= d.SurfacePos || xi >= d.Mx()-1 {
		return
	}
	base := d.Index(xi, 0)
	baseLeft := d.Index(xi-1, 0)
	baseRight := d.Index(xi+1, 0)
	hL := d.X[xi] - d.X[xi-1]
	hR := d.X[xi+1] - d.X[xi]

	for _, p := range d.Diff.ComputePartialsForDiffusion(d.Net.Cat, xi, hL, hR) {
		dfdy.Put(base+p.ID, base+p.ID, p.Middle)
		dfdy.Put(base+p.ID, baseLeft+p.ID, p.Left)
		dfdy.Put(base+p.ID, baseRight+p.ID, p.Right)
	}
	if d.Adv != nil {
		for _, p := range d.Adv.ComputePartialsForAdvection(d.distanceFromSurface(xi), hR) {
			dfdy.Put(base+p.ID, base+p.ID, p.Middle)
			dfdy.Put(base+p.ID, baseRight+p.ID, p.Right)
		}
	}
}

// NNZ computes an upper bound on the number of Triplet.Put calls one
// Jacobian assembly makes, from the fill pattern, used to size the
// Triplet before assembly (§4.G "fill-pattern construction" avoids
// repeated slice growth during Put). Every Put takes its own slot, even
// at a position already filled. At each grid point the diagonal pass
// puts at most one reaction partial and one trap-mutation partial per
// dfill position (2*diagonal); at each interior point the off-diagonal
// pass puts three entries (middle, left, right) per diffusing cluster
// and two (middle, right) per advecting cluster, at most five per
// ofill entry.
func (d *Domain) NNZ() int {
	pattern := d.BuildFillPattern()
	diagonal, spatial := pattern.NNZPerPoint()
	mx := d.Mx()
	interior := mx - 2
	if interior < 0 {
		interior = 0
	}
	return mx*2*diagonal + interior*5*spatial
}

// AssembleJacobian builds the full Jacobian at time t, state Y, into a
// freshly-initialized Triplet (§4.G).
func (d *Domain) AssembleJacobian(t float64, Y []float64) *la.Triplet {
	dfdy := new(la.Triplet)
	dfdy.Init(d.Ndim(), d.Ndim(), d.NNZ())
	dfdy.Start()
	for xi := 0; xi < d.Mx(); xi++ {
		d.ComputeDiagonalJacobian(dfdy, xi, Y)
		d.ComputeOffDiagonalJacobian(dfdy, xi)
	}
	return dfdy
}
